package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseStatusSet(t *testing.T) {
	set, err := ParseStatusSet("Present:0,Absent:1,Holiday:0,On Leave:0,Half Day:0.5")
	if err != nil {
		t.Fatalf("ParseStatusSet returned error: %v", err)
	}

	wantNames := []string{"Present", "Absent", "Holiday", "On Leave", "Half Day"}
	gotNames := set.Names()
	if len(gotNames) != len(wantNames) {
		t.Fatalf("Names() = %v, want %v", gotNames, wantNames)
	}
	for i, name := range wantNames {
		if gotNames[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, gotNames[i], name)
		}
	}

	weights := map[string]string{
		"Present":  "0",
		"Absent":   "1",
		"Holiday":  "0",
		"On Leave": "0",
		"Half Day": "0.5",
	}
	for name, want := range weights {
		if !set.Contains(name) {
			t.Errorf("Contains(%q) = false, want true", name)
		}
		if got := set.Weight(name); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("Weight(%q) = %s, want %s", name, got, want)
		}
	}

	if set.Contains("Sick") {
		t.Error(`Contains("Sick") = true, want false`)
	}
}

func TestParseStatusSetInvalid(t *testing.T) {
	invalid := []string{
		"",
		"Present",
		"Present:abc",
		"Present:-0.5",
		"Present:2",
		"Present:0,Present:1",
		":0.5",
	}
	for _, spec := range invalid {
		if _, err := ParseStatusSet(spec); err == nil {
			t.Errorf("ParseStatusSet(%q) succeeded, want error", spec)
		}
	}
}

func TestStatusSetZeroCounts(t *testing.T) {
	set := DefaultStatusSet()
	counts := set.ZeroCounts()

	if len(counts) != 5 {
		t.Fatalf("ZeroCounts() has %d entries, want 5", len(counts))
	}
	for name, count := range counts {
		if count != 0 {
			t.Errorf("ZeroCounts()[%q] = %d, want 0", name, count)
		}
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	stamp := time.Date(2024, 3, 15, 23, 45, 12, 999, loc)

	got := DateOf(stamp)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf(%v) = %v, want %v", stamp, got, want)
	}
}
