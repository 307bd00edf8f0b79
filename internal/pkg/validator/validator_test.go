package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"9876543210", "0123456789"}
	invalid := []string{"987654321", "98765432101", "98765abcde", ""}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestIsValidNationalID(t *testing.T) {
	valid := []string{"123456789012"}
	invalid := []string{"12345678901", "1234567890123", "12345678901a", ""}
	for _, s := range valid {
		if !IsValidNationalID(s) {
			t.Errorf("IsValidNationalID(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidNationalID(s) {
			t.Errorf("IsValidNationalID(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "status", Message: "invalid status"},
		{Field: "employee_id", Message: "must be positive"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["status"] != "invalid status" {
		t.Errorf(`ToMap()["status"] = %q, want "invalid status"`, m["status"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned an empty string")
	}
}
