package attendance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StatusSet is the closed, configured set of valid attendance statuses and
// their payroll weights. A weight is the fraction of one per-diem deducted
// for each day recorded with that status: 0 for paid days (Present, Holiday,
// On Leave), 1 for Absent, 0.5 for Half Day. Adding a category is a
// configuration change, not a code change.
type StatusSet struct {
	names   []string
	weights map[string]decimal.Decimal
}

// ParseStatusSet parses a "Name:weight,Name:weight,..." specification.
func ParseStatusSet(spec string) (StatusSet, error) {
	set := StatusSet{weights: make(map[string]decimal.Decimal)}

	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, weightStr, found := strings.Cut(pair, ":")
		if !found {
			return StatusSet{}, fmt.Errorf("invalid status entry %q: expected Name:weight", pair)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return StatusSet{}, fmt.Errorf("invalid status entry %q: empty name", pair)
		}
		if _, exists := set.weights[name]; exists {
			return StatusSet{}, fmt.Errorf("duplicate status %q", name)
		}

		weight, err := decimal.NewFromString(strings.TrimSpace(weightStr))
		if err != nil {
			return StatusSet{}, fmt.Errorf("invalid weight for status %q: %w", name, err)
		}
		if weight.IsNegative() || weight.GreaterThan(decimal.NewFromInt(1)) {
			return StatusSet{}, fmt.Errorf("weight for status %q must be between 0 and 1", name)
		}

		set.names = append(set.names, name)
		set.weights[name] = weight
	}

	if len(set.names) == 0 {
		return StatusSet{}, fmt.Errorf("status set must not be empty")
	}

	return set, nil
}

// DefaultStatusSet returns the standard deployment set.
func DefaultStatusSet() StatusSet {
	set, err := ParseStatusSet("Present:0,Absent:1,Holiday:0,On Leave:0,Half Day:0.5")
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether name is a valid status.
func (s StatusSet) Contains(name string) bool {
	_, ok := s.weights[name]
	return ok
}

// Names returns the statuses in configuration order.
func (s StatusSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Weight returns the per-day deduction factor for a status. Unknown
// statuses weigh zero; callers validate membership before recording.
func (s StatusSet) Weight(name string) decimal.Decimal {
	return s.weights[name]
}

// ZeroCounts returns a count map with every configured status at zero.
func (s StatusSet) ZeroCounts() map[string]int {
	counts := make(map[string]int, len(s.names))
	for _, name := range s.names {
		counts[name] = 0
	}
	return counts
}
