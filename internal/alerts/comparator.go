package alerts

import (
	"errors"
	"fmt"

	"adops-server/internal/store"
)

// ErrUnknownComparator marks a trigger whose comparator is not one of the
// supported threshold operators.
var ErrUnknownComparator = errors.New("unknown comparator")

// compare evaluates `value <comparator> threshold` with standard numeric
// comparison semantics.
func compare(value, threshold float64, comparator string) (bool, error) {
	switch comparator {
	case store.TriggerComparatorLT:
		return value < threshold, nil
	case store.TriggerComparatorLTE:
		return value <= threshold, nil
	case store.TriggerComparatorGT:
		return value > threshold, nil
	case store.TriggerComparatorGTE:
		return value >= threshold, nil
	case store.TriggerComparatorEQ:
		return value == threshold, nil
	default:
		return false, fmt.Errorf("%q: %w", comparator, ErrUnknownComparator)
	}
}
