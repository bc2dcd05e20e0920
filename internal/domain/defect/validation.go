package defect

import (
	"fmt"
	"strings"
)

// ValidateEntry enforces the recorder invariants before an entry may be saved.
// These are pre-submission checks: a failing entry is rejected outright, never
// silently corrected.
func ValidateEntry(e *Entry) error {
	if strings.TrimSpace(e.DefectID) == "" || strings.TrimSpace(e.SessionID) == "" {
		return ErrInvalidInput
	}
	if e.Quantity < 1 {
		return ErrInvalidInput
	}

	if e.NoLocation {
		if len(e.Locations) > 0 {
			return fmt.Errorf("%w: no-location entry carries locations", ErrInvalidInput)
		}
		return nil
	}

	if len(e.Locations) == 0 {
		return ErrLocationRequired
	}

	sum := 0
	for _, loc := range e.Locations {
		if loc.Quantity < 1 {
			return fmt.Errorf("%w: location %d", ErrInvalidInput, loc.LocationNo)
		}
		if len(loc.Images) < loc.Quantity {
			return fmt.Errorf("%w: location %d has %d of %d", ErrImagesMissing, loc.LocationNo, len(loc.Images), loc.Quantity)
		}
		if len(loc.Positions) > loc.Quantity {
			return fmt.Errorf("%w: location %d has more positions than units", ErrInvalidInput, loc.LocationNo)
		}
		sum += loc.Quantity
	}
	if sum != e.Quantity {
		return fmt.Errorf("%w: quantity %d, locations total %d", ErrQuantityMismatch, e.Quantity, sum)
	}

	return nil
}
