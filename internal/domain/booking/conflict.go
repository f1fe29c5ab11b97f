package booking

import "github.com/google/uuid"

// FindConflict returns the first booking in existing whose dates overlap
// candidate, skipping the booking identified by exclude (uuid.Nil skips none).
func FindConflict(existing []*Booking, candidate DateRange, exclude uuid.UUID) *Booking {
	for _, b := range existing {
		if exclude != uuid.Nil && b.ID() == exclude {
			continue
		}
		if b.Dates().Overlaps(candidate) {
			return b
		}
	}
	return nil
}

func EnsureAvailable(existing []*Booking, candidate DateRange, exclude uuid.UUID) error {
	if FindConflict(existing, candidate, exclude) != nil {
		return NewConflictError()
	}
	return nil
}
