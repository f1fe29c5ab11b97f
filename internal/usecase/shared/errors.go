package shared

import (
	"spot-booking/internal/domain/booking"
	"spot-booking/internal/infra"
	"spot-booking/internal/pkg/errs"
)

// LedgerError maps a storage error into the booking taxonomy. Errors that
// already carry a booking kind pass through untouched.
func LedgerError(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if isClassified(err) {
		return err
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return booking.NewNotFoundError(notFoundMsg)
	case infra.IsKind(err, infra.KindExclusionViolated):
		return booking.NewConflictError()
	case infra.IsKind(err, infra.KindCheckViolated):
		return booking.NewStorageError(err, "booking rejected by ledger constraint")
	default:
		return booking.NewStorageError(err, "booking ledger failure")
	}
}

func isClassified(err error) bool {
	for _, sentinel := range []error{
		booking.ErrNotFound,
		booking.ErrForbidden,
		booking.ErrInvalidRange,
		booking.ErrPastDate,
		booking.ErrConflict,
		booking.ErrAlreadyStarted,
		booking.ErrStorage,
	} {
		if errs.Is(err, sentinel) {
			return true
		}
	}
	return false
}
