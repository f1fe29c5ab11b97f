package booking

import (
	"spot-booking/internal/pkg/errs"
)

// Field names as clients send them; used to attach form-level feedback.
const (
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
)

// Sentinels for every failure the lifecycle can surface. Concrete errors are
// marked with one of these so callers can classify them with KindOf.
var (
	ErrNotFound       = errs.New("booking lifecycle: not found")
	ErrForbidden      = errs.New("booking lifecycle: forbidden")
	ErrInvalidRange   = errs.New("booking lifecycle: invalid range")
	ErrPastDate       = errs.New("booking lifecycle: past date")
	ErrConflict       = errs.New("booking lifecycle: conflict")
	ErrAlreadyStarted = errs.New("booking lifecycle: already started")
	ErrStorage        = errs.New("booking lifecycle: storage failure")
)

type Kind string

const (
	KindNotFound       Kind = "NOT_FOUND"
	KindForbidden      Kind = "FORBIDDEN"
	KindInvalidRange   Kind = "INVALID_RANGE"
	KindPastDate       Kind = "PAST_DATE"
	KindConflict       Kind = "CONFLICT"
	KindAlreadyStarted Kind = "ALREADY_STARTED"
	KindStorage        Kind = "STORAGE_ERROR"
)

func (k Kind) String() string {
	return string(k)
}

var kindBySentinel = []struct {
	sentinel error
	kind     Kind
}{
	{ErrNotFound, KindNotFound},
	{ErrForbidden, KindForbidden},
	{ErrInvalidRange, KindInvalidRange},
	{ErrPastDate, KindPastDate},
	{ErrConflict, KindConflict},
	{ErrAlreadyStarted, KindAlreadyStarted},
	{ErrStorage, KindStorage},
}

// KindOf classifies err. Anything not marked with a lifecycle sentinel is a
// storage failure: the only unclassified errors come from the backing store.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindBySentinel {
		if errs.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindStorage
}

func NewNotFoundError(msg string) error {
	return errs.Mark(errs.New(msg), ErrNotFound)
}

func NewForbiddenError(msg string) error {
	return errs.Mark(errs.New(msg), ErrForbidden)
}

func NewAlreadyStartedError(msg string) error {
	return errs.Mark(errs.New(msg), ErrAlreadyStarted)
}

func NewStorageError(err error, msg string) error {
	return errs.Mark(errs.Wrap(err, msg), ErrStorage)
}

func newInvalidRangeError() error {
	const msg = "endDate cannot be on or before startDate"
	return errs.WithFields(
		errs.Mark(errs.New(msg), ErrInvalidRange),
		map[string]string{FieldEndDate: msg},
	)
}

func newPastDateError(fields map[string]string) error {
	return errs.WithFields(
		errs.Mark(errs.New("booking dates cannot be in the past"), ErrPastDate),
		fields,
	)
}

func NewConflictError() error {
	return errs.WithFields(
		errs.Mark(errs.New("Sorry, this spot is already booked for the specified dates"), ErrConflict),
		map[string]string{
			FieldStartDate: "Start date conflicts with an existing booking",
			FieldEndDate:   "End date conflicts with an existing booking",
		},
	)
}
