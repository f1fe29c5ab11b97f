package errs

import (
	"fmt"
	"maps"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// FieldError attaches request field names (as the client sent them) to an error.
type FieldError struct {
	err    error
	fields map[string]string
}

func (e *FieldError) Error() string { return e.err.Error() }
func (e *FieldError) Unwrap() error { return e.err }

func WithFields(err error, fields map[string]string) error {
	if err == nil {
		return nil
	}
	return &FieldError{err: err, fields: maps.Clone(fields)}
}

// FieldsOf returns the outermost field set attached to err, or nil.
func FieldsOf(err error) map[string]string {
	var fe *FieldError
	if cr.As(err, &fe) {
		return maps.Clone(fe.fields)
	}
	return nil
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
