package validation

import (
	"errors"
	"reflect"
	"strings"

	"spot-booking/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const tagISODate = "isodate"

// Register installs the custom rules on gin's validator. Field errors then
// carry the json names clients sent.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}
	v.RegisterTagNameFunc(jsonTagName)
	return v.RegisterValidation(tagISODate, validateISODate)
}

func jsonTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := booking.ParseDate(fl.Field().String())
	return err == nil
}

// FieldErrors translates binding failures into per-field messages. The bool
// is false for errors that are not validation failures (malformed JSON).
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return fields, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case tagISODate:
		return fe.Field() + " must be a date formatted as YYYY-MM-DD"
	default:
		return fe.Field() + " is invalid"
	}
}
