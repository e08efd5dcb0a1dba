// Package validation checks request payloads against their `validate` tags and
// reports failures as field-level errors suitable for a 400 response.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"food_order/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10,20}$`)

// FieldError names one offending field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned when a payload fails validation
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError builds a validation error for a single field
func NewError(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

// Validator wraps a configured go-playground validator
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the project's custom tags registered
func New() *Validator {
	v := validator.New()

	// Report json names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Money is checked at the two decimal places it is stored with, so 0.004
	// counts as zero.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Round(2).Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return model.IsValidOrderStatus(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates s. Field failures are returned as *Error.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return &Error{Fields: fields}
}

// fieldPath drops the struct type prefix: "CreateOrderRequest.items[0].qty" -> "items[0].qty"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("%q must contain at least %s items", field, fe.Param())
		default:
			return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
		}
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%q must be a positive number", field)
		}
		return fmt.Sprintf("%q must be greater than %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "mobile":
		return fmt.Sprintf("%q must contain 10 to 20 digits", field)
	case "order_status":
		return fmt.Sprintf("%q must be one of [%s]", field, strings.Join(model.OrderStatuses, ", "))
	default:
		return fmt.Sprintf("%q failed on the %q rule", field, fe.Tag())
	}
}
