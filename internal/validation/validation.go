// Package validation checks endpoint inputs before anything reaches the store.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
)

// Error describes the first field that failed validation.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// integer accepts values such as "5" or 5 but rejects "5.5" and "abc".
	v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseInt(strings.TrimSpace(fl.Field().String()), 10, 64)
		return err == nil
	})
	return v
}

// Struct runs the tag rules on s and reports the first violation.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &Error{Message: err.Error()}
	}
	return fieldError(fieldErrs[0])
}

func fieldError(fe validator.FieldError) *Error {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%q is required", field)
	case "min":
		msg = fmt.Sprintf("%q must contain at least %s items", field, fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%q must be one of [%s]", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "integer":
		msg = fmt.Sprintf("%q must be a number", field)
	default:
		msg = fmt.Sprintf("%q failed on the %q rule", field, fe.Tag())
	}
	return &Error{Field: field, Message: msg}
}

// DecodeBody reads a JSON object from r into dst. Unknown fields are rejected.
func DecodeBody(r io.Reader, dst interface{}) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return &Error{Message: "request body is required"}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &Error{Field: typeErr.Field, Message: fmt.Sprintf("%q must be a %s", typeErr.Field, kindName(typeErr.Type))}
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return &Error{Field: field, Message: fmt.Sprintf("%q is not allowed", field)}
	default:
		return &Error{Message: "request body must be valid JSON"}
	}
}

func kindName(t reflect.Type) string {
	if t == reflect.TypeOf(json.Number("")) {
		return "number"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Bool:
		return "boolean"
	default:
		return "number"
	}
}
