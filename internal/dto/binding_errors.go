package dto

import (
	"errors"
	"strings"
	"unicode"

	"moviehub/internal/shared"

	"github.com/go-playground/validator/v10"
)

// BindingErrors flattens a gin binding failure into the same field→message
// map the services produce, so every 400 body looks alike.
func BindingErrors(err error) shared.ValidationErrors {
	verr := shared.ValidationErrors{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("body", err.Error())
		return verr
	}

	for _, fe := range fieldErrs {
		field := toSnake(fe.Field())
		switch fe.Tag() {
		case "required":
			verr.Add(field, "This field is required")
		case "min":
			verr.Add(field, "Must be at least "+fe.Param())
		case "max":
			verr.Add(field, "Must be at most "+fe.Param())
		case "gte":
			verr.Add(field, "Must be greater than or equal to "+fe.Param())
		case "lte":
			verr.Add(field, "Must be less than or equal to "+fe.Param())
		case "email":
			verr.Add(field, "Must be a valid email address")
		default:
			verr.Add(field, "Invalid value")
		}
	}
	return verr
}

// toSnake maps struct field names to their JSON spelling (ReviewText -> review_text).
func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// break only at a lower->upper boundary, so ID stays "id"
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
