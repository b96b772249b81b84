package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// recipient_phone -> Recipient Phone
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a binding error into a 400 AppError naming the first
// offending field. AppErrors raised by custom JSON decoders pass through;
// other decode errors (malformed JSON, wrong types) fall back to a generic
// invalid input error.
func MapValidationError(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]

		// e.Field() is the json name because of RegisterTagNameFunc in Init.
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return Wrap(
		err,
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
