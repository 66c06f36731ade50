// Package validation provides custom validation rules for marketplace entities.
package validation

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NameCharset validates that a string contains only letters, spaces and
// hyphens. Digits and other symbols make a name invalid.
var NameCharset = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, r := range s {
			if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '-' {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_name_charset", "must contain only letters, spaces and hyphens"),
)

// TitleCase validates that every whitespace- or hyphen-delimited token starts
// with an uppercase letter.
var TitleCase = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, token := range splitNameTokens(s) {
			first := []rune(token)[0]
			if unicode.IsLower(first) {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_title_case", "each word must start with an uppercase letter"),
)

// splitNameTokens splits a name on whitespace and hyphens, dropping empty tokens.
func splitNameTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
}
