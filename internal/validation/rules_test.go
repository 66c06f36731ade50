package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(errors.New("name is required"))
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "name is required")
	})
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("Ana"))
	assert.Error(t, NotBlank.Validate(""))
	assert.Error(t, NotBlank.Validate("   "))
}

func TestNameCharset(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple name", "Ana", true},
		{"name with space", "Ana Maria", true},
		{"name with hyphen", "Ana-Maria", true},
		{"digit", "Ana4", false},
		{"symbol", "Ana#", false},
		{"underscore", "Ana_Maria", false},
		{"diacritics", "Ștefan", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NameCharset.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"capitalized", "Ana", true},
		{"two capitalized words", "Ana Maria", true},
		{"hyphenated capitalized", "Ana-Maria", true},
		{"lowercase start", "ana", false},
		{"second word lowercase", "Ana maria", false},
		{"hyphenated lowercase tail", "Ana-maria", false},
		{"extra separators ignored", "Ana  -Maria", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TitleCase.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
