package domain

import (
	validation "github.com/jellydator/validation"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	appValidation "github.com/Elena0909/AuctionsProduced/internal/validation"
)

// Validator checks user admissibility. It is a pure component with no
// persistence access; construct one and share it across services.
type Validator struct{}

// NewValidator creates a user Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate reports whether the user is admissible. The name must be 3-100
// characters of letters, spaces and hyphens with every word capitalized,
// the score non-negative and the role one of the two known values.
func (v *Validator) Validate(user *User) error {
	if user == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "user is required")
	}

	err := validation.ValidateStruct(user,
		validation.Field(&user.Name,
			validation.Required.Error("name is required"),
			validation.Length(3, 100).Error("name must be between 3 and 100 characters"),
			appValidation.NameCharset,
			appValidation.TitleCase,
		),
		validation.Field(&user.Score,
			validation.Min(0.0).Error("score must not be negative"),
		),
		validation.Field(&user.Role,
			validation.Required.Error("role is required"),
			validation.In(RoleBidder, RoleOfferer).Error("role must be bidder or offerer"),
		),
	)
	return appValidation.WrapValidationError(err)
}
