// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// CreateUserRequest contains the parameters for registering a marketplace user.
type CreateUserRequest struct {
	Name  string  `json:"name" binding:"required"`
	Role  string  `json:"role" binding:"required"`
	Score float64 `json:"score"`
}

// Validate checks if the create user request is valid. Name charset and
// casing rules are enforced by the domain validator; this only rejects
// requests that cannot map to a domain user at all.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Role,
			validation.Required,
			validation.In(string(domain.RoleBidder), string(domain.RoleOfferer)),
		),
		validation.Field(&r.Score, validation.Min(0.0)),
	)
}

// ToDomain converts the request to a domain user. A zero score is left for
// the use case to fill with the configured default.
func (r *CreateUserRequest) ToDomain() *domain.User {
	return &domain.User{
		Name:  r.Name,
		Role:  domain.Role(r.Role),
		Score: r.Score,
	}
}
