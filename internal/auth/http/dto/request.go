// Package dto provides data transfer objects for the authentication HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/bakhbk/seckit/internal/validation"
)

// IssueTokenRequest represents the API request for issuing an access token.
type IssueTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the issue token request is valid.
func (r *IssueTokenRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}
