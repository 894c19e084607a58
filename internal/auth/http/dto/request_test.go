package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/bakhbk/seckit/internal/errors"
)

func TestIssueTokenRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request IssueTokenRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: IssueTokenRequest{Email: "user@example.com", Password: "secret"},
			wantErr: false,
		},
		{
			name:    "missing email",
			request: IssueTokenRequest{Password: "secret"},
			wantErr: true,
		},
		{
			name:    "blank email",
			request: IssueTokenRequest{Email: "   ", Password: "secret"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			request: IssueTokenRequest{Email: "not-an-email", Password: "secret"},
			wantErr: true,
		},
		{
			name:    "missing password",
			request: IssueTokenRequest{Email: "user@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidArgument))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
