package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bakhbk/seckit/internal/auth/domain"
	apperrors "github.com/bakhbk/seckit/internal/errors"
)

// jwtTokenService implements TokenService using HMAC-SHA256 signed JWTs.
type jwtTokenService struct {
	secret     []byte
	expiration time.Duration
}

// NewJWTTokenService creates a TokenService that signs tokens with the given secret.
func NewJWTTokenService(secret string, expiration time.Duration) (TokenService, error) {
	if secret == "" {
		return nil, domain.ErrMissingSigningSecret
	}
	return &jwtTokenService{
		secret:     []byte(secret),
		expiration: expiration,
	}, nil
}

// tokenClaims carries the principal inside the JWT payload.
type tokenClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Sign issues a signed token for the given principal.
func (s *jwtTokenService) Sign(principal domain.Principal) (*domain.Token, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.expiration)

	claims := tokenClaims{
		Name: principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.Must(uuid.NewV7()).String(),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign token")
	}

	return &domain.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.expiration.Seconds()),
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify parses and validates a signed token and returns its principal.
func (s *jwtTokenService) Verify(accessToken string) (*domain.Principal, error) {
	var claims tokenClaims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Principal{
		UserID: userID,
		Name:   claims.Name,
	}, nil
}
