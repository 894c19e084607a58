package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/bakhbk/seckit/internal/auth/domain"
	authUseCase "github.com/bakhbk/seckit/internal/auth/usecase"
	apperrors "github.com/bakhbk/seckit/internal/errors"
	fieldService "github.com/bakhbk/seckit/internal/fieldcrypt/service"
	"github.com/bakhbk/seckit/internal/httputil"
)

// AuthenticationMiddleware provides authentication via Bearer token in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Checks the development bypass token first, if one is configured
// 3. Verifies the token using tokenUseCase.VerifyToken()
// 4. Stores the authenticated principal in the request context
// 5. Allows downstream handlers to access the principal via GetPrincipal()
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Invalid/expired token → 401 Unauthorized (from TokenUseCase.VerifyToken)
//   - Other errors → 500 Internal Server Error
func AuthenticationMiddleware(
	tokenUseCase authUseCase.TokenUseCase,
	devBypassToken string,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		plainToken := authHeader[len(bearerPrefix):]
		if plainToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Development bypass token, compared without leaking length or position
		if devBypassToken != "" && fieldService.ConstantTimeEqual(plainToken, devBypassToken) {
			logger.Debug("authentication via development bypass token")
			ctx := WithPrincipal(c.Request.Context(), &authDomain.Principal{Name: "dev-bypass"})
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		// Verify the signed token
		principal, err := tokenUseCase.VerifyToken(c.Request.Context(), plainToken)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated principal in context
		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", principal.UserID.String()))

		// Continue to next handler
		c.Next()
	}
}
