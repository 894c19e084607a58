package app

import (
	"fmt"

	authHTTP "github.com/bakhbk/seckit/internal/auth/http"
	authService "github.com/bakhbk/seckit/internal/auth/service"
	authUseCase "github.com/bakhbk/seckit/internal/auth/usecase"
)

// TokenService returns the JWT token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		tokenService, err := authService.NewJWTTokenService(
			c.config.JWTSecret,
			c.config.AuthTokenExpiration,
		)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}
		c.tokenService = tokenService
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// TokenUseCase returns the token use case.
// When metrics are enabled the use case is wrapped with a metrics decorator.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	c.tokenUseCaseInit.Do(func() {
		users, err := c.UserUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = fmt.Errorf("failed to get user use case for token use case: %w", err)
			return
		}

		tokenService, err := c.TokenService()
		if err != nil {
			c.initErrors["tokenUseCase"] = fmt.Errorf("failed to get token service for token use case: %w", err)
			return
		}

		useCase := authUseCase.NewTokenUseCase(users, tokenService)

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["tokenUseCase"] = fmt.Errorf("failed to get business metrics for token use case: %w", err)
			return
		}

		c.tokenUseCase = authUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// TokenHandler returns the token HTTP handler.
func (c *Container) TokenHandler() (*authHTTP.TokenHandler, error) {
	c.tokenHandlerInit.Do(func() {
		useCase, err := c.TokenUseCase()
		if err != nil {
			c.initErrors["tokenHandler"] = fmt.Errorf("failed to get token use case for token handler: %w", err)
			return
		}
		c.tokenHandler = authHTTP.NewTokenHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}
