package app

import (
	"fmt"

	authService "github.com/bakhbk/seckit/internal/auth/service"
	userHTTP "github.com/bakhbk/seckit/internal/user/http"
	userRepository "github.com/bakhbk/seckit/internal/user/repository"
	userUseCase "github.com/bakhbk/seckit/internal/user/usecase"
)

// UserRepository returns the user repository based on the database driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.userRepo = userRepository.NewMySQLUserRepository(db)
		case "postgres":
			c.userRepo = userRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// PasswordHasher returns the password hasher selected by configuration.
func (c *Container) PasswordHasher() (userUseCase.PasswordHasher, error) {
	c.passwordHasherInit.Do(func() {
		hasher, err := authService.NewPasswordHasher(c.config.PasswordHashScheme)
		if err != nil {
			c.initErrors["passwordHasher"] = fmt.Errorf("failed to create password hasher: %w", err)
			return
		}
		c.passwordHasher = hasher
	})
	if storedErr, exists := c.initErrors["passwordHasher"]; exists {
		return nil, storedErr
	}
	return c.passwordHasher, nil
}

// UserUseCase returns the user use case.
// When metrics are enabled the use case is wrapped with a metrics decorator.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	c.userUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get tx manager for user use case: %w", err)
			return
		}

		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get user repository for user use case: %w", err)
			return
		}

		fieldUC, err := c.FieldUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get field use case for user use case: %w", err)
			return
		}

		passwordHasher, err := c.PasswordHasher()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get password hasher for user use case: %w", err)
			return
		}

		useCase := userUseCase.NewUserUseCase(txManager, userRepo, fieldUC, passwordHasher, c.Logger())

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get business metrics for user use case: %w", err)
			return
		}

		c.userUseCase = userUseCase.NewUserUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// UserHandler returns the user HTTP handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	c.userHandlerInit.Do(func() {
		useCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["userHandler"] = fmt.Errorf("failed to get user use case for user handler: %w", err)
			return
		}
		c.userHandler = userHTTP.NewUserHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.userHandler, nil
}
