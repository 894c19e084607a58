package app

import (
	"fmt"

	fieldHTTP "github.com/bakhbk/seckit/internal/fieldcrypt/http"
	fieldcryptService "github.com/bakhbk/seckit/internal/fieldcrypt/service"
	fieldUseCase "github.com/bakhbk/seckit/internal/fieldcrypt/usecase"
)

// FieldEncryptor returns the deterministic field encryptor.
func (c *Container) FieldEncryptor() (fieldcryptService.FieldEncryptor, error) {
	c.fieldEncryptorInit.Do(func() {
		encryptor, err := fieldcryptService.NewDeterministicEncryptor(
			c.config.FieldEncryptionKey,
			c.config.FieldSalt,
		)
		if err != nil {
			c.initErrors["fieldEncryptor"] = fmt.Errorf("failed to create field encryptor: %w", err)
			return
		}
		c.fieldEncryptor = encryptor
	})
	if storedErr, exists := c.initErrors["fieldEncryptor"]; exists {
		return nil, storedErr
	}
	return c.fieldEncryptor, nil
}

// LookupHasher returns the deterministic lookup hasher.
func (c *Container) LookupHasher() (fieldcryptService.LookupHasher, error) {
	c.lookupHasherInit.Do(func() {
		hasher, err := fieldcryptService.NewHMACLookupHasher(
			c.config.FieldHashKey,
			c.config.FieldSalt,
		)
		if err != nil {
			c.initErrors["lookupHasher"] = fmt.Errorf("failed to create lookup hasher: %w", err)
			return
		}
		c.lookupHasher = hasher
	})
	if storedErr, exists := c.initErrors["lookupHasher"]; exists {
		return nil, storedErr
	}
	return c.lookupHasher, nil
}

// FieldUseCase returns the field encryption use case.
// When metrics are enabled the use case is wrapped with a metrics decorator.
func (c *Container) FieldUseCase() (fieldUseCase.FieldUseCase, error) {
	c.fieldUseCaseInit.Do(func() {
		encryptor, err := c.FieldEncryptor()
		if err != nil {
			c.initErrors["fieldUseCase"] = fmt.Errorf("failed to get field encryptor for field use case: %w", err)
			return
		}

		hasher, err := c.LookupHasher()
		if err != nil {
			c.initErrors["fieldUseCase"] = fmt.Errorf("failed to get lookup hasher for field use case: %w", err)
			return
		}

		useCase := fieldUseCase.NewFieldUseCase(encryptor, hasher)

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["fieldUseCase"] = fmt.Errorf("failed to get business metrics for field use case: %w", err)
			return
		}

		c.fieldUseCase = fieldUseCase.NewFieldUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["fieldUseCase"]; exists {
		return nil, storedErr
	}
	return c.fieldUseCase, nil
}

// FieldHandler returns the field encryption HTTP handler.
func (c *Container) FieldHandler() (*fieldHTTP.FieldHandler, error) {
	c.fieldHandlerInit.Do(func() {
		useCase, err := c.FieldUseCase()
		if err != nil {
			c.initErrors["fieldHandler"] = fmt.Errorf("failed to get field use case for field handler: %w", err)
			return
		}
		c.fieldHandler = fieldHTTP.NewFieldHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["fieldHandler"]; exists {
		return nil, storedErr
	}
	return c.fieldHandler, nil
}
