package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/bakhbk/seckit/internal/app"
	"github.com/bakhbk/seckit/internal/config"
)

// RunEncryptValue encrypts a single value with the configured field encryption
// keys and prints the encoded record. Useful for seeding data and debugging.
func RunEncryptValue(ctx context.Context, w io.Writer, value string) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)

	useCase, err := container.FieldUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize field encryption: %w", err)
	}

	record, err := useCase.EncryptField(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to encrypt value: %w", err)
	}

	fmt.Fprintln(w, record)
	return nil
}

// RunDecryptValue decrypts an encoded record with the configured field
// encryption keys and prints the plaintext value.
func RunDecryptValue(ctx context.Context, w io.Writer, record string) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)

	useCase, err := container.FieldUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize field encryption: %w", err)
	}

	value, err := useCase.DecryptField(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to decrypt record: %w", err)
	}

	fmt.Fprintln(w, value)
	return nil
}

// RunHashValue computes the deterministic lookup digest for a value and prints
// it. The digest matches what the API stores for searchable encrypted fields.
func RunHashValue(ctx context.Context, w io.Writer, value string) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)

	useCase, err := container.FieldUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize field encryption: %w", err)
	}

	digest, err := useCase.HashField(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to hash value: %w", err)
	}

	fmt.Fprintln(w, digest)
	return nil
}
