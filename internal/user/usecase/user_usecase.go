// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"log/slog"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/bakhbk/seckit/internal/database"
	apperrors "github.com/bakhbk/seckit/internal/errors"
	fieldUseCase "github.com/bakhbk/seckit/internal/fieldcrypt/usecase"
	"github.com/bakhbk/seckit/internal/masking"
	"github.com/bakhbk/seckit/internal/user/domain"
	appValidation "github.com/bakhbk/seckit/internal/validation"
)

// RegisterUserInput contains the input data for user registration
type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailDigest(ctx context.Context, digest string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
}

// PasswordHasher abstracts the password hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// UserUseCase handles user-related business logic.
// Contact fields are encrypted before persistence and email lookups go
// through the deterministic digest.
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	fields         fieldUseCase.FieldUseCase
	passwordHasher PasswordHasher
	logger         *slog.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	fields fieldUseCase.FieldUseCase,
	passwordHasher PasswordHasher,
	logger *slog.Logger,
) UseCase {
	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		fields:         fields,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

// validateRegisterUserInput validates the registration input using jellydator/validation
func (uc *UserUseCase) validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Phone,
			validation.Length(0, 32).Error("phone must be at most 32 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// RegisterUser registers a new user, encrypting contact fields before persistence
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	// Validate input
	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	phone := strings.TrimSpace(input.Phone)

	// Hash the password
	hashedPassword, err := uc.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	// Encrypt the email and derive its lookup digest
	emailEncrypted, err := uc.fields.EncryptField(ctx, email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt email")
	}
	emailDigest, err := uc.fields.HashField(ctx, email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash email")
	}

	// Phone is optional but always stored encrypted
	var phoneEncrypted string
	if phone != "" {
		phoneEncrypted, err = uc.fields.EncryptField(ctx, phone)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to encrypt phone")
		}
	}

	user := &domain.User{
		ID:             uuid.Must(uuid.NewV7()),
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		EmailEncrypted: emailEncrypted,
		EmailDigest:    emailDigest,
		Phone:          phone,
		PhoneEncrypted: phoneEncrypted,
		Password:       hashedPassword,
	}

	// Execute within a transaction
	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("user registered",
			slog.String("user_id", user.ID.String()),
			slog.String("email", masking.Email(user.Email)),
		)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email using the deterministic lookup digest
func (uc *UserUseCase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, domain.ErrInvalidEmail
	}

	digest, err := uc.fields.HashField(ctx, email)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmailDigest(ctx, digest)
	if err != nil {
		return nil, err
	}

	return uc.decryptContactFields(ctx, user)
}

// GetUserByID retrieves a user by ID
func (uc *UserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.decryptContactFields(ctx, user)
}

// ListUsers retrieves users ordered by ID descending with pagination support.
// Contact fields are decrypted before the users are returned.
func (uc *UserUseCase) ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	users, err := uc.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	for i, user := range users {
		users[i], err = uc.decryptContactFields(ctx, user)
		if err != nil {
			return nil, err
		}
	}

	return users, nil
}

// Authenticate checks the credentials and returns the user on success.
// An unknown email and a wrong password both map to ErrInvalidCredentials.
func (uc *UserUseCase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := uc.GetUserByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := uc.passwordHasher.Verify(password, user.Password)
	if err != nil || !ok {
		if uc.logger != nil {
			uc.logger.Warn("authentication failed",
				slog.String("email", masking.Email(user.Email)),
			)
		}
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// decryptContactFields recovers the plaintext email and phone from their records
func (uc *UserUseCase) decryptContactFields(ctx context.Context, user *domain.User) (*domain.User, error) {
	email, err := uc.fields.DecryptField(ctx, user.EmailEncrypted)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt email")
	}
	user.Email = email

	if user.PhoneEncrypted != "" {
		phone, err := uc.fields.DecryptField(ctx, user.PhoneEncrypted)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to decrypt phone")
		}
		user.Phone = phone
	}

	return user, nil
}
