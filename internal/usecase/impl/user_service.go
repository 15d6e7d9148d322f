package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerTokenType = "bearer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	fileStore    service.FileStore
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	FileStore    service.FileStore
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		fileStore:    params.FileStore,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account with a hashed password.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	if input == nil || strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username, email and password are required")
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()
	user := &entity.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Signup rejected", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login checks the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Warn("Login for unknown email", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   bearerTokenType,
		ExpiresIn:   int64(srv.tokenService.TokenTTL().Seconds()),
		User:        user,
	}, nil
}

// GetProfile returns the current user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// DeleteAccount removes the user's rows in one transaction, then the stored document contents.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	var storageKeys []string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		documents, err := repoFactory.NewDocumentRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list documents")
		}
		for _, document := range documents {
			storageKeys = append(storageKeys, document.StorageKey)
		}

		return repoFactory.NewUserRepository().Delete(ctx, userID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	// Blob removal cannot be rolled back with the rows, so orphans are only logged.
	for _, key := range storageKeys {
		if err := srv.fileStore.Delete(ctx, key); err != nil {
			srv.log(ctx).Error("Failed to delete stored document", slog.String("key", key), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID), slog.Int("documents", len(storageKeys)))

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
