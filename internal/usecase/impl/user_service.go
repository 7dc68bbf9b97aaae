// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the registration flow: uniqueness check, hash
// derivation, persistence. The uniqueness race between the check and the
// insert is closed by the store's unique email index.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			// Lost the race against a concurrent registration.
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("User registered", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: toUserOutput(newUser)}, nil
}

// Login orchestrates the login flow: lookup, password verification, token
// issuance. The issued claims carry identity fields only.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrUserNotRegistered, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Hash re-derivation is CPU-bound on purpose; no store access here.
	if !srv.hasher.Check(input.Password, user.PasswordHash, user.PasswordSalt) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: accessToken}, nil
}

// ListUsers returns all registered users as client-safe projections.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, toUserOutput(user))
	}

	return outputs, nil
}

// toUserOutput strips derived credentials from the entity.
func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
