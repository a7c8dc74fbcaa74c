package auth

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "readin/internal/domain/user"
	"readin/internal/usecase/user"
	apperrors "readin/pkg/errors"
	"readin/pkg/security"
	"readin/pkg/validation"
)

// Config holds the token and hashing parameters for the auth usecase.
type Config struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// usecase implements registration and login on top of the user repository.
type usecase struct {
	users    user.Repository
	cfg      Config
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new auth usecase.
func New(users user.Repository, cfg Config, log *zap.Logger) Usecase {
	return &usecase{users: users, cfg: cfg, log: log, validate: validator.New()}
}

// Register creates a new account after validating the request, enforcing the
// password policy and checking username and email uniqueness.
func (uc *usecase) Register(ctx context.Context, in RegisterRequest) (*RegisterResponse, error) {
	uc.log.Info("registering user", zap.String("username", in.Username), zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.FormatError(err)
	}

	if err := security.ValidatePasswordStrength(in.Password); err != nil {
		uc.log.Warn("weak password rejected", zap.String("username", in.Username))
		return nil, apperrors.NewValidationError("password", err.Error())
	}

	byEmail, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if byEmail != nil {
		uc.log.Warn("email already exists", zap.String("email", in.Email))
		return nil, apperrors.NewAlreadyExistsError("email", "email already exists")
	}

	byUsername, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		uc.log.Error("failed to check existing username", zap.String("username", in.Username), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate username uniqueness", err)
	}
	if byUsername != nil {
		uc.log.Warn("username already exists", zap.String("username", in.Username))
		return nil, apperrors.NewAlreadyExistsError("username", "username already exists")
	}

	hash, err := security.HashPassword(in.Password, uc.cfg.BcryptCost)
	if err != nil {
		uc.log.Error("failed to hash password", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	id, err := uc.users.Create(ctx, &domain.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &RegisterResponse{ID: id}, nil
}

// Login authenticates by email and password and issues a signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (uc *usecase) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.FormatError(err)
	}

	u, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to look up user for login", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to look up user", err)
	}
	if u == nil {
		uc.log.Warn("login failed: unknown email", zap.String("email", in.Email))
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	if !security.VerifyPassword(u.Password, in.Password) {
		uc.log.Warn("login failed: wrong password", zap.Int64("user_id", u.ID))
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, err := security.GenerateToken(uc.cfg.JWTSecret, u.ID, u.Username, uc.cfg.TokenTTL)
	if err != nil {
		uc.log.Error("failed to issue token", zap.Int64("user_id", u.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to issue token", err)
	}

	uc.log.Info("user logged in", zap.Int64("user_id", u.ID))

	return &LoginResponse{
		Token: token,
		User: Profile{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
		},
	}, nil
}
