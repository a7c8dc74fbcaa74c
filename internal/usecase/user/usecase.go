package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "readin/internal/domain/user"
	apperrors "readin/pkg/errors"
	"readin/pkg/validation"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)                  // Create a new user
	GetByID(ctx context.Context, id int64) (*domain.User, error)                // Retrieve user by ID
	GetByEmail(ctx context.Context, email string) (*domain.User, error)         // Retrieve user by email, nil when absent
	GetByUsername(ctx context.Context, username string) (*domain.User, error)   // Retrieve user by username, nil when absent
	Update(ctx context.Context, u *domain.User) (int64, error)                  // Update existing user
	Delete(ctx context.Context, id int64) (int64, error)                        // Delete user by ID
	List(ctx context.Context) ([]domain.User, error)                            // List all users
}

// usecase implements the business logic for user management operations.
type usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new user usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, log: log, validate: validator.New()}
}

// GetUser retrieves a user by ID after validating the request.
func (uc *usecase) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	if in.ID <= 0 {
		uc.log.Warn("get user validation failed", zap.Int64("id", in.ID), zap.String("reason", "invalid id"))
		return nil, apperrors.NewValidationError("id", "must be a positive number")
	}

	u, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &GetUserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}, nil
}

// UpdateUser updates an existing user after validating the request and
// re-checking username and email uniqueness.
func (uc *usecase) UpdateUser(ctx context.Context, in UpdateUserRequest) (*UpdateUserResponse, error) {
	uc.log.Info("updating user", zap.Int64("id", in.ID), zap.String("username", in.Username), zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.FormatError(err)
	}

	existing, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to load user for update", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	if in.Email != "" && in.Email != existing.Email {
		byEmail, err := uc.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
			return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
		}
		if byEmail != nil && byEmail.ID != in.ID {
			uc.log.Warn("email already exists", zap.String("email", in.Email), zap.Int64("existing_id", byEmail.ID))
			return nil, apperrors.NewAlreadyExistsError("email", "email already exists")
		}
		existing.Email = in.Email
	}

	if in.Username != "" && in.Username != existing.Username {
		byUsername, err := uc.repo.GetByUsername(ctx, in.Username)
		if err != nil {
			uc.log.Error("failed to check existing username", zap.String("username", in.Username), zap.Error(err))
			return nil, apperrors.NewInternalError("failed to validate username uniqueness", err)
		}
		if byUsername != nil && byUsername.ID != in.ID {
			uc.log.Warn("username already exists", zap.String("username", in.Username), zap.Int64("existing_id", byUsername.ID))
			return nil, apperrors.NewAlreadyExistsError("username", "username already exists")
		}
		existing.Username = in.Username
	}

	id, err := uc.repo.Update(ctx, existing)
	if err != nil {
		uc.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdateUserResponse{ID: id}, nil
}

// DeleteUser deletes a user after validating the user ID.
func (uc *usecase) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	uc.log.Info("deleting user", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		uc.log.Warn("delete user validation failed", zap.Int64("id", in.ID), zap.String("reason", "invalid id"))
		return nil, apperrors.NewValidationError("id", "must be a positive number")
	}

	// Ensure the target exists so a delete of a missing user answers 404.
	if _, err := uc.repo.GetByID(ctx, in.ID); err != nil {
		uc.log.Warn("user to delete not found", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	id, err := uc.repo.Delete(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeleteUserResponse{ID: id}, nil
}

// ListUsers retrieves all users.
func (uc *usecase) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	domainUsers, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:       du.ID,
			Username: du.Username,
			Email:    du.Email,
		}
	}

	return &ListUsersResponse{Users: users}, nil
}
