package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	domain "readin/internal/domain/user"
	"readin/internal/usecase/auth"
	apperrors "readin/pkg/errors"
	"readin/pkg/security"
)

// MockUserRepository is a mock implementation of the user Repository interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func setupAuthUsecase(t *testing.T) (auth.Usecase, *MockUserRepository) {
	mockRepo := new(MockUserRepository)
	logger := zaptest.NewLogger(t)
	uc := auth.New(mockRepo, auth.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		// low cost keeps the test fast
		BcryptCost: 4,
	}, logger)
	return uc, mockRepo
}

func TestRegister_Success(t *testing.T) {
	uc, mockRepo := setupAuthUsecase(t)
	ctx := context.Background()

	req := auth.RegisterRequest{
		Username: "reader1",
		Email:    "reader1@example.com",
		Password: "secret123",
	}

	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, nil)
	mockRepo.On("GetByUsername", ctx, req.Username).Return(nil, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		// the stored credential must be a hash, never the plaintext
		return u.Username == req.Username &&
			u.Email == req.Email &&
			u.Password != req.Password &&
			security.VerifyPassword(u.Password, req.Password)
	})).Return(int64(1), nil)

	resp, err := uc.Register(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)

	mockRepo.AssertExpectations(t)
}

func TestRegister_ValidationError_UsernameRequired(t *testing.T) {
	uc, _ := setupAuthUsecase(t)
	ctx := context.Background()

	resp, err := uc.Register(ctx, auth.RegisterRequest{
		Username: "",
		Email:    "reader1@example.com",
		Password: "secret123",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "Username is required")
}

func TestRegister_ValidationError_InvalidEmail(t *testing.T) {
	uc, _ := setupAuthUsecase(t)
	ctx := context.Background()

	resp, err := uc.Register(ctx, auth.RegisterRequest{
		Username: "reader1",
		Email:    "not-an-email",
		Password: "secret123",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "Email must be a valid email")
}

func TestRegister_WeakPassword(t *testing.T) {
	uc, _ := setupAuthUsecase(t)
	ctx := context.Background()

	resp, err := uc.Register(ctx, auth.RegisterRequest{
		Username: "reader1",
		Email:    "reader1@example.com",
		Password: "short1",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRegister_EmailAlreadyExists(t *testing.T) {
	uc, mockRepo := setupAuthUsecase(t)
	ctx := context.Background()

	req := auth.RegisterRequest{
		Username: "reader1",
		Email:    "taken@example.com",
		Password: "secret123",
	}

	mockRepo.On("GetByEmail", ctx, req.Email).Return(&domain.User{
		ID:    42,
		Email: req.Email,
	}, nil)

	resp, err := uc.Register(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)

	var existsErr *apperrors.AlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)
	assert.Equal(t, "email", existsErr.Resource)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestRegister_UsernameAlreadyExists(t *testing.T) {
	uc, mockRepo := setupAuthUsecase(t)
	ctx := context.Background()

	req := auth.RegisterRequest{
		Username: "taken",
		Email:    "reader1@example.com",
		Password: "secret123",
	}

	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, nil)
	mockRepo.On("GetByUsername", ctx, req.Username).Return(&domain.User{
		ID:       42,
		Username: req.Username,
	}, nil)

	resp, err := uc.Register(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)

	var existsErr *apperrors.AlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)
	assert.Equal(t, "username", existsErr.Resource)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	uc, mockRepo := setupAuthUsecase(t)
	ctx := context.Background()

	hash, err := security.HashPassword("secret123", 4)
	assert.NoError(t, err)

	mockRepo.On("GetByEmail", ctx, "reader1@example.com").Return(&domain.User{
		ID:       7,
		Username: "reader1",
		Email:    "reader1@example.com",
		Password: hash,
	}, nil)

	resp, err := uc.Login(ctx, auth.LoginRequest{
		Email:    "reader1@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "reader1", resp.User.Username)

	// the token must be parseable with the same secret and carry the user ID
	claims, err := security.ParseToken("test-secret", resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)

	mockRepo.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, mockRepo := setupAuthUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

	resp, err := uc.Login(ctx, auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)

	var unauthorizedErr *apperrors.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorizedErr)

	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, mockRepo := setupAuthUsecase(t)
	ctx := context.Background()

	hash, err := security.HashPassword("secret123", 4)
	assert.NoError(t, err)

	mockRepo.On("GetByEmail", ctx, "reader1@example.com").Return(&domain.User{
		ID:       7,
		Email:    "reader1@example.com",
		Password: hash,
	}, nil)

	resp, err := uc.Login(ctx, auth.LoginRequest{
		Email:    "reader1@example.com",
		Password: "wrong-password",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)

	// wrong password and unknown email look identical to the caller
	var unauthorizedErr *apperrors.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorizedErr)
	assert.Equal(t, "invalid credentials", unauthorizedErr.Error())

	mockRepo.AssertExpectations(t)
}

func TestLogin_RepositoryError(t *testing.T) {
	uc, mockRepo := setupAuthUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "reader1@example.com").Return(nil, errors.New("db down"))

	resp, err := uc.Login(ctx, auth.LoginRequest{
		Email:    "reader1@example.com",
		Password: "secret123",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)

	var internalErr *apperrors.InternalError
	assert.ErrorAs(t, err, &internalErr)

	mockRepo.AssertExpectations(t)
}
