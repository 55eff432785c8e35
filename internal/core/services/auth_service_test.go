package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListStudents(ctx context.Context, class, section string) ([]domain.User, error) {
	args := m.Called(ctx, class, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("Success: Should register a valid user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo)
		ctx := context.Background()

		input := RegisterInput{
			Email:    "test_success@kanso.app",
			Password: "StrongPassword123!",
			FullName: "  Maya Rossi ",
			Class:    "9",
			Section:  "A",
		}

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := service.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, input.Email, user.Email)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.PasswordHash)
		assert.Equal(t, "Maya Rossi", user.FullName)
		assert.Equal(t, domain.RoleStudent, user.Role)
		assert.Equal(t, "9", user.Class)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: Should reject an unknown role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo)

		user, err := service.Register(context.Background(), RegisterInput{
			Email: "admin@kanso.app", Password: "StrongPassword123!", Role: "admin",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRole)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should return error for invalid email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo)
		ctx := context.Background()

		input := RegisterInput{Email: "not-an-email", Password: "pass"}

		user, err := service.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.Nil(t, user)

		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should return error for short password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo)
		ctx := context.Background()

		input := RegisterInput{Email: "valid@email.com", Password: "short"}

		user, err := service.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		assert.Nil(t, user)

		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should propagate repository error (Duplicate Email)", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo)
		ctx := context.Background()

		input := RegisterInput{Email: "duplicate@email.com", Password: "StrongPassword123!"}

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrEmailAlreadyExists)

		user, err := service.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.Nil(t, user)

		mockRepo.AssertExpectations(t)
	})
}

func newTestAuthService(repo domain.UserRepository) *AuthService {
	return NewAuthService(repo, NewTokenService("test-secret", "kanso-test", time.Hour, repo))
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	registered, err := domain.NewUser("user-1", "login@kanso.app", domain.RoleTeacher)
	require.NoError(t, err)
	require.NoError(t, registered.SetPassword("StrongPassword123!"))

	t.Run("Success: Should return a token for valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo)
		ctx := context.Background()

		mockRepo.On("GetByEmail", ctx, "login@kanso.app").Return(registered, nil)
		mockRepo.On("GetByID", mock.Anything, "user-1").Return(registered, nil)

		result, err := service.Login(ctx, "  Login@Kanso.app ", "StrongPassword123!")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, registered, result.User)

		principal, err := service.tokens.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "login@kanso.app", principal.Email)
		assert.Equal(t, domain.RoleTeacher, principal.Role)
	})

	t.Run("Fail: Wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo)
		ctx := context.Background()

		mockRepo.On("GetByEmail", ctx, "login@kanso.app").Return(registered, nil)

		result, err := service.Login(ctx, "login@kanso.app", "WrongPassword!")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, result)
	})

	t.Run("Fail: Unknown email looks like a wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo)
		ctx := context.Background()

		mockRepo.On("GetByEmail", ctx, "ghost@kanso.app").Return(nil, domain.ErrUserNotFound)

		_, err := service.Login(ctx, "ghost@kanso.app", "whatever123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Fail: Repository outage is not a credentials error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := newTestAuthService(mockRepo)
		ctx := context.Background()

		mockRepo.On("GetByEmail", ctx, "login@kanso.app").Return(nil, errors.New("connection refused"))

		_, err := service.Login(ctx, "login@kanso.app", "StrongPassword123!")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
