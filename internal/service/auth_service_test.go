package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"todoapi/internal/auth"
	apperrors "todoapi/internal/errors"
	"todoapi/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newTestAuthService(repo *MockUserRepository) (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService("test-secret", 15*time.Minute)
	hasher := auth.NewPasswordHasher(4)
	return NewAuthService(repo, hasher, jwtService), jwtService
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedEmail string
	}{
		{
			name:     "successful registration normalizes email",
			email:    "  Test@Example.COM ",
			username: "testuser",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedEmail: "test@example.com",
		},
		{
			name:     "duplicate email",
			email:    "existing@example.com",
			username: "other",
			password: "different-password",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrEmailTaken)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service, jwtService := newTestAuthService(mockRepo)
			user, token, err := service.Register(context.Background(), tt.email, tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.expectedEmail, user.Email)
				assert.Equal(t, tt.username, user.Username)
				assert.NotEmpty(t, user.ID)
				assert.True(t, user.IsActive)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)

				// The issued token's claims resolve back to the created user.
				claims, err := jwtService.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
				assert.Equal(t, user.Email, claims.Subject)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)
	hashed, _ := hasher.Hash("password123")

	storedUser := &model.User{
		ID:           "user-123",
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: hashed,
		IsActive:     true,
	}
	inactiveUser := &model.User{
		ID:           "user-456",
		Email:        "inactive@example.com",
		PasswordHash: hashed,
		IsActive:     false,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "Test@Example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(storedUser, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(storedUser, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			email:    "inactive@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "inactive@example.com").Return(inactiveUser, nil)
			},
			expectedError: apperrors.ErrInactiveUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service, jwtService := newTestAuthService(mockRepo)
			user, token, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, storedUser, user)

				claims, err := jwtService.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, storedUser.ID, claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)
	hashed, _ := hasher.Hash("password123")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "known@example.com").Return(&model.User{
		ID:           "user-123",
		Email:        "known@example.com",
		PasswordHash: hashed,
		IsActive:     true,
	}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "unknown@example.com").Return(nil, apperrors.ErrUserNotFound)

	service, _ := newTestAuthService(mockRepo)

	_, _, wrongPassword := service.Login(context.Background(), "known@example.com", "bad")
	_, _, unknownEmail := service.Login(context.Background(), "unknown@example.com", "bad")

	assert.Equal(t, wrongPassword, unknownEmail)
}
