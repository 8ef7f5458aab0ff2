package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

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

func TestResolveUser(t *testing.T) {
	activeUser := &model.User{ID: "user-123", Email: "test@example.com", IsActive: true}
	inactiveUser := &model.User{ID: "user-456", Email: "gone@example.com", IsActive: false}

	tests := []struct {
		name           string
		contextClaims  interface{}
		setupMock      func(*MockUserRepository)
		expectedStatus int
		expectedUser   *model.User
	}{
		{
			name:          "active user resolved by id",
			contextClaims: claimsFor("user-123", "test@example.com"),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "user-123").Return(activeUser, nil)
			},
			expectedUser: activeUser,
		},
		{
			name:          "falls back to email when id matches nothing",
			contextClaims: claimsFor("stale-id", "test@example.com"),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "stale-id").Return(nil, apperrors.ErrUserNotFound)
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(activeUser, nil)
			},
			expectedUser: activeUser,
		},
		{
			name:          "unknown user is unauthenticated",
			contextClaims: claimsFor("ghost", "ghost@example.com"),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "ghost").Return(nil, apperrors.ErrUserNotFound)
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "inactive user is unauthenticated",
			contextClaims: claimsFor("user-456", "gone@example.com"),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "user-456").Return(inactiveUser, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing claims are unauthenticated",
			contextClaims:  nil,
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.contextClaims != nil {
				c.Set("user", tt.contextClaims)
			}

			var resolved *model.User
			next := func(c echo.Context) error {
				resolved = CurrentUser(c)
				return c.NoContent(http.StatusOK)
			}

			err := ResolveUser(mockRepo)(next)(c)

			if tt.expectedStatus != 0 {
				var httpErr *echo.HTTPError
				assert.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
				assert.Nil(t, resolved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, resolved)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func claimsFor(userID, email string) *Claims {
	claims := &Claims{UserID: userID}
	claims.Subject = email
	return claims
}
