package services_test

import (
	"testing"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
	"fittrack/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testSessionSecret = "test_session_secret"

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testSessionSecret)

	// Successful registration: hash is stored, plaintext is not.
	mockRepo.On("GetByUsername", "alice").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		u := args.Get(0).(*models.User)
		u.ID = 1
	}).Return(nil).Once()

	user, err := authService.Register("alice", "pw1")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
	mockRepo.AssertExpectations(t)

	// Username already taken: no Create call is made.
	mockRepo.On("GetByUsername", "alice").Return(&models.User{ID: 1, Username: "alice"}, nil).Once()
	_, err = authService.Register("alice", "pw2")
	assert.ErrorIs(t, err, repositories.ErrDuplicateUsername)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testSessionSecret)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           7,
		Username:     "testuser",
		PasswordHash: string(hash),
	}

	// Successful login returns the stored user.
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	got, err := authService.Login("testuser", "password123")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), got.ID)
	mockRepo.AssertExpectations(t)

	// Wrong password: generic invalid credentials.
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	_, err = authService.Login("testuser", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown user: same generic error, no hint the username is free.
	mockRepo.On("GetByUsername", "nobody").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.Login("nobody", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Tokens(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testSessionSecret)

	tokenString, err := authService.GenerateToken(42, "testuser")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := authService.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])
	assert.NotEmpty(t, claims["jti"])

	// Garbage token.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	// Token signed with another secret.
	other := services.NewAuthService(mockRepo, "other_secret")
	otherToken, _ := other.GenerateToken(42, "testuser")
	_, err = authService.ValidateToken(otherToken)
	assert.Error(t, err)

	// Expired token.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  42,
		"username": "testuser",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testSessionSecret))
	_, err = authService.ValidateToken(expiredString)
	assert.Error(t, err)
}
