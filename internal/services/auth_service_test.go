package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelmate/booking-backend/internal/database"
	"github.com/travelmate/booking-backend/internal/models"
	"github.com/travelmate/booking-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService() (*AuthService, *jwt.Service) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	// MinCost keeps the hashing fast in tests
	return NewAuthService(database.NewMemoryUserStore(), jwtService, bcrypt.MinCost, testLogger()), jwtService
}

func signupRequest() *models.SignupRequest {
	return &models.SignupRequest{
		FirstName: "Ayesha",
		LastName:  "Khan",
		Email:     "ayesha@example.com",
		CNIC:      "35202-1234567-8",
		Password:  "correct-horse",
	}
}

func TestSignup(t *testing.T) {
	svc, _ := newTestAuthService()

	user, err := svc.Signup(signupRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ayesha@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	t.Run("Duplicate Email", func(t *testing.T) {
		_, err := svc.Signup(signupRequest())
		assert.ErrorIs(t, err, models.ErrUserExists)
	})

	t.Run("Short Password", func(t *testing.T) {
		req := signupRequest()
		req.Email = "other@example.com"
		req.CNIC = "35202-7654321-8"
		req.Password = "short"
		_, err := svc.Signup(req)
		assert.ErrorIs(t, err, models.ErrInvalidRequest)
	})
}

func TestLogin(t *testing.T) {
	svc, jwtService := newTestAuthService()

	_, err := svc.Signup(signupRequest())
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Login(&models.LoginRequest{
			Email:    "ayesha@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ayesha", resp.FirstName)
		assert.NotEmpty(t, resp.AccessToken)

		claims, err := jwtService.ValidateAccessToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.UserID, claims.UserID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := svc.Login(&models.LoginRequest{
			Email:    "ayesha@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		_, err := svc.Login(&models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever-password",
		})
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}
