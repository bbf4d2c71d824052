package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelmate/booking-backend/internal/database"
	"github.com/travelmate/booking-backend/internal/models"
	"github.com/travelmate/booking-backend/internal/services"
	"github.com/travelmate/booking-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwtService := jwt.NewService("test-secret", time.Hour)
	authService := services.NewAuthService(database.NewMemoryUserStore(), jwtService, bcrypt.MinCost, logger)
	handler := NewAuthHandler(authService, logger)

	router := gin.New()
	router.POST("/api/v1/auth/signup", handler.Signup)
	router.POST("/api/v1/auth/login", handler.Login)
	router.POST("/api/v1/auth/logout", handler.Logout)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signupBody() map[string]string {
	return map[string]string{
		"first_name": "Ayesha",
		"last_name":  "Khan",
		"email":      "ayesha@example.com",
		"cnic":       "35202-1234567-8",
		"password":   "correct-horse",
	}
}

func TestSignupEndpoint(t *testing.T) {
	router := newAuthTestRouter()

	t.Run("Created", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/signup", signupBody())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var user models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, "ayesha@example.com", user.Email)
		assert.NotContains(t, w.Body.String(), "password", "password hash must never leave the API")
	})

	t.Run("Duplicate", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/signup", signupBody())
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/signup", map[string]string{"email": "x@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Weak Password", func(t *testing.T) {
		body := signupBody()
		body["email"] = "other@example.com"
		body["password"] = "short"
		w := postJSON(t, router, "/api/v1/auth/signup", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	router := newAuthTestRouter()

	w := postJSON(t, router, "/api/v1/auth/signup", signupBody())
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("Success", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/login", map[string]string{
			"email":    "ayesha@example.com",
			"password": "correct-horse",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Ayesha", resp.FirstName)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/login", map[string]string{
			"email":    "ayesha@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unknown User", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "whatever-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	router := newAuthTestRouter()

	w := postJSON(t, router, "/api/v1/auth/logout", map[string]string{})
	assert.Equal(t, http.StatusOK, w.Code)
}
