package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/travelmate/booking-backend/internal/models"
	"github.com/travelmate/booking-backend/pkg/jwt"
	"github.com/travelmate/booking-backend/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the user persistence the auth service needs
type UserStore interface {
	CreateUser(firstName, lastName, email, cnic, passwordHash string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(userID string) (*models.User, error)
}

// AuthService handles signup and login
type AuthService struct {
	users         UserStore
	jwtService    *jwt.Service
	cnicValidator *validator.CNICValidator
	bcryptCost    int
	logger        *logrus.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtService *jwt.Service, bcryptCost int, logger *logrus.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:         users,
		jwtService:    jwtService,
		cnicValidator: validator.NewCNICValidator(),
		bcryptCost:    bcryptCost,
		logger:        logger,
	}
}

// Signup registers a new user and returns the created account
func (s *AuthService) Signup(req *models.SignupRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cnic, err := s.cnicValidator.Validate(req.CNIC)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidRequest, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(req.FirstName, req.LastName, req.Email, cnic, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return user, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	s.logger.WithField("user_id", user.ID).Info("User logged in")

	return &models.LoginResponse{
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		AccessToken: token,
	}, nil
}
