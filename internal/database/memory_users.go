package database

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/travelmate/booking-backend/internal/models"
)

// MemoryUserStore is an in-memory user store for local development
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

// NewMemoryUserStore creates an empty in-memory user store
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[string]*models.User),
	}
}

// CreateUser creates a new user with an already-hashed password
func (s *MemoryUserStore) CreateUser(firstName, lastName, email, cnic, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(email)
	for _, existing := range s.users {
		if existing.Email == email || existing.CNIC == cnic {
			return nil, models.ErrUserExists
		}
	}

	user := &models.User{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		CNIC:         cnic,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[user.ID] = user

	snapshot := *user
	return &snapshot, nil
}

// GetByEmail retrieves a user by email
func (s *MemoryUserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(email)
	for _, user := range s.users {
		if user.Email == email {
			snapshot := *user
			return &snapshot, nil
		}
	}

	return nil, models.ErrUserNotFound
}

// GetByID retrieves a user by ID
func (s *MemoryUserStore) GetByID(userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, models.ErrUserNotFound
	}

	snapshot := *user
	return &snapshot, nil
}
