package services

import (
	"fmt"

	"github.com/apetrov/my-blog-be/internal/auth"
	"github.com/apetrov/my-blog-be/internal/models"
	"github.com/apetrov/my-blog-be/internal/storage"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(username, password string, isAdmin bool) (models.User, error)
	Authenticate(username, password string) (models.User, error)
	GetByID(id int) (models.User, error)
}

// UserService provides registration and credential verification over the
// users collection.
type UserService struct {
	store    storage.Store
	eventSvc EventServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(store storage.Store, eventSvc EventServiceProvider) *UserService {
	return &UserService{store: store, eventSvc: eventSvc}
}

// Register creates a new account with a hashed password and a fresh id.
func (s *UserService) Register(username, password string, isAdmin bool) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, invalid("Username and password are required")
	}

	var users []models.User
	if err := s.store.Load(storage.Users, &users); err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.Username == username {
			return models.User{}, ErrUserExists
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           nextUserID(users),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}

	users = append(users, user)
	if err := s.store.Replace(storage.Users, users); err != nil {
		return models.User{}, fmt.Errorf("save users: %w", err)
	}

	s.eventSvc.Record("user.register", "info", fmt.Sprintf("user %q registered", username), user.ID)
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords fail identically.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, invalid("Username and password are required")
	}

	var users []models.User
	if err := s.store.Load(storage.Users, &users); err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.Username == username {
			if !auth.CheckPassword(password, u.PasswordHash) {
				return models.User{}, ErrInvalidCredentials
			}
			s.eventSvc.Record("user.login", "info", fmt.Sprintf("user %q logged in", username), u.ID)
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// GetByID retrieves a single user.
func (s *UserService) GetByID(id int) (models.User, error) {
	var users []models.User
	if err := s.store.Load(storage.Users, &users); err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func nextUserID(users []models.User) int {
	max := 0
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
