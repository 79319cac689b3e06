// userservice.go
package userservice

import (
	"context"
	"fmt"
	"sync"

	"github.com/haguru/userstub/internal/interfaces"
	"github.com/haguru/userstub/internal/models"
	"github.com/haguru/userstub/internal/schema"
	"github.com/haguru/userstub/pkg/helper"
)

// UserService applies request payloads to the user repository. Every method
// holds one lock for its whole run, so checks and mutations made for a
// single request are never interleaved with another request.
type UserService struct {
	UserRepo interfaces.UserRepository
	Logger   interfaces.Logger
	mu       sync.Mutex
}

// NewUserService creates a new UserService instance.
func NewUserService(repo interfaces.UserRepository, logger interfaces.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		Logger:   logger,
	}
}

// ListUsers returns every stored user in insertion order.
func (s *UserService) ListUsers(ctx context.Context) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.UserRepo.List(ctx)
}

// GetUserByUsername returns the first user with the given username.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)
	defer s.Logger.Debug("Exiting function", "func", funcName, "user", username)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.UserRepo.FindByUsername(ctx, username)
	if !ok {
		s.Logger.Warn(ErrRetrievingUser, "func", funcName, "user", username, "error", ErrUserNotFound)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingUser, ErrUserNotFound)
	}
	return user, nil
}

// CreateUser validates payload as a single user and stores it unless its id
// is already taken.
func (s *UserService) CreateUser(ctx context.Context, payload any) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName)
	defer s.Logger.Debug("Exiting function", "func", funcName)

	if !schema.ValidateSingle(payload, models.RequiredFields) {
		s.Logger.Warn(ErrFailedToCreateUser, "func", funcName, "error", ErrInvalidUserData)
		return nil, fmt.Errorf("%s: %w", ErrFailedToCreateUser, ErrInvalidUserData)
	}

	user, err := models.FromDocument(payload.(map[string]any))
	if err != nil {
		s.Logger.Warn(ErrFailedToCreateUser, "func", funcName, "error", err)
		return nil, fmt.Errorf("%s: %w: %v", ErrFailedToCreateUser, ErrInvalidUserData, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.UserRepo.ExistsID(ctx, user.ID) {
		s.Logger.Warn(ErrFailedToCreateUser, "func", funcName, "id", user.IDKey(), "error", ErrDuplicateID)
		return nil, fmt.Errorf("%s: %w", ErrFailedToCreateUser, ErrDuplicateID)
	}

	s.UserRepo.Insert(ctx, *user)
	s.Logger.Info("User created successfully", "func", funcName, "user", user.Username, "ID", user.IDKey())
	return user, nil
}

// CreateUsers validates payload as a list of users and stores all of them,
// or none when any id collides with a stored user or with another entry of
// the same list.
func (s *UserService) CreateUsers(ctx context.Context, payload any) ([]models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName)
	defer s.Logger.Debug("Exiting function", "func", funcName)

	if !schema.ValidateBatch(payload, models.RequiredFields) {
		s.Logger.Warn(ErrFailedToCreateUsers, "func", funcName, "error", ErrInvalidUserData)
		return nil, fmt.Errorf("%s: %w", ErrFailedToCreateUsers, ErrInvalidUserData)
	}

	docs := payload.([]any)
	users := make([]models.User, 0, len(docs))
	seen := make(map[string]bool, len(docs))
	for _, doc := range docs {
		user, err := models.FromDocument(doc.(map[string]any))
		if err != nil {
			s.Logger.Warn(ErrFailedToCreateUsers, "func", funcName, "error", err)
			return nil, fmt.Errorf("%s: %w: %v", ErrFailedToCreateUsers, ErrInvalidUserData, err)
		}
		key := models.IDValueKey(user.ID)
		if seen[key] {
			s.Logger.Warn(ErrFailedToCreateUsers, "func", funcName, "id", user.IDKey(), "error", ErrDuplicateID)
			return nil, fmt.Errorf("%s: %w", ErrFailedToCreateUsers, ErrDuplicateID)
		}
		seen[key] = true
		users = append(users, *user)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range users {
		if s.UserRepo.ExistsID(ctx, users[i].ID) {
			s.Logger.Warn(ErrFailedToCreateUsers, "func", funcName, "id", users[i].IDKey(), "error", ErrDuplicateID)
			return nil, fmt.Errorf("%s: %w", ErrFailedToCreateUsers, ErrDuplicateID)
		}
	}

	s.UserRepo.InsertMany(ctx, users)
	s.Logger.Info("Users created successfully", "func", funcName, "count", len(users))
	return users, nil
}

// UpdateUser merges payload into the user with the given id. The id is
// looked up before the payload is looked at, so an unknown id wins over a
// bad payload.
func (s *UserService) UpdateUser(ctx context.Context, id string, payload any) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "id", id)
	defer s.Logger.Debug("Exiting function", "func", funcName, "id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.UserRepo.FindByID(ctx, id); !ok {
		s.Logger.Warn(ErrFailedToUpdateUser, "func", funcName, "id", id, "error", ErrUserNotFound)
		return nil, fmt.Errorf("%s: %w", ErrFailedToUpdateUser, ErrUserNotFound)
	}

	if !schema.ValidateSingle(payload, models.UpdateFields) {
		s.Logger.Warn(ErrFailedToUpdateUser, "func", funcName, "id", id, "error", ErrInvalidUserData)
		return nil, fmt.Errorf("%s: %w", ErrFailedToUpdateUser, ErrInvalidUserData)
	}

	user, err := s.UserRepo.ReplaceFields(ctx, id, payload.(map[string]any))
	if err != nil {
		s.Logger.Warn(ErrFailedToUpdateUser, "func", funcName, "id", id, "error", err)
		return nil, fmt.Errorf("%s: %w: %v", ErrFailedToUpdateUser, ErrInvalidUserData, err)
	}

	s.Logger.Info("User updated successfully", "func", funcName, "user", user.Username, "ID", id)
	return user, nil
}

// DeleteUser removes the user with the given id.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "id", id)
	defer s.Logger.Debug("Exiting function", "func", funcName, "id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.UserRepo.Remove(ctx, id) {
		s.Logger.Warn(ErrFailedToDeleteUser, "func", funcName, "id", id, "error", ErrUserNotFound)
		return fmt.Errorf("%s: %w", ErrFailedToDeleteUser, ErrUserNotFound)
	}

	s.Logger.Info("User deleted successfully", "func", funcName, "ID", id)
	return nil
}

// Reset puts the repository back to its seed state.
func (s *UserService) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.UserRepo.ResetToSeed(ctx)
	s.Logger.Info("Users reset to seed", "func", helper.GetFuncName())
}

// Count returns the number of stored users.
func (s *UserService) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.UserRepo.Count(ctx)
}
