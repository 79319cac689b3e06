package interfaces

import (
	"context"

	"github.com/haguru/userstub/internal/models"
)

// UserService carries out user operations on decoded request payloads.
// A payload that failed to decode is passed as nil.
type UserService interface {
	ListUsers(ctx context.Context) []models.User
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, payload any) (*models.User, error)
	CreateUsers(ctx context.Context, payload any) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, payload any) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Reset(ctx context.Context)
	Count(ctx context.Context) int
}
