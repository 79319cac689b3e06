package interfaces

import (
	"context"

	"github.com/haguru/userstub/internal/models"
)

// UserRepository defines the contract for storing and retrieving User data.
// Lookups by id match the id's text form (see models.IDKey); ExistsID
// compares id values (see models.IDValueKey).
// Implementations do not check uniqueness or serialize access; callers do.
type UserRepository interface {
	List(ctx context.Context) []models.User
	FindByUsername(ctx context.Context, username string) (*models.User, bool)
	FindByID(ctx context.Context, id string) (*models.User, bool)
	ExistsID(ctx context.Context, id any) bool
	Insert(ctx context.Context, user models.User)
	InsertMany(ctx context.Context, users []models.User)
	ReplaceFields(ctx context.Context, id string, update map[string]any) (*models.User, error)
	Remove(ctx context.Context, id string) bool
	ResetToSeed(ctx context.Context)
	Count(ctx context.Context) int
}
