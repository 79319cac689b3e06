package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/haguru/userstub/internal/interfaces"
	"github.com/haguru/userstub/internal/models"
)

// MemoryUserRepository implements UserRepository over an ordered slice.
// It holds no lock of its own; the user service serializes access.
type MemoryUserRepository struct {
	users []models.User
}

// NewMemoryUserRepository creates a repository holding only the seed user.
func NewMemoryUserRepository() interfaces.UserRepository {
	r := &MemoryUserRepository{}
	r.ResetToSeed(context.Background())
	return r
}

// List returns copies of all users in insertion order.
func (r *MemoryUserRepository) List(ctx context.Context) []models.User {
	users := make([]models.User, 0, len(r.users))
	for i := range r.users {
		users = append(users, r.users[i].Clone())
	}
	return users
}

// FindByUsername returns a copy of the first user with the given username.
func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, bool) {
	for i := range r.users {
		if r.users[i].Username == username {
			user := r.users[i].Clone()
			return &user, true
		}
	}
	return nil, false
}

// FindByID returns a copy of the first user whose id key equals id.
func (r *MemoryUserRepository) FindByID(ctx context.Context, id string) (*models.User, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	user := r.users[i].Clone()
	return &user, true
}

// ExistsID reports whether a stored user's id equals id by value.
func (r *MemoryUserRepository) ExistsID(ctx context.Context, id any) bool {
	return slices.ContainsFunc(r.users, func(u models.User) bool {
		return u.SameID(id)
	})
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user models.User) {
	r.users = append(r.users, user.Clone())
}

func (r *MemoryUserRepository) InsertMany(ctx context.Context, users []models.User) {
	for i := range users {
		r.users = append(r.users, users[i].Clone())
	}
}

// ReplaceFields merges update into the stored user with the given id and
// returns a copy of the result. The stored user is untouched on error.
func (r *MemoryUserRepository) ReplaceFields(ctx context.Context, id string, update map[string]any) (*models.User, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("no user with id %q", id)
	}

	merged := r.users[i].Clone()
	if err := merged.Merge(update); err != nil {
		return nil, err
	}
	r.users[i] = merged

	user := merged.Clone()
	return &user, nil
}

// Remove deletes the first user with the given id.
func (r *MemoryUserRepository) Remove(ctx context.Context, id string) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.users = slices.Delete(r.users, i, i+1)
	return true
}

// ResetToSeed drops every user and stores the seed user alone.
func (r *MemoryUserRepository) ResetToSeed(ctx context.Context) {
	r.users = []models.User{models.SeedUser()}
}

func (r *MemoryUserRepository) Count(ctx context.Context) int {
	return len(r.users)
}

func (r *MemoryUserRepository) indexOf(id string) int {
	return slices.IndexFunc(r.users, func(u models.User) bool {
		return u.IDKey() == id
	})
}
