package repository

import (
	"context"
	"errors"

	"github.com/pawcare/pawcare-api/internal/domain/entity"
)

// ErrNotFound is returned by all repositories when the referenced record
// does not exist.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByRole(ctx context.Context, role entity.Role) ([]entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}
