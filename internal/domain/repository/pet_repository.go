package repository

import (
	"context"

	"github.com/pawcare/pawcare-api/internal/domain/entity"
)

// PetRepository defines the persistence operations for pet records.
type PetRepository interface {
	Create(ctx context.Context, p *entity.Pet) error
	GetByID(ctx context.Context, id string) (*entity.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Pet, error)
	ListAll(ctx context.Context) ([]entity.Pet, error)
	Update(ctx context.Context, p *entity.Pet) error
	Delete(ctx context.Context, id string) error
}
