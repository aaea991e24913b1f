package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawcare/pawcare-api/internal/domain/entity"
	"github.com/pawcare/pawcare-api/internal/domain/repository"
)

// PetRepository persists pets. Medical history and vaccinations are stored
// as JSONB arrays so the embedded document shape survives round trips.
type PetRepository struct {
	pool *pgxpool.Pool
}

func NewPetRepository(pool *pgxpool.Pool) *PetRepository {
	return &PetRepository{pool: pool}
}

const petColumns = `id, name, species, COALESCE(breed, ''), age, weight, owner_id,
	COALESCE(photo_url, ''), medical_history, vaccinations, created_at, updated_at`

func scanPet(row pgx.Row, p *entity.Pet) error {
	var history, vaccinations []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Species, &p.Breed, &p.Age, &p.Weight,
		&p.OwnerID, &p.PhotoURL, &history, &vaccinations, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	if err := json.Unmarshal(history, &p.MedicalHistory); err != nil {
		return err
	}
	return json.Unmarshal(vaccinations, &p.Vaccinations)
}

func (r *PetRepository) Create(ctx context.Context, p *entity.Pet) error {
	history, vaccinations, err := marshalEmbedded(p)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO pets (name, species, breed, age, weight, owner_id, medical_history, vaccinations)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Species, p.Breed, p.Age, p.Weight, p.OwnerID, history, vaccinations)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PetRepository) GetByID(ctx context.Context, id string) (*entity.Pet, error) {
	p := &entity.Pet{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)
	if err := scanPet(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Pet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPets(rows)
}

func (r *PetRepository) ListAll(ctx context.Context) ([]entity.Pet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPets(rows)
}

func (r *PetRepository) Update(ctx context.Context, p *entity.Pet) error {
	history, vaccinations, err := marshalEmbedded(p)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE pets
		SET name = $1, species = $2, breed = NULLIF($3, ''), age = $4, weight = $5,
		    photo_url = NULLIF($6, ''), medical_history = $7, vaccinations = $8,
		    updated_at = now()
		WHERE id = $9
	`, p.Name, p.Species, p.Breed, p.Age, p.Weight, p.PhotoURL, history, vaccinations, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func marshalEmbedded(p *entity.Pet) (history, vaccinations []byte, err error) {
	if p.MedicalHistory == nil {
		p.MedicalHistory = []entity.MedicalRecord{}
	}
	if p.Vaccinations == nil {
		p.Vaccinations = []entity.Vaccination{}
	}
	history, err = json.Marshal(p.MedicalHistory)
	if err != nil {
		return nil, nil, err
	}
	vaccinations, err = json.Marshal(p.Vaccinations)
	if err != nil {
		return nil, nil, err
	}
	return history, vaccinations, nil
}

func collectPets(rows pgx.Rows) ([]entity.Pet, error) {
	pets := make([]entity.Pet, 0)
	for rows.Next() {
		var p entity.Pet
		if err := scanPet(rows, &p); err != nil {
			return nil, err
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

var _ repository.PetRepository = (*PetRepository)(nil)
