package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawcare/pawcare-api/internal/domain/access"
	"github.com/pawcare/pawcare-api/internal/domain/entity"
	"github.com/pawcare/pawcare-api/internal/domain/repository"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentColumns = `id, pet_id, owner_id, veterinarian_id, date, time, reason,
	COALESCE(notes, ''), status, created_at, updated_at`

func scanAppointment(row pgx.Row, a *entity.Appointment) error {
	return row.Scan(&a.ID, &a.PetID, &a.OwnerID, &a.VeterinarianID, &a.Date, &a.Time,
		&a.Reason, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (pet_id, owner_id, veterinarian_id, date, time, reason, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
		RETURNING id, created_at, updated_at
	`, a.PetID, a.OwnerID, a.VeterinarianID, a.Date, a.Time, a.Reason, a.Notes, a.Status)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	a := &entity.Appointment{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
	`, id)
	if err := scanAppointment(row, a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// List returns appointments visible under the given scope, newest first.
// An empty filter means no row-level restriction (admin).
func (r *AppointmentRepository) List(ctx context.Context, filter access.AppointmentFilter) ([]entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE ($1 = '' OR owner_id::text = $1)
		  AND ($2 = '' OR veterinarian_id::text = $2)
		ORDER BY date DESC, time DESC
	`
	rows, err := r.pool.Query(ctx, query, filter.OwnerID, filter.VeterinarianID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := make([]entity.Appointment, 0)
	for rows.Next() {
		var a entity.Appointment
		if err := scanAppointment(rows, &a); err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *AppointmentRepository) Update(ctx context.Context, a *entity.Appointment) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET date = $1, time = $2, reason = $3, notes = NULLIF($4, ''), status = $5,
		    updated_at = now()
		WHERE id = $6
	`, a.Date, a.Time, a.Reason, a.Notes, a.Status, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)
