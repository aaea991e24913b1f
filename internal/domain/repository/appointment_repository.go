package repository

import (
	"context"

	"github.com/pawcare/pawcare-api/internal/domain/access"
	"github.com/pawcare/pawcare-api/internal/domain/entity"
)

// AppointmentRepository defines the persistence operations for appointments.
// List applies the caller's row-level scope; records come back sorted by
// date and time, newest first.
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	List(ctx context.Context, filter access.AppointmentFilter) ([]entity.Appointment, error)
	Update(ctx context.Context, a *entity.Appointment) error
}
