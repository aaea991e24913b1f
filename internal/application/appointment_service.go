package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pawcare/pawcare-api/internal/domain/access"
	"github.com/pawcare/pawcare-api/internal/domain/entity"
	repo "github.com/pawcare/pawcare-api/internal/domain/repository"
	"github.com/pawcare/pawcare-api/pkg/helpers"
	"github.com/pawcare/pawcare-api/pkg/mailer"
)

// AppointmentService implements booking, role-scoped listing, and lifecycle
// updates. Notification jobs go to the mail queue asynchronously; a nil
// publisher disables them.
type AppointmentService struct {
	Appointments repo.AppointmentRepository
	Pets         repo.PetRepository
	Users        repo.UserRepository
	Mail         *helpers.RabbitPublisher
	MailEnabled  bool
	Logger       *logrus.Logger
}

func NewAppointmentService(appts repo.AppointmentRepository, pets repo.PetRepository, users repo.UserRepository, mail *helpers.RabbitPublisher, mailEnabled bool, logger *logrus.Logger) *AppointmentService {
	return &AppointmentService{
		Appointments: appts,
		Pets:         pets,
		Users:        users,
		Mail:         mail,
		MailEnabled:  mailEnabled,
		Logger:       logger,
	}
}

type AppointmentInput struct {
	PetID          string
	VeterinarianID string
	Date           time.Time
	Time           string
	Reason         string
	Notes          string
}

// Create books an appointment. The owner is always the acting identity:
// any owner field in the request payload is ignored upstream and never
// reaches this input. The pet must belong to the actor (admins excepted)
// and the veterinarian reference must be an actual veterinarian.
func (s *AppointmentService) Create(ctx context.Context, actor *entity.User, in AppointmentInput) (*entity.Appointment, error) {
	pet, err := s.Pets.GetByID(ctx, in.PetID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessPet(actor, pet) {
		return nil, ErrAccessDenied
	}

	vet, err := s.Users.GetByID(ctx, in.VeterinarianID)
	if err != nil || vet.Role != entity.RoleVeterinarian {
		return nil, ErrNotAVeterinarian
	}

	a := &entity.Appointment{
		PetID:          in.PetID,
		OwnerID:        actor.ID,
		VeterinarianID: in.VeterinarianID,
		Date:           in.Date,
		Time:           in.Time,
		Reason:         in.Reason,
		Notes:          in.Notes,
		Status:         entity.StatusScheduled,
	}
	if err := s.Appointments.Create(ctx, a); err != nil {
		return nil, err
	}

	s.notify(ctx, mailer.TemplateAppointmentBooked, actor.Email, map[string]any{
		"OwnerName": actor.Name,
		"PetName":   pet.Name,
		"VetName":   vet.Name,
		"Date":      a.Date.Format("2006-01-02"),
		"Time":      a.Time,
		"Reason":    a.Reason,
	})
	return a, nil
}

// List returns the appointments visible to the actor under their role scope.
func (s *AppointmentService) List(ctx context.Context, actor *entity.User) ([]entity.Appointment, error) {
	return s.Appointments.List(ctx, access.AppointmentScope(actor))
}

// AppointmentUpdate carries the partial field set allowed on update.
// Nil means "leave unchanged".
type AppointmentUpdate struct {
	Date   *time.Time
	Time   *string
	Reason *string
	Notes  *string
	Status *entity.AppointmentStatus
}

// Update applies a partial update. Status changes are checked against the
// lifecycle (only scheduled has exits) and against the actor's entitlement:
// veterinarians on their own appointments, clients may only cancel their
// own, admins anything.
func (s *AppointmentService) Update(ctx context.Context, actor *entity.User, id string, upd AppointmentUpdate) (*entity.Appointment, error) {
	a, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanUpdateAppointment(actor, a) {
		return nil, ErrAccessDenied
	}

	statusChanged := false
	if upd.Status != nil && *upd.Status != a.Status {
		if !access.CanSetAppointmentStatus(actor, a, *upd.Status) {
			return nil, ErrAccessDenied
		}
		if !a.Status.CanTransitionTo(*upd.Status) {
			return nil, ErrInvalidTransition
		}
		a.Status = *upd.Status
		statusChanged = true
	}
	if upd.Date != nil {
		a.Date = *upd.Date
	}
	if upd.Time != nil {
		a.Time = *upd.Time
	}
	if upd.Reason != nil {
		a.Reason = *upd.Reason
	}
	if upd.Notes != nil {
		a.Notes = *upd.Notes
	}

	if err := s.Appointments.Update(ctx, a); err != nil {
		return nil, err
	}

	if statusChanged {
		if owner, oErr := s.Users.GetByID(ctx, a.OwnerID); oErr == nil {
			pet, _ := s.Pets.GetByID(ctx, a.PetID)
			petName := ""
			if pet != nil {
				petName = pet.Name
			}
			s.notify(ctx, mailer.TemplateAppointmentStatus, owner.Email, map[string]any{
				"OwnerName": owner.Name,
				"PetName":   petName,
				"Date":      a.Date.Format("2006-01-02"),
				"Time":      a.Time,
				"Status":    string(a.Status),
			})
		}
	}
	return a, nil
}

// notify enqueues an email job; failures are logged, never surfaced.
func (s *AppointmentService) notify(ctx context.Context, template, to string, data map[string]any) {
	if s.Mail == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{To: to, Template: template, Data: data}
	if err := s.Mail.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("template", template).Warn("publish email job failed")
	}
}
