package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawcare/pawcare-api/internal/domain/entity"
	repo "github.com/pawcare/pawcare-api/internal/domain/repository"
)

type apptFixture struct {
	svc    *AppointmentService
	users  *fakeUserRepo
	pets   *fakePetRepo
	appts  *fakeAppointmentRepo
	owner  *entity.User
	vet    *entity.User
	admin  *entity.User
	pet    *entity.Pet
}

func newApptFixture(t *testing.T) *apptFixture {
	t.Helper()
	users := newFakeUserRepo()
	pets := newFakePetRepo()
	appts := newFakeAppointmentRepo()
	ctx := context.Background()

	owner := &entity.User{ID: "client-1", Name: "Jane Doe", Email: "jane@x.com", Role: entity.RoleClient}
	vet := &entity.User{ID: "vet-1", Name: "Dr. Collins", Email: "vet@x.com", Role: entity.RoleVeterinarian}
	admin := &entity.User{ID: "admin-1", Name: "Admin", Email: "admin@x.com", Role: entity.RoleAdmin}
	require.NoError(t, users.Create(ctx, owner))
	require.NoError(t, users.Create(ctx, vet))
	require.NoError(t, users.Create(ctx, admin))

	pet := &entity.Pet{Name: "Rex", Species: entity.SpeciesDog, OwnerID: owner.ID}
	require.NoError(t, pets.Create(ctx, pet))

	// nil publisher disables email jobs
	svc := NewAppointmentService(appts, pets, users, nil, false, testLogger())
	return &apptFixture{svc: svc, users: users, pets: pets, appts: appts, owner: owner, vet: vet, admin: admin, pet: pet}
}

func (f *apptFixture) book(t *testing.T) *entity.Appointment {
	t.Helper()
	a, err := f.svc.Create(context.Background(), f.owner, AppointmentInput{
		PetID:          f.pet.ID,
		VeterinarianID: f.vet.ID,
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:           "10:30",
		Reason:         "Annual checkup",
	})
	require.NoError(t, err)
	return a
}

func TestAppointmentService_Create(t *testing.T) {
	f := newApptFixture(t)
	a := f.book(t)

	assert.Equal(t, f.owner.ID, a.OwnerID)
	assert.Equal(t, f.vet.ID, a.VeterinarianID)
	assert.Equal(t, entity.StatusScheduled, a.Status)
}

func TestAppointmentService_Create_NotAVeterinarian(t *testing.T) {
	f := newApptFixture(t)

	_, err := f.svc.Create(context.Background(), f.owner, AppointmentInput{
		PetID:          f.pet.ID,
		VeterinarianID: f.admin.ID, // an admin, not a vet
		Date:           time.Now(),
		Time:           "10:30",
		Reason:         "Checkup",
	})
	assert.ErrorIs(t, err, ErrNotAVeterinarian)

	_, err = f.svc.Create(context.Background(), f.owner, AppointmentInput{
		PetID:          f.pet.ID,
		VeterinarianID: "missing",
		Date:           time.Now(),
		Time:           "10:30",
		Reason:         "Checkup",
	})
	assert.ErrorIs(t, err, ErrNotAVeterinarian)
}

func TestAppointmentService_Create_OtherOwnersPet(t *testing.T) {
	f := newApptFixture(t)
	stranger := &entity.User{ID: "client-2", Role: entity.RoleClient}
	require.NoError(t, f.users.Create(context.Background(), stranger))

	_, err := f.svc.Create(context.Background(), stranger, AppointmentInput{
		PetID:          f.pet.ID,
		VeterinarianID: f.vet.ID,
		Date:           time.Now(),
		Time:           "10:30",
		Reason:         "Checkup",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAppointmentService_Create_MissingPet(t *testing.T) {
	f := newApptFixture(t)

	_, err := f.svc.Create(context.Background(), f.owner, AppointmentInput{
		PetID:          "missing",
		VeterinarianID: f.vet.ID,
		Date:           time.Now(),
		Time:           "10:30",
		Reason:         "Checkup",
	})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestAppointmentService_List_Scoped(t *testing.T) {
	f := newApptFixture(t)
	ctx := context.Background()
	f.book(t)

	// Appointment for another client with another vet
	other := &entity.User{ID: "client-2", Name: "Bob", Email: "bob@x.com", Role: entity.RoleClient}
	vet2 := &entity.User{ID: "vet-2", Name: "Dr. Ortega", Email: "vet2@x.com", Role: entity.RoleVeterinarian}
	require.NoError(t, f.users.Create(ctx, other))
	require.NoError(t, f.users.Create(ctx, vet2))
	otherPet := &entity.Pet{Name: "Whiskers", Species: entity.SpeciesCat, OwnerID: other.ID}
	require.NoError(t, f.pets.Create(ctx, otherPet))
	_, err := f.svc.Create(ctx, other, AppointmentInput{
		PetID: otherPet.ID, VeterinarianID: vet2.ID, Date: time.Now(), Time: "11:00", Reason: "Vaccination",
	})
	require.NoError(t, err)

	mine, err := f.svc.List(ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.owner.ID, mine[0].OwnerID)

	assigned, err := f.svc.List(ctx, f.vet)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, f.vet.ID, assigned[0].VeterinarianID)

	all, err := f.svc.List(ctx, f.admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAppointmentService_Update_Fields(t *testing.T) {
	f := newApptFixture(t)
	a := f.book(t)

	newDate := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	upd, err := f.svc.Update(context.Background(), f.owner, a.ID, AppointmentUpdate{
		Date:   &newDate,
		Time:   strPtr("14:00"),
		Notes:  strPtr("Bring vaccination card"),
	})
	require.NoError(t, err)
	assert.Equal(t, newDate, upd.Date)
	assert.Equal(t, "14:00", upd.Time)
	assert.Equal(t, "Bring vaccination card", upd.Notes)
	assert.Equal(t, "Annual checkup", upd.Reason)
	assert.Equal(t, entity.StatusScheduled, upd.Status)
}

func TestAppointmentService_Update_AccessDenied(t *testing.T) {
	f := newApptFixture(t)
	a := f.book(t)

	stranger := &entity.User{ID: "client-2", Role: entity.RoleClient}
	_, err := f.svc.Update(context.Background(), stranger, a.ID, AppointmentUpdate{Notes: strPtr("x")})
	assert.ErrorIs(t, err, ErrAccessDenied)

	otherVet := &entity.User{ID: "vet-2", Role: entity.RoleVeterinarian}
	_, err = f.svc.Update(context.Background(), otherVet, a.ID, AppointmentUpdate{Notes: strPtr("x")})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAppointmentService_Update_StatusLifecycle(t *testing.T) {
	f := newApptFixture(t)
	ctx := context.Background()

	completed := entity.StatusCompleted
	scheduled := entity.StatusScheduled
	cancelled := entity.StatusCancelled

	// Assigned vet completes
	a := f.book(t)
	upd, err := f.svc.Update(ctx, f.vet, a.ID, AppointmentUpdate{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, upd.Status)

	// Terminal state refuses further transitions
	_, err = f.svc.Update(ctx, f.admin, a.ID, AppointmentUpdate{Status: &scheduled})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.svc.Update(ctx, f.vet, a.ID, AppointmentUpdate{Status: &cancelled})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Client may cancel their own appointment
	b := f.book(t)
	upd, err = f.svc.Update(ctx, f.owner, b.ID, AppointmentUpdate{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, upd.Status)

	// But may not complete it
	c := f.book(t)
	_, err = f.svc.Update(ctx, f.owner, c.ID, AppointmentUpdate{Status: &completed})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Setting the current status again is a no-op
	d := f.book(t)
	_, err = f.svc.Update(ctx, f.owner, d.ID, AppointmentUpdate{Status: &scheduled})
	assert.NoError(t, err)
}
