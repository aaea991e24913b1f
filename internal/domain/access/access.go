// Package access holds the pure role/ownership decision functions applied
// before every entity operation. Each function switches exhaustively over
// the acting identity's role so adding a role is a compile-visible change.
package access

import "github.com/pawcare/pawcare-api/internal/domain/entity"

// CanAccessPet decides read/update/delete on a pet: admins always, otherwise
// only the owner.
func CanAccessPet(actor *entity.User, pet *entity.Pet) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleVeterinarian, entity.RoleClient:
		return pet.OwnerID == actor.ID
	}
	return false
}

// AppointmentFilter describes the row-level scope an identity sees when
// listing appointments.
type AppointmentFilter struct {
	OwnerID        string // non-empty: only appointments owned by this user
	VeterinarianID string // non-empty: only appointments assigned to this vet
}

// AppointmentScope returns the listing filter for the acting identity:
// clients see their own, veterinarians see those assigned to them,
// admins see all.
func AppointmentScope(actor *entity.User) AppointmentFilter {
	switch actor.Role {
	case entity.RoleAdmin:
		return AppointmentFilter{}
	case entity.RoleVeterinarian:
		return AppointmentFilter{VeterinarianID: actor.ID}
	case entity.RoleClient:
		return AppointmentFilter{OwnerID: actor.ID}
	}
	// Unknown roles see nothing that is not their own.
	return AppointmentFilter{OwnerID: actor.ID}
}

// CanUpdateAppointment decides whether the actor may touch the appointment
// at all (field edits other than status).
func CanUpdateAppointment(actor *entity.User, appt *entity.Appointment) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleVeterinarian:
		return appt.VeterinarianID == actor.ID
	case entity.RoleClient:
		return appt.OwnerID == actor.ID
	}
	return false
}

// CanSetAppointmentStatus decides whether the actor may set the given
// status. Veterinarians and admins may complete or cancel; clients may only
// cancel their own appointments.
func CanSetAppointmentStatus(actor *entity.User, appt *entity.Appointment, next entity.AppointmentStatus) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleVeterinarian:
		return appt.VeterinarianID == actor.ID
	case entity.RoleClient:
		return appt.OwnerID == actor.ID && next == entity.StatusCancelled
	}
	return false
}

// CanListUsers restricts the full user listing to admins.
func CanListUsers(actor *entity.User) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleVeterinarian, entity.RoleClient:
		return false
	}
	return false
}
