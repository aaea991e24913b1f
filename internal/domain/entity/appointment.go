package entity

import (
	"fmt"
	"time"
)

// AppointmentStatus is the appointment lifecycle state. scheduled is the
// only state with outgoing transitions; completed and cancelled are terminal.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step. Setting the same status again is a no-op and allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusScheduled:
		return next == StatusCompleted || next == StatusCancelled
	case StatusCompleted, StatusCancelled:
		return false
	}
	return false
}

// Appointment references a pet, its owning client, and a veterinarian.
// OwnerID is always derived from the authenticated creator, never from
// request input.
type Appointment struct {
	ID             string            `json:"id"`
	PetID          string            `json:"pet"`
	OwnerID        string            `json:"owner"`
	VeterinarianID string            `json:"veterinarian"`
	Date           time.Time         `json:"date"`
	Time           string            `json:"time"`
	Reason         string            `json:"reason"`
	Notes          string            `json:"notes,omitempty"`
	Status         AppointmentStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
