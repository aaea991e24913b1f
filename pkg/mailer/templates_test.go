package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_AppointmentBooked(t *testing.T) {
	subject, text, err := Render(TemplateAppointmentBooked, map[string]any{
		"OwnerName": "Jane Doe",
		"PetName":   "Rex",
		"VetName":   "Dr. Sarah Collins",
		"Date":      "2026-09-01",
		"Time":      "10:30",
		"Reason":    "Annual checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, "Your appointment is booked", subject)
	assert.Contains(t, text, "Hi Jane Doe,")
	assert.Contains(t, text, "Rex")
	assert.Contains(t, text, "Dr. Sarah Collins")
	assert.Contains(t, text, "2026-09-01")
}

func TestRender_AppointmentStatus(t *testing.T) {
	subject, text, err := Render(TemplateAppointmentStatus, map[string]any{
		"OwnerName": "Jane Doe",
		"PetName":   "Rex",
		"Date":      "2026-09-01",
		"Time":      "10:30",
		"Status":    "cancelled",
	})
	require.NoError(t, err)
	assert.Equal(t, "Your appointment was updated", subject)
	assert.Contains(t, text, "now cancelled")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, err := Render("does-not-exist", nil)
	assert.Error(t, err)
}
