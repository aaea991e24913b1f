package mailer

import (
	"fmt"
	"strings"
	"text/template"
)

var templates = map[string]struct {
	subject string
	body    string
}{
	TemplateAppointmentBooked: {
		subject: "Your appointment is booked",
		body: `Hi {{.OwnerName}},

Your appointment for {{.PetName}} with {{.VetName}} is confirmed.

Date:   {{.Date}}
Time:   {{.Time}}
Reason: {{.Reason}}

See you at the clinic.`,
	},
	TemplateAppointmentStatus: {
		subject: "Your appointment was updated",
		body: `Hi {{.OwnerName}},

The appointment for {{.PetName}} on {{.Date}} at {{.Time}} is now {{.Status}}.`,
	},
}

// Render produces the subject and plain-text body for a named template.
func Render(name string, data map[string]any) (subject, text string, err error) {
	t, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(t.body)
	if err != nil {
		return "", "", err
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", "", err
	}
	return t.subject, sb.String(), nil
}
