package mailer

// Template names understood by the email worker.
const (
	TemplateAppointmentBooked = "appointment_booked"
	TemplateAppointmentStatus = "appointment_status"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Subject and Text may be set directly, or a Template name with Data.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
