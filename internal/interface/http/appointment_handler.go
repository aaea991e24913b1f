package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pawcare/pawcare-api/internal/application"
	"github.com/pawcare/pawcare-api/internal/domain/entity"
	"github.com/pawcare/pawcare-api/internal/interface/middleware"
	"github.com/pawcare/pawcare-api/pkg/response"
	"github.com/pawcare/pawcare-api/pkg/validation"
)

const dateLayout = "2006-01-02"

type AppointmentHandler struct {
	Svc    *application.AppointmentService
	Logger *logrus.Logger
}

func NewAppointmentHandler(svc *application.AppointmentService, logger *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

type appointmentRequest struct {
	Pet          string `json:"pet" binding:"required"`
	Veterinarian string `json:"veterinarian" binding:"required"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string `json:"time" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
	Notes        string `json:"notes"`
}

// appointmentUpdateFields is the closed set of field names accepted on
// update; any other key rejects the whole payload.
var appointmentUpdateFields = map[string]bool{
	"date":   true,
	"time":   true,
	"reason": true,
	"notes":  true,
	"status": true,
}

// Create books an appointment. The owner is derived from the acting
// identity; an owner field in the payload has no effect.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.FirstMessage(err), validation.ToDetails(err))
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "date must match format "+dateLayout, nil)
		return
	}

	a, err := h.Svc.Create(c.Request.Context(), middleware.Actor(c), application.AppointmentInput{
		PetID:          req.Pet,
		VeterinarianID: req.Veterinarian,
		Date:           date,
		Time:           req.Time,
		Reason:         req.Reason,
		Notes:          req.Notes,
	})
	if err != nil {
		failFromService(c, err, "Pet not found")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"appointment": a}, "Appointment created successfully")
}

// List returns appointments under the actor's role scope: clients their
// own, veterinarians those assigned to them, admins all.
func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.Svc.List(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		failFromService(c, err, "Appointment not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointments": appts}, "Appointments retrieved successfully")
}

type appointmentUpdateRequest struct {
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Reason *string `json:"reason"`
	Notes  *string `json:"notes"`
	Status *string `json:"status"`
}

// Update applies a partial update restricted to {date, time, reason,
// notes, status}. Field-name validation is all-or-nothing: one unknown
// key fails the entire operation before anything is touched.
func (h *AppointmentHandler) Update(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid json", nil)
		return
	}
	for field := range raw {
		if !appointmentUpdateFields[field] {
			response.Fail(c, http.StatusBadRequest, "Invalid updates", nil)
			return
		}
	}

	var req appointmentUpdateRequest
	if err := remarshal(raw, &req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid json", nil)
		return
	}

	upd := application.AppointmentUpdate{
		Time:   req.Time,
		Reason: req.Reason,
		Notes:  req.Notes,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "date must match format "+dateLayout, nil)
			return
		}
		upd.Date = &date
	}
	if req.Reason != nil && *req.Reason == "" {
		response.Fail(c, http.StatusBadRequest, "reason is required", nil)
		return
	}
	if req.Status != nil {
		status, err := entity.ParseAppointmentStatus(*req.Status)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		upd.Status = &status
	}

	a, err := h.Svc.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), upd)
	if err != nil {
		failFromService(c, err, "Appointment not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a}, "Appointment updated successfully")
}

func remarshal(raw map[string]json.RawMessage, dest any) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}
