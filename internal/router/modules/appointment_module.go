package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pawcare/pawcare-api/internal/interface/http"
)

// AppointmentModule wires the protected appointment routes. Appointments
// are never deleted; the lifecycle ends at completed or cancelled.
type AppointmentModule struct {
	Handler *handlers.AppointmentHandler
	AuthMW  gin.HandlerFunc
}

func NewAppointmentModule(h *handlers.AppointmentHandler, authMW gin.HandlerFunc) *AppointmentModule {
	return &AppointmentModule{Handler: h, AuthMW: authMW}
}

func (m *AppointmentModule) Register(rg *gin.RouterGroup) {
	appts := rg.Group("/appointments")
	appts.Use(m.AuthMW)
	{
		appts.POST("", m.Handler.Create)
		appts.GET("", m.Handler.List)
		appts.PUT("/:id", m.Handler.Update)
	}
}
