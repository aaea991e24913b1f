package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pawcare/pawcare-api/internal/application"
	"github.com/pawcare/pawcare-api/internal/interface/middleware"
	"github.com/pawcare/pawcare-api/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Veterinarians lists bookable vets; visible to any authenticated identity.
func (h *UserHandler) Veterinarians(c *gin.Context) {
	vets, err := h.Svc.Veterinarians(c.Request.Context())
	if err != nil {
		failFromService(c, err, "User not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"veterinarians": vets}, "Veterinarians retrieved successfully")
}

// List returns every user; admin only.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.All(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		failFromService(c, err, "User not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users}, "Users retrieved successfully")
}
