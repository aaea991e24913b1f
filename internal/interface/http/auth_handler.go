package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pawcare/pawcare-api/internal/application"
	"github.com/pawcare/pawcare-api/internal/domain/entity"
	"github.com/pawcare/pawcare-api/internal/interface/middleware"
	"github.com/pawcare/pawcare-api/pkg/helpers"
	"github.com/pawcare/pawcare-api/pkg/response"
	"github.com/pawcare/pawcare-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: helpers.NewCookieManager(cookieDomain, cookieSecure), Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"omitempty,oneof=admin veterinarian client"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and issues the session token, delivered both
// in the body and as an HTTP-only cookie.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.FirstMessage(err), validation.ToDetails(err))
		return
	}
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	u, token, exp, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail(c, http.StatusBadRequest, "Email already registered", nil)
			return
		}
		failFromService(c, err, "User not found")
		return
	}

	h.Cookies.SetSession(c, token, exp)
	response.Success(c, http.StatusCreated, gin.H{"user": u, "token": token}, "Registration successful")
}

// Login verifies credentials and issues the session token (body + cookie).
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.FirstMessage(err), validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	h.Cookies.SetSession(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{"user": u, "token": token}, "Login successful")
}

// Logout clears the session cookie. Tokens themselves stay valid until
// expiry; there is no server-side revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "Logout successful")
}

// Profile returns the acting identity's own record.
func (h *AuthHandler) Profile(c *gin.Context) {
	actor := middleware.Actor(c)
	u, err := h.Svc.Profile(c.Request.Context(), actor.ID)
	if err != nil {
		failFromService(c, err, "User not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "Profile retrieved")
}
