package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"github.com/pawcare/pawcare-api/internal/application"
	"github.com/pawcare/pawcare-api/internal/interface/middleware"
	"github.com/pawcare/pawcare-api/pkg/response"
	"github.com/pawcare/pawcare-api/pkg/validation"
)

type PetHandler struct {
	Svc    *application.PetService
	Logger *logrus.Logger
}

func NewPetHandler(svc *application.PetService, logger *logrus.Logger) *PetHandler {
	return &PetHandler{Svc: svc, Logger: logger}
}

type petRequest struct {
	Name    string   `json:"name" binding:"required"`
	Species string   `json:"species" binding:"required"`
	Breed   string   `json:"breed"`
	Age     *int     `json:"age" binding:"omitempty,gte=0"`
	Weight  *float64 `json:"weight" binding:"omitempty,gte=0"`
}

// petUpdateFields is the closed set of field names accepted on update;
// anything else fails the whole operation.
var petUpdateFields = map[string]bool{
	"name":    true,
	"species": true,
	"breed":   true,
	"age":     true,
	"weight":  true,
}

func (r petRequest) toInput() application.PetInput {
	return application.PetInput{
		Name:    r.Name,
		Species: r.Species,
		Breed:   r.Breed,
		Age:     r.Age,
		Weight:  r.Weight,
	}
}

// Create registers a pet owned by the acting identity; any owner field in
// the payload is ignored.
func (h *PetHandler) Create(c *gin.Context) {
	var req petRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.FirstMessage(err), validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), middleware.Actor(c), req.toInput())
	if err != nil {
		failFromService(c, err, "Pet not found")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"pet": p}, "Pet created successfully")
}

// List returns the actor's pets, or every pet for admins.
func (h *PetHandler) List(c *gin.Context) {
	pets, err := h.Svc.List(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		failFromService(c, err, "Pet not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pets": pets}, "Pets retrieved successfully")
}

func (h *PetHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		failFromService(c, err, "Pet not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pet": p}, "Pet retrieved successfully")
}

// Update is a full-field update: every allowed field is validated and
// applied; an unknown field name rejects the whole payload.
func (h *PetHandler) Update(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", nil)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid json", nil)
		return
	}
	for field := range raw {
		if !petUpdateFields[field] {
			response.Fail(c, http.StatusBadRequest, "Invalid updates", nil)
			return
		}
	}

	var req petRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.JoinedMessage(err), validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.toInput())
	if err != nil {
		failFromService(c, err, "Pet not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pet": p}, "Pet updated successfully")
}

func (h *PetHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		failFromService(c, err, "Pet not found")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Pet deleted successfully")
}

// UploadPhoto accepts a multipart "photo" file and stores it in object
// storage, recording the public URL on the pet.
func (h *PetHandler) UploadPhoto(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "photo file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "photo file is unreadable", nil)
		return
	}
	defer func() { _ = f.Close() }()

	contentType := fh.Header.Get("Content-Type")
	url, err := h.Svc.UploadPhoto(c.Request.Context(), middleware.Actor(c), c.Param("id"), f, fh.Filename, contentType)
	if err != nil {
		failFromService(c, err, "Pet not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"photoUrl": url}, "Photo uploaded successfully")
}

// Search queries the pet search index, scoped to the actor's role.
func (h *PetHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Fail(c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size := 10
	if s := c.Query("size"); s != "" {
		if n, err := parseSize(s); err == nil {
			size = n
		}
	}

	hits, err := h.Svc.Search(c.Request.Context(), middleware.Actor(c), q, size)
	if err != nil {
		failFromService(c, err, "Pet not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": hits}, "Search results")
}
