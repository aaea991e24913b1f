package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pawcare/pawcare-api/internal/interface/http"
)

// PetModule wires the protected pet CRUD, photo upload, and search routes.
type PetModule struct {
	Handler *handlers.PetHandler
	AuthMW  gin.HandlerFunc
}

func NewPetModule(h *handlers.PetHandler, authMW gin.HandlerFunc) *PetModule {
	return &PetModule{Handler: h, AuthMW: authMW}
}

func (m *PetModule) Register(rg *gin.RouterGroup) {
	pets := rg.Group("/pets")
	pets.Use(m.AuthMW)
	{
		pets.POST("", m.Handler.Create)
		pets.GET("", m.Handler.List)
		pets.GET("/search", m.Handler.Search)
		pets.GET("/:id", m.Handler.Get)
		pets.PUT("/:id", m.Handler.Update)
		pets.DELETE("/:id", m.Handler.Delete)
		pets.POST("/:id/photo", m.Handler.UploadPhoto)
	}
}
