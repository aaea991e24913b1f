package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pawcare/pawcare-api/internal/interface/http"
)

// UserModule wires the protected user listings: veterinarians for any
// authenticated identity, the full roster for admins.
type UserModule struct {
	Handler *handlers.UserHandler
	AuthMW  gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, authMW gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, AuthMW: authMW}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(m.AuthMW)
	{
		users.GET("/veterinarians", m.Handler.Veterinarians)
		users.GET("", m.Handler.List)
	}
}
