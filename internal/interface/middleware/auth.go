package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pawcare/pawcare-api/internal/domain/entity"
	"github.com/pawcare/pawcare-api/pkg/helpers"
	"github.com/pawcare/pawcare-api/pkg/response"
)

const (
	CtxActorKey  = "actor"
	CtxUserIDKey = "userID"
)

// UserLoader resolves a validated token's user id to the full record.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// Auth is the authorization gate: it extracts the session token from the
// Authorization header or the session cookie, validates it, loads the
// referenced user, and attaches it as the acting identity. No protected
// handler runs without a resolved identity.
func Auth(jwt *helpers.JWTManager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.AbortFail(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = "token expired"
			}
			response.AbortFail(c, http.StatusUnauthorized, msg, nil)
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || u == nil {
			response.AbortFail(c, http.StatusUnauthorized, "invalid token", nil)
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxActorKey, u)
		c.Next()
	}
}

// Actor returns the acting identity attached by Auth, or nil outside a
// protected route.
func Actor(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxActorKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
	}
	if t, err := c.Cookie(helpers.SessionCookieName); err == nil {
		return t
	}
	return ""
}
