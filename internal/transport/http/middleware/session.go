package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrackr/internal/model"
	"studytrackr/internal/session"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

type UserLookup interface {
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
}

// LoadSession resolves the session cookie and exposes the logged-in
// identity on the request context. A session whose user no longer exists
// is cleared.
func LoadSession(sessions *session.Manager, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Load(c); err != nil {
			log.Printf("load session failed: %v", err)
		}
		if identity, ok := sessions.CurrentUser(c); ok {
			user, err := users.GetUserByID(c.Request.Context(), identity.UserID)
			switch {
			case err != nil:
				log.Printf("lookup session user %d failed: %v", identity.UserID, err)
			case user == nil:
				if err := sessions.Clear(c); err != nil {
					log.Printf("clear stale session failed: %v", err)
				}
			default:
				c.Set(ContextUserIDKey, user.ID)
				c.Set(ContextUsernameKey, user.Username)
			}
		}
		c.Next()
	}
}

// RequireLogin stops anonymous requests before any handler work happens.
func RequireLogin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			if err := sessions.AddFlash(c, session.FlashError, "Please login first"); err != nil {
				log.Printf("store login notice failed: %v", err)
			}
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (session.Identity, bool) {
	userID := c.GetUint(ContextUserIDKey)
	if userID == 0 {
		return session.Identity{}, false
	}
	return session.Identity{UserID: userID, Username: c.GetString(ContextUsernameKey)}, true
}
