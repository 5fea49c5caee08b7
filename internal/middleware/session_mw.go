package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"game_catalog/internal/model"
	"game_catalog/internal/session"
)

const (
	// SessionCookieName is the cookie carrying the opaque session identifier
	SessionCookieName = "session_id"

	// SessionUserKey is the gin context key holding the identity snapshot
	SessionUserKey = "sessionUser"
)

// CurrentUser returns the snapshot loaded by RequireAuthenticated
func CurrentUser(c *gin.Context) (*model.SessionUser, bool) {
	val, exists := c.Get(SessionUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.SessionUser)
	if !ok {
		return nil, false
	}
	return user, true
}

// RequireAuthenticated continues only when the request carries a session
// cookie with a live snapshot in the store. The snapshot is placed in the
// gin context for downstream gates and handlers.
func RequireAuthenticated(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		user, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			// Expired, unknown, or a store failure: every case reads as
			// anonymous to the caller.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		c.Set(SessionUserKey, user)
		c.Next()
	}
}

// RequireAdmin continues only when the snapshot's role is admin. It is
// meant to run after RequireAuthenticated; an absent snapshot is treated
// as denied rather than a panic, so a misordered pipeline fails closed.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}

// RequireAnonymous continues only when the request carries no live
// session. An authenticated caller gets a redirect hint so the client can
// leave the login/register pages.
func RequireAnonymous(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookieName)
		if err == nil {
			if _, err := store.Get(c.Request.Context(), sid); err == nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"message":  "Already authenticated",
					"redirect": true,
				})
				return
			}
		}
		c.Next()
	}
}
