package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"game_catalog/internal/apperr"
	"game_catalog/internal/middleware"
	"game_catalog/internal/model"
	"game_catalog/internal/service"
	"game_catalog/internal/session"
	"game_catalog/internal/utils"
)

// AuthHandler handles registration, login, logout and the current-user
// read. It owns the session cookie: the service verifies credentials and
// returns the snapshot, the handler issues the identifier and stores it.
type AuthHandler struct {
	service   service.AuthService
	store     session.Store
	cookieAge int // seconds
}

// NewAuthHandler creates a new AuthHandler. cookieAge is the session
// cookie max-age in seconds and matches the store's time-to-live.
func NewAuthHandler(s service.AuthService, store session.Store, cookieAge int) *AuthHandler {
	return &AuthHandler{service: s, store: store, cookieAge: cookieAge}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	if err := h.service.Register(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	// No automatic login: the caller authenticates explicitly afterwards.
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	sid, err := utils.NewSessionID()
	if err != nil {
		respondError(c, apperr.Wrap(apperr.Unexpected, "Server error", err))
		return
	}
	if err := h.store.Set(c.Request.Context(), sid, user); err != nil {
		respondError(c, apperr.Wrap(apperr.Unexpected, "Server error", err))
		return
	}

	c.SetCookie(middleware.SessionCookieName, sid, h.cookieAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}

// Me returns the snapshot loaded by the authentication gate. It never
// touches the database: the snapshot is whatever login captured.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout destroys the session entry and clears the cookie. Logging out an
// already-dead session still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	sid, err := c.Cookie(middleware.SessionCookieName)
	if err == nil {
		if err := h.store.Delete(c.Request.Context(), sid); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging out"})
			return
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// RegisterAuthRoutes registers auth routes with their gates
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, requireAuth, requireAnon gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", requireAnon, h.Register)
		authGroup.POST("/login", requireAnon, h.Login)
		authGroup.GET("/me", requireAuth, h.Me)
		authGroup.POST("/logout", requireAuth, h.Logout)
	}
}
