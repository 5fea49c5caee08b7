package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"game_catalog/internal/apperr"
	"game_catalog/internal/model"
	"game_catalog/internal/service"
)

// GameHandler handles catalog requests
type GameHandler struct {
	service service.GameService
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(s service.GameService) *GameHandler {
	return &GameHandler{service: s}
}

// gameID parses the :id route parameter. A malformed identifier is an
// InvalidIdentifier failure, which the shaper maps to 500 to match the
// observed behavior of surfacing the store's cast error.
func gameID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperr.Wrap(apperr.InvalidIdentifier, "Server error", err)
	}
	return id, nil
}

func (h *GameHandler) List(c *gin.Context) {
	games, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

func (h *GameHandler) Get(c *gin.Context) {
	id, err := gameID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	game, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": game})
}

func (h *GameHandler) Create(c *gin.Context) {
	var req model.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	game, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Game created successfully", "game": game})
}

func (h *GameHandler) Update(c *gin.Context) {
	id, err := gameID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req model.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	game, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game updated successfully", "game": game})
}

func (h *GameHandler) Delete(c *gin.Context) {
	id, err := gameID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}

// RegisterGameRoutes registers catalog routes. Reads are open; mutations
// run behind the authenticated-admin gate pair, in that order.
func (h *GameHandler) RegisterGameRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	games := rg.Group("/games")
	{
		games.GET("", h.List)
		games.GET("/:id", h.Get)
		games.POST("", requireAuth, requireAdmin, h.Create)
		games.PUT("/:id", requireAuth, requireAdmin, h.Update)
		games.DELETE("/:id", requireAuth, requireAdmin, h.Delete)
	}
}
