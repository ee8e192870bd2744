package http

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/basketsync/backend/internal/domain"
	"github.com/basketsync/backend/internal/logger"
	"github.com/basketsync/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// ShoppingList is the part of the list sync client the handlers need
type ShoppingList interface {
	AddItems(ctx context.Context, ingredients []*domain.Ingredient) error
	NotifyUsersAboutChangesInList(ctx context.Context) error
	ListUUID() domain.ListHandle
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	list   ShoppingList
	parser *usecase.IngredientParser
	log    *logger.Logger

	// one recipe at a time; the Bring session is not safe for concurrent use
	mu sync.Mutex
}

// NewHandler creates a new HTTP handler
func NewHandler(list ShoppingList, parser *usecase.IngredientParser, log *logger.Logger) *Handler {
	return &Handler{
		list:   list,
		parser: parser,
		log:    log.Component("http"),
	}
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(c *gin.Context) {
	resp := gin.H{
		"status":  "healthy",
		"service": "basketsync",
	}
	if h.list != nil {
		resp["list"] = string(h.list.ListUUID())
	}
	c.JSON(http.StatusOK, resp)
}

// AddRecipe handles the Mealie webhook: every ingredient of the posted recipe
// is added to the list, then the list members are notified.
func (h *Handler) AddRecipe(c *gin.Context) {
	if h.list == nil || h.parser == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Shopping list not configured",
		})
		return
	}

	var payload domain.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	recipe := payload.Content
	ingredients := h.parser.Parse(recipe)
	if len(ingredients) == 0 {
		h.log.Info().Str("recipe", recipe.Name).Msg("Recipe has no ingredients to add")
		c.JSON(http.StatusOK, gin.H{"added": 0, "recipe": recipe.Name})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := c.Request.Context()
	if err := h.list.AddItems(ctx, ingredients); err != nil {
		h.handleError(c, err, "Failed to add items")
		return
	}
	if err := h.list.NotifyUsersAboutChangesInList(ctx); err != nil {
		h.handleError(c, err, "Failed to notify list members")
		return
	}

	h.log.Info().
		Str("recipe", recipe.Name).
		Int("added", len(ingredients)).
		Msg("Added recipe to shopping list")

	c.JSON(http.StatusOK, gin.H{
		"added":  len(ingredients),
		"recipe": recipe.Name,
	})
}

func (h *Handler) handleError(c *gin.Context, err error, msg string) {
	h.log.Error().Err(err).Msg(msg)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request cancelled"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Bring rejected the credentials"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Bring API temporarily unavailable"})
	}
}
