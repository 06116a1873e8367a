package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"glowfolio-backend/internal/models"
	"glowfolio-backend/internal/service"
	"glowfolio-backend/pkg/logger"
	"glowfolio-backend/pkg/validator"
)

// APIHandler serves the JSON API used by the kit editor.
type APIHandler struct {
	kits      service.KitUseCase
	templates service.TemplateUseCase
}

func NewAPIHandler(kits service.KitUseCase, templateService service.TemplateUseCase) *APIHandler {
	return &APIHandler{kits: kits, templates: templateService}
}

func (h *APIHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.templates.List()})
}

func (h *APIHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": h.templates.Presets()})
}

// TemplateTheme resolves the theme a template renders with for ?preset=.
func (h *APIHandler) TemplateTheme(c *gin.Context) {
	id := c.Param("id")

	t, err := h.templates.ThemeFor(id, c.Query("preset"), nil)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error(err, "Failed to resolve template theme", map[string]interface{}{"template": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": id, "theme": t})
}

// Render renders posted editor state and responds with the kit markup.
func (h *APIHandler) Render(c *gin.Context) {
	var req models.RenderKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	html, err := h.kits.Render(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidColorScheme) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.FromContext(c.Request.Context()).WithError(err).Error("Failed to render kit request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render kit"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PreviewData returns a creator's profile projected into editor preview data.
func (h *APIHandler) PreviewData(c *gin.Context) {
	username, ok := usernameParam(c)
	if !ok {
		return
	}

	data, _, err := h.kits.PreviewData(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.FromContext(c.Request.Context()).WithError(err).WithField("username", username).Error("Failed to load preview data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// RenderProfile renders a creator's saved kit with the posted editor state
// laid over it. Blank posted fields keep the stored values.
func (h *APIHandler) RenderProfile(c *gin.Context) {
	username, ok := usernameParam(c)
	if !ok {
		return
	}

	var req models.RenderKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	html, err := h.kits.RenderProfile(c.Request.Context(), username, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidColorScheme):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.FromContext(c.Request.Context()).WithError(err).WithField("username", username).Error("Failed to render profile edits")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render kit"})
		}
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func usernameParam(c *gin.Context) (string, bool) {
	username := strings.TrimSpace(c.Param("username"))
	if !validator.ValidUsername(username) {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrProfileNotFound.Error()})
		return "", false
	}
	return username, true
}
