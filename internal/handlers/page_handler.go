package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"glowfolio-backend/internal/config"
	"glowfolio-backend/internal/service"
	"glowfolio-backend/pkg/logger"
	"glowfolio-backend/pkg/validator"
)

// PageHandler serves the HTML pages: public kits and the template library.
type PageHandler struct {
	kits      service.KitUseCase
	templates service.TemplateUseCase
	pages     *template.Template
	config    *config.Config
}

func NewPageHandler(kits service.KitUseCase, templateService service.TemplateUseCase, cfg *config.Config, pages *template.Template) (*PageHandler, error) {
	if pages == nil {
		return nil, fmt.Errorf("templates are required")
	}
	if cfg == nil {
		cfg = &config.Config{SiteName: "Glowfolio"}
	}

	return &PageHandler{
		kits:      kits,
		templates: templateService,
		pages:     pages,
		config:    cfg,
	}, nil
}

// Kit renders a creator's public media kit. The template and preset query
// parameters override what the creator saved.
func (h *PageHandler) Kit(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if !validator.ValidUsername(username) {
		h.renderError(c, http.StatusNotFound, "404 - Not Found", "This media kit does not exist.")
		return
	}

	opts := service.KitOptions{
		TemplateID: c.Query("template"),
		Preset:     c.Query("preset"),
	}

	kit, err := h.kits.RenderKit(c.Request.Context(), username, opts)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			h.renderError(c, http.StatusNotFound, "404 - Not Found", "This media kit does not exist.")
			return
		}
		logger.FromContext(c.Request.Context()).WithError(err).WithField("username", username).Error("Failed to render kit")
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "The media kit could not be rendered.")
		return
	}

	h.renderTemplate(c, "kit", "@"+username, "Media kit of @"+username, gin.H{
		"Kit":       template.HTML(kit.HTML),
		"Template":  kit.TemplateID,
		"Username":  username,
		"Canonical": h.resolveAbsoluteURL("/kit/"+username, c.Request),
	})
}

// Library renders the template picker with one thumbnail per template.
func (h *PageHandler) Library(c *gin.Context) {
	cards, err := h.templates.Library(c.Request.Context())
	if err != nil {
		logger.Error(err, "Failed to build template library", nil)
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "Templates are unavailable.")
		return
	}

	h.renderTemplate(c, "library", "Templates", "Pick a template for your media kit", gin.H{
		"Cards": cards,
	})
}

// Preview renders a template at full size with its sample creator.
func (h *PageHandler) Preview(c *gin.Context) {
	id := c.Param("id")

	entry, err := h.templates.Get(id)
	if err != nil {
		h.renderError(c, http.StatusNotFound, "404 - Not Found", "Unknown template.")
		return
	}

	html, err := h.templates.Preview(c.Request.Context(), entry.ID)
	if err != nil {
		logger.Error(err, "Failed to render template preview", map[string]interface{}{"template": entry.ID})
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "The preview could not be rendered.")
		return
	}

	h.renderTemplate(c, "preview", entry.Name+" template", entry.Description, gin.H{
		"Kit":      template.HTML(html),
		"Template": entry.ID,
		"NoIndex":  true,
	})
}
