package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"glowfolio-backend/internal/blocks"
	"glowfolio-backend/internal/models"
	"glowfolio-backend/internal/templates"
	"glowfolio-backend/internal/theme"
	"glowfolio-backend/pkg/cache"
	"glowfolio-backend/pkg/logger"
	"glowfolio-backend/pkg/validator"
)

var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

const (
	renderKindKit       = "kit"
	renderKindPreview   = "preview"
	renderKindThumbnail = "thumbnail"
	renderKindAPI       = "api"
	renderKindEdit      = "edit"
)

// TemplateConfig tunes the template service.
type TemplateConfig struct {
	DefaultTemplate string
	ThumbnailScale  float64
	LibraryCacheTTL time.Duration
}

// LibraryCard is one tile of the template picker.
type LibraryCard struct {
	Info      models.TemplateInfo
	Thumbnail template.HTML
}

type TemplateService struct {
	registry *templates.Registry
	presets  *theme.Catalog
	cache    *cache.Cache
	render   blocks.RenderContext
	config   TemplateConfig
}

func NewTemplateService(registry *templates.Registry, presets *theme.Catalog, c *cache.Cache, cfg TemplateConfig) *TemplateService {
	initMetrics()

	if registry == nil {
		registry = templates.DefaultRegistry()
	}
	if presets == nil {
		presets, _ = theme.NewCatalog("")
	}
	cfg.DefaultTemplate = strings.ToLower(strings.TrimSpace(cfg.DefaultTemplate))
	if cfg.DefaultTemplate == "" || !registry.Has(cfg.DefaultTemplate) {
		cfg.DefaultTemplate = templates.DefaultID
	}
	if cfg.ThumbnailScale <= 0 || cfg.ThumbnailScale > 1 {
		cfg.ThumbnailScale = templates.ThumbnailScale
	}
	if cfg.LibraryCacheTTL <= 0 {
		cfg.LibraryCacheTTL = time.Hour
	}

	return &TemplateService{
		registry: registry,
		presets:  presets,
		cache:    c,
		render:   blocks.NewContext(),
		config:   cfg,
	}
}

// List describes every registered template.
func (s *TemplateService) List() []models.TemplateInfo {
	entries := s.registry.List()
	infos := make([]models.TemplateInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, s.info(entry))
	}
	return infos
}

func (s *TemplateService) info(entry templates.Entry) models.TemplateInfo {
	return models.TemplateInfo{
		ID:          entry.ID,
		Name:        entry.Name,
		Description: entry.Description,
		Default:     entry.ID == s.config.DefaultTemplate,
	}
}

// Get returns the template registered under id.
func (s *TemplateService) Get(id string) (templates.Entry, error) {
	entry, ok := s.registry.Get(id)
	if !ok {
		return templates.Entry{}, ErrTemplateNotFound
	}
	return entry, nil
}

// Resolve returns the template for id, the configured default for a blank id
// and the built-in default for an unknown one.
func (s *TemplateService) Resolve(id string) templates.Entry {
	if strings.TrimSpace(id) == "" {
		id = s.config.DefaultTemplate
	}
	entry, _ := s.registry.Resolve(id)
	return entry
}

// Presets lists the colour presets in display order.
func (s *TemplateService) Presets() []theme.Preset {
	return s.presets.List()
}

// PresetName returns the canonical name of a known preset and "" otherwise.
func (s *TemplateService) PresetName(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	preset, ok := s.presets.Get(name)
	if !ok {
		return ""
	}
	return preset.Name
}

// Theme resolves the theme a template renders with for a preset and stored scheme.
func (s *TemplateService) Theme(entry templates.Entry, preset string, stored *models.ColorScheme) (models.TemplateTheme, error) {
	if err := validator.ValidateColors(stored); err != nil {
		return models.TemplateTheme{}, fmt.Errorf("%w: %v", ErrInvalidColorScheme, err)
	}
	scheme := theme.ResolveScheme(stored, preset, s.presets.Snapshot())
	return entry.Theme(scheme), nil
}

// ThemeFor is Theme for a template id that must exist.
func (s *TemplateService) ThemeFor(id, preset string, stored *models.ColorScheme) (models.TemplateTheme, error) {
	entry, err := s.Get(id)
	if err != nil {
		return models.TemplateTheme{}, err
	}
	return s.Theme(entry, preset, stored)
}

// Render renders a template, scaled down when thumbnail is set.
func (s *TemplateService) Render(entry templates.Entry, in templates.Input, thumbnail bool, kind string) string {
	start := time.Now()
	defer observeRender(entry.ID, kind, start)

	if thumbnail {
		return templates.ThumbnailWithOptions(s.render, s.registry, entry.ID, in.Data, in.Theme, in.Visibility,
			templates.ThumbnailOptions{Scale: s.config.ThumbnailScale})
	}
	return entry.Render(s.render, in)
}

// Preview renders a template at full size with its own sample data.
func (s *TemplateService) Preview(ctx context.Context, id string) (string, error) {
	entry, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return s.cachedSample(ctx, entry.ID, cache.PreviewKey(entry.ID), renderKindPreview, func() string {
		return s.renderPreview(entry)
	})
}

func (s *TemplateService) renderPreview(entry templates.Entry) string {
	data := entry.PreviewData()
	return s.Render(entry, templates.Input{Data: &data, Theme: entry.Theme(data.Colors), Preview: true}, false, renderKindPreview)
}

// Thumbnail renders a template's library thumbnail with its sparse sample data.
func (s *TemplateService) Thumbnail(ctx context.Context, id string) (string, error) {
	entry, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return s.cachedSample(ctx, entry.ID, cache.ThumbnailKey(entry.ID), renderKindThumbnail, func() string {
		return s.renderThumbnail(entry)
	})
}

func (s *TemplateService) renderThumbnail(entry templates.Entry) string {
	data := entry.ThumbnailData()
	return s.Render(entry, templates.Input{Data: &data, Theme: entry.Theme(data.Colors)}, true, renderKindThumbnail)
}

func (s *TemplateService) cachedSample(ctx context.Context, templateID, key, kind string, render func() string) (string, error) {
	if s.cache.Enabled() {
		cached, err := s.cache.GetCachedKit(ctx, key)
		if err == nil {
			observeCache(kind, true)
			return cached.HTML, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Error(err, "Failed to read rendered template from cache", map[string]interface{}{"key": key})
		}
		observeCache(kind, false)
	}

	html := render()
	if s.cache.Enabled() {
		kit := cache.RenderedKit{TemplateID: templateID, HTML: html, RenderedAt: time.Now().UTC()}
		if err := s.cache.CacheKit(ctx, key, kit, s.config.LibraryCacheTTL); err != nil {
			logger.Error(err, "Failed to cache rendered template", map[string]interface{}{"key": key})
		}
	}
	return html, nil
}

// Library returns one card per template for the picker page.
func (s *TemplateService) Library(ctx context.Context) ([]LibraryCard, error) {
	entries := s.registry.List()
	cards := make([]LibraryCard, 0, len(entries))
	for _, entry := range entries {
		html, err := s.Thumbnail(ctx, entry.ID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, LibraryCard{Info: s.info(entry), Thumbnail: template.HTML(html)})
	}
	return cards, nil
}

// WarmLibrary renders every preview and thumbnail into the cache.
func (s *TemplateService) WarmLibrary(ctx context.Context) error {
	if !s.cache.Enabled() {
		return nil
	}

	var errs []error
	for _, entry := range s.registry.List() {
		if err := ctx.Err(); err != nil {
			return err
		}

		kit := cache.RenderedKit{TemplateID: entry.ID, HTML: s.renderPreview(entry), RenderedAt: time.Now().UTC()}
		if err := s.cache.CacheKit(ctx, cache.PreviewKey(entry.ID), kit, s.config.LibraryCacheTTL); err != nil {
			errs = append(errs, fmt.Errorf("cache preview %s: %w", entry.ID, err))
		}

		kit.HTML = s.renderThumbnail(entry)
		if err := s.cache.CacheKit(ctx, cache.ThumbnailKey(entry.ID), kit, s.config.LibraryCacheTTL); err != nil {
			errs = append(errs, fmt.Errorf("cache thumbnail %s: %w", entry.ID, err))
		}
	}

	logger.Info("Template library warmed", map[string]interface{}{"templates": len(s.registry.List()), "errors": len(errs)})
	return errors.Join(errs...)
}

// ReloadPresets rereads the preset file and drops renders that may use stale colours.
func (s *TemplateService) ReloadPresets(ctx context.Context) error {
	if err := s.presets.Reload(); err != nil {
		return fmt.Errorf("reload presets: %w", err)
	}
	if err := s.cache.InvalidateKits(ctx); err != nil {
		return fmt.Errorf("invalidate kits: %w", err)
	}
	if err := s.cache.InvalidateLibrary(ctx); err != nil {
		return fmt.Errorf("invalidate library: %w", err)
	}
	return nil
}
