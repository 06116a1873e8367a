package service

import (
	"context"

	"glowfolio-backend/internal/models"
	"glowfolio-backend/internal/templates"
	"glowfolio-backend/internal/theme"
	"glowfolio-backend/pkg/cache"
)

type KitUseCase interface {
	PreviewData(ctx context.Context, username string) (*models.EditorPreviewData, *models.Profile, error)
	RenderKit(ctx context.Context, username string, opts KitOptions) (cache.RenderedKit, error)
	Render(ctx context.Context, req models.RenderKitRequest) (string, error)
	RenderProfile(ctx context.Context, username string, req models.RenderKitRequest) (string, error)
	RefreshKits(ctx context.Context) error
}

type TemplateUseCase interface {
	List() []models.TemplateInfo
	Get(id string) (templates.Entry, error)
	Presets() []theme.Preset
	ThemeFor(id, preset string, stored *models.ColorScheme) (models.TemplateTheme, error)
	Preview(ctx context.Context, id string) (string, error)
	Thumbnail(ctx context.Context, id string) (string, error)
	Library(ctx context.Context) ([]LibraryCard, error)
	WarmLibrary(ctx context.Context) error
	ReloadPresets(ctx context.Context) error
}

var (
	_ KitUseCase      = (*KitService)(nil)
	_ TemplateUseCase = (*TemplateService)(nil)
)
