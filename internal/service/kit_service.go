package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"glowfolio-backend/internal/models"
	"glowfolio-backend/internal/repository"
	"glowfolio-backend/internal/templates"
	"glowfolio-backend/pkg/cache"
	"glowfolio-backend/pkg/logger"
)

var ErrProfileNotFound = errors.New("profile not found")

// kitRefreshLimit caps how many kits one refresh run re-renders.
const kitRefreshLimit = 200

// KitOptions overrides what is stored on the profile for a single render.
type KitOptions struct {
	TemplateID string
	Preset     string
	Visibility models.SectionVisibilityState
}

type KitService struct {
	profiles  repository.ProfileRepository
	templates *TemplateService
	cache     *cache.Cache
	ttl       time.Duration
}

func NewKitService(profiles repository.ProfileRepository, templateService *TemplateService, c *cache.Cache, ttl time.Duration) *KitService {
	initMetrics()

	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &KitService{
		profiles:  profiles,
		templates: templateService,
		cache:     c,
		ttl:       ttl,
	}
}

// PreviewData loads a creator's profile and projects it for rendering.
func (s *KitService) PreviewData(ctx context.Context, username string) (*models.EditorPreviewData, *models.Profile, error) {
	if s == nil || s.profiles == nil {
		return nil, nil, errors.New("profile repository not configured")
	}

	profile, err := s.loadProfile(username)
	if err != nil {
		return nil, nil, err
	}

	data, err := BuildPreview(profile, nil)
	if err != nil {
		return nil, nil, err
	}
	return &data, profile, nil
}

func (s *KitService) loadProfile(username string) (*models.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrProfileNotFound
	}

	profile, err := s.profiles.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("load profile %s: %w", username, err)
	}
	return profile, nil
}

// RenderKit renders a creator's public media kit, serving it from the cache when possible.
func (s *KitService) RenderKit(ctx context.Context, username string, opts KitOptions) (cache.RenderedKit, error) {
	opts = s.normaliseOptions(opts)
	key := cache.KitKey(username, opts.TemplateID, variantKey(opts))

	if s.cache.Enabled() {
		cached, err := s.cache.GetCachedKit(ctx, key)
		if err == nil {
			observeCache(renderKindKit, true)
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.FromContext(ctx).WithError(err).WithField("key", key).Warn("Kit cache read failed")
		}
		observeCache(renderKindKit, false)
	}

	data, profile, err := s.PreviewData(ctx, username)
	if err != nil {
		return cache.RenderedKit{}, err
	}

	entry := s.templates.Resolve(models.FirstNonBlank(opts.TemplateID, profile.TemplateID))
	preset := models.FirstNonBlank(opts.Preset, profile.Preset)

	t, err := s.templates.Theme(entry, preset, data.Colors)
	if err != nil {
		// Invalid stored colours render with the preset alone.
		logger.FromContext(ctx).WithError(err).WithField("username", username).Warn("Ignoring invalid stored colours")
		t, _ = s.templates.Theme(entry, preset, nil)
	}

	vis := opts.Visibility
	if vis == nil {
		vis = data.SectionVisibility
	}

	kit := cache.RenderedKit{
		TemplateID: entry.ID,
		HTML:       s.templates.Render(entry, templates.Input{Data: data, Theme: t, Visibility: vis}, false, renderKindKit),
		RenderedAt: time.Now().UTC(),
	}

	if s.cache.Enabled() {
		if err := s.cache.CacheKit(ctx, key, kit, s.ttl); err != nil {
			logger.FromContext(ctx).WithError(err).WithField("key", key).Warn("Kit cache write failed")
		}
	}
	return kit, nil
}

// normaliseOptions resolves query overrides to what they render as, so that
// equivalent requests share a cache entry. A blank template or preset keeps
// meaning "use the stored one"; an unknown preset is dropped.
func (s *KitService) normaliseOptions(opts KitOptions) KitOptions {
	if strings.TrimSpace(opts.TemplateID) != "" {
		opts.TemplateID = s.templates.Resolve(opts.TemplateID).ID
	}
	opts.Preset = s.templates.PresetName(opts.Preset)
	return opts
}

// RenderProfile renders a creator's stored profile with unsaved editor edits
// laid over it. Nothing is cached or persisted.
func (s *KitService) RenderProfile(ctx context.Context, username string, req models.RenderKitRequest) (string, error) {
	if s == nil || s.profiles == nil {
		return "", errors.New("profile repository not configured")
	}

	profile, err := s.loadProfile(username)
	if err != nil {
		return "", err
	}

	data, err := BuildPreview(profile, req.Data)
	if err != nil {
		return "", err
	}

	entry := s.templates.Resolve(models.FirstNonBlank(req.TemplateID, profile.TemplateID))
	preset := models.FirstNonBlank(s.templates.PresetName(req.Preset), profile.Preset)

	colors := data.Colors
	if req.ColorScheme != nil {
		colors = req.ColorScheme
	}
	t, err := s.templates.Theme(entry, preset, colors)
	if err != nil {
		return "", err
	}

	vis := req.SectionVisibility
	if vis == nil {
		vis = data.SectionVisibility
	}

	in := templates.Input{Data: &data, Theme: t, Visibility: vis, Preview: req.Thumbnail}
	return s.templates.Render(entry, in, req.Thumbnail, renderKindEdit), nil
}

// RefreshKits drops and re-renders the stored view of recently updated kits,
// picking up profile changes written by other services.
func (s *KitService) RefreshKits(ctx context.Context) error {
	if s == nil || s.profiles == nil || !s.cache.Enabled() {
		return nil
	}

	usernames, err := s.profiles.ListUsernames(kitRefreshLimit)
	if err != nil {
		return fmt.Errorf("list kits: %w", err)
	}

	var errs []error
	for _, username := range usernames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.cache.InvalidateKit(ctx, username); err != nil {
			errs = append(errs, fmt.Errorf("invalidate %s: %w", username, err))
			continue
		}
		if _, err := s.RenderKit(ctx, username, KitOptions{}); err != nil {
			errs = append(errs, fmt.Errorf("render %s: %w", username, err))
		}
	}

	logger.Info("Kits refreshed", map[string]interface{}{"kits": len(usernames), "errors": len(errs)})
	return errors.Join(errs...)
}

// Render renders editor state posted by a client. Unknown templates fall back
// to the default; invalid colours are rejected.
func (s *KitService) Render(ctx context.Context, req models.RenderKitRequest) (string, error) {
	entry := s.templates.Resolve(req.TemplateID)

	var stored *models.ColorScheme
	if req.ColorScheme != nil {
		stored = req.ColorScheme
	} else if req.Data != nil {
		stored = models.ResolveColors(req.Data.Colors, req.Data.Legacy().Colors)
	}

	t, err := s.templates.Theme(entry, req.Preset, stored)
	if err != nil {
		return "", err
	}

	in := templates.Input{Data: req.Data, Theme: t, Visibility: req.SectionVisibility, Preview: req.Thumbnail}
	return s.templates.Render(entry, in, req.Thumbnail, renderKindAPI), nil
}

// variantKey folds preset and visibility overrides into a cache key part.
func variantKey(opts KitOptions) string {
	preset := strings.ToLower(strings.TrimSpace(opts.Preset))
	if opts.Visibility == nil {
		return preset
	}

	var sb strings.Builder
	sb.WriteString(preset)
	sb.WriteString("-")
	for _, flag := range models.AllSectionFlags() {
		if opts.Visibility.Visible(flag) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
