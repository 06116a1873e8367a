package service

import (
	"fmt"
	"strings"

	"dario.cat/mergo"

	"glowfolio-backend/internal/models"
)

// BuildPreview projects a stored profile into the data templates render from
// and overlays unsaved editor edits on top. Non-empty edit fields win.
func BuildPreview(profile *models.Profile, edits *models.EditorPreviewData) (models.EditorPreviewData, error) {
	data := projectProfile(profile)
	if edits == nil {
		return data, nil
	}

	overlay := *edits
	if err := mergo.Merge(&data, overlay, mergo.WithOverride); err != nil {
		return data, fmt.Errorf("merge editor edits: %w", err)
	}
	return data, nil
}

func projectProfile(p *models.Profile) models.EditorPreviewData {
	if p == nil {
		return models.EditorPreviewData{}
	}

	legacy := models.DecodeMediaKitData(p.MediaKitData)

	data := models.EditorPreviewData{
		ProfileID: p.ID,
		Username:  p.Username,
		FullName:  p.FullName,
		BrandName: p.BrandName,
		Tagline:   p.Tagline,
		Bio:       p.Bio,
		Niche:     p.Niche,
		Location:  p.Location,
		AvatarURL: p.AvatarURL,

		Email:           p.Email,
		Phone:           p.Phone,
		Website:         p.Website,
		InstagramHandle: p.InstagramHandle,
		TiktokHandle:    p.TiktokHandle,
		YoutubeHandle:   p.YoutubeHandle,
		SocialLinks:     socialLinks(p),

		Videos:              append([]models.VideoItem(nil), p.Videos...),
		PortfolioImages:     append([]string(nil), p.PortfolioImages...),
		BrandCollaborations: append([]models.BrandCollaboration(nil), p.BrandCollaborations...),
		Services:            append([]models.Service(nil), p.Services...),
		Skills:              append([]string(nil), p.Skills...),
		Stats:               append([]models.MediaKitStats(nil), p.Stats...),

		AudienceAgeRange:     p.AudienceAgeRange,
		AudienceGender:       p.AudienceGender,
		AudienceTopLocations: p.AudienceTopLocations,
		AudienceInterests:    p.AudienceInterests,

		Colors:            models.ResolveColors(p.Colors, legacy.Colors),
		Font:              p.Font,
		SectionVisibility: p.SectionVisibility.Clone(),
		MediaKitData:      cloneJSONMap(p.MediaKitData),
	}

	applyPlatformStats(&data, p.Stats)
	return data
}

// cloneJSONMap deep-copies nested maps and slices so merged edits never
// reach the stored profile.
func cloneJSONMap(m models.JSONMap) models.JSONMap {
	if m == nil {
		return nil
	}
	clone := make(models.JSONMap, len(m))
	for key, value := range m {
		clone[key] = cloneJSONValue(value)
	}
	return clone
}

func cloneJSONValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		return map[string]interface{}(cloneJSONMap(typed))
	case models.JSONMap:
		return cloneJSONMap(typed)
	case []interface{}:
		clone := make([]interface{}, len(typed))
		for i, item := range typed {
			clone[i] = cloneJSONValue(item)
		}
		return clone
	default:
		return value
	}
}

// applyPlatformStats fills the flat per-platform counters from the snapshots.
func applyPlatformStats(data *models.EditorPreviewData, stats []models.MediaKitStats) {
	for _, s := range stats {
		switch strings.ToLower(strings.TrimSpace(s.Platform)) {
		case "instagram":
			data.InstagramFollowers = positive(s.FollowerCount)
			data.InstagramEngagementRate = positive(s.EngagementRate)
		case "tiktok":
			data.TiktokFollowers = positive(s.FollowerCount)
			data.TiktokEngagementRate = positive(s.EngagementRate)
		case "youtube":
			data.YoutubeSubscribers = positive(s.FollowerCount)
			if s.WeeklyReach > 0 {
				data.YoutubeAvgViews = models.MetricOf(s.WeeklyReach)
			}
		}
	}
}

func positive[T int64 | float64](value T) models.Metric {
	if value <= 0 {
		return ""
	}
	return models.MetricOf(value)
}

// socialLinks returns the stored links, deriving them from handles when none were saved.
func socialLinks(p *models.Profile) []models.SocialLink {
	if len(p.SocialLinks) > 0 {
		return append([]models.SocialLink(nil), p.SocialLinks...)
	}

	var links []models.SocialLink
	if handle := cleanHandle(p.InstagramHandle); handle != "" {
		links = append(links, models.SocialLink{Type: "instagram", URL: "https://instagram.com/" + handle})
	}
	if handle := cleanHandle(p.TiktokHandle); handle != "" {
		links = append(links, models.SocialLink{Type: "tiktok", URL: "https://tiktok.com/@" + handle})
	}
	if handle := cleanHandle(p.YoutubeHandle); handle != "" {
		links = append(links, models.SocialLink{Type: "youtube", URL: "https://youtube.com/@" + handle})
	}
	return links
}

func cleanHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}
