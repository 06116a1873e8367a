// Package placeholder supplies sample media kits for the template library,
// thumbnail grids and editors that have no live data yet.
package placeholder

import (
	"fmt"
	"strings"
	"time"

	"glowfolio-backend/internal/models"
)

// Func returns a freshly built sample kit.
type Func func() models.EditorPreviewData

const thumbnailItems = 2

type persona struct {
	slug      string
	fullName  string
	brandName string
	tagline   string
	bio       string
	niche     string
	location  string
	font      string
	colors    models.ColorScheme

	skills         []string
	services       []models.Service
	collaborations []models.BrandCollaboration
	videos         []models.VideoItem

	followers      int64
	engagementRate float64
	avgLikes       int64
	avgComments    int64
	weeklyReach    int64
	impressions    int64

	audienceAge       string
	audienceGender    string
	audienceLocations string
	audienceInterests string
}

// sampleUpdatedAt keeps generated stats deterministic.
var sampleUpdatedAt = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

func build(p persona, thumbnail bool) models.EditorPreviewData {
	limit := func(n int) int {
		if thumbnail && n > thumbnailItems {
			return thumbnailItems
		}
		return n
	}

	handle := strings.ReplaceAll(p.slug, "-", "")

	portfolio := make([]string, 0, 6)
	for i := 1; i <= limit(6); i++ {
		portfolio = append(portfolio, fmt.Sprintf("https://images.glowfolio.app/samples/%s/portfolio-%d.jpg", p.slug, i))
	}

	videos := append([]models.VideoItem(nil), p.videos[:limit(len(p.videos))]...)
	services := append([]models.Service(nil), p.services[:limit(len(p.services))]...)
	collaborations := append([]models.BrandCollaboration(nil), p.collaborations[:limit(len(p.collaborations))]...)
	skills := append([]string(nil), p.skills[:limit(len(p.skills))]...)

	stats := []models.MediaKitStats{
		{
			ID:                 p.slug + "-instagram",
			Platform:           "instagram",
			FollowerCount:      p.followers,
			EngagementRate:     p.engagementRate,
			AvgLikes:           p.avgLikes,
			AvgComments:        p.avgComments,
			WeeklyReach:        p.weeklyReach,
			MonthlyImpressions: p.impressions,
			UpdatedAt:          sampleUpdatedAt,
		},
		{
			ID:                 p.slug + "-tiktok",
			Platform:           "tiktok",
			FollowerCount:      p.followers * 2,
			EngagementRate:     p.engagementRate + 1.2,
			AvgLikes:           p.avgLikes * 3,
			AvgComments:        p.avgComments * 2,
			WeeklyReach:        p.weeklyReach * 2,
			MonthlyImpressions: p.impressions * 2,
			UpdatedAt:          sampleUpdatedAt,
		},
	}
	stats = stats[:limit(len(stats))]

	colors := p.colors

	return models.EditorPreviewData{
		ProfileID: "sample-" + p.slug,
		Username:  handle,
		FullName:  p.fullName,
		BrandName: p.brandName,
		Tagline:   p.tagline,
		Bio:       p.bio,
		Niche:     p.niche,
		Location:  p.location,
		AvatarURL: fmt.Sprintf("https://images.glowfolio.app/samples/%s/avatar.jpg", p.slug),

		Email:           fmt.Sprintf("hello@%s.com", handle),
		Phone:           "+1 (555) 010-2030",
		Website:         fmt.Sprintf("www.%s.com", handle),
		InstagramHandle: "@" + handle,
		TiktokHandle:    "@" + handle,
		YoutubeHandle:   "@" + handle,
		SocialLinks: []models.SocialLink{
			{Type: "instagram", URL: "https://instagram.com/" + handle, Label: "Instagram"},
			{Type: "tiktok", URL: "https://tiktok.com/@" + handle, Label: "TikTok"},
			{Type: "youtube", URL: "https://youtube.com/@" + handle, Label: "YouTube"},
		}[:limit(3)],

		Videos:              videos,
		PortfolioImages:     portfolio,
		BrandCollaborations: collaborations,
		Services:            services,
		Skills:              skills,
		Stats:               stats,

		FollowerCount:      models.MetricOf(p.followers),
		EngagementRate:     models.MetricOf(p.engagementRate),
		AvgLikes:           models.MetricOf(p.avgLikes),
		AvgComments:        models.MetricOf(p.avgComments),
		WeeklyReach:        models.MetricOf(p.weeklyReach),
		MonthlyImpressions: models.MetricOf(p.impressions),

		InstagramFollowers:      models.MetricOf(p.followers),
		InstagramEngagementRate: models.MetricOf(p.engagementRate),
		TiktokFollowers:         models.MetricOf(p.followers * 2),
		TiktokEngagementRate:    models.MetricOf(p.engagementRate + 1.2),
		YoutubeSubscribers:      models.MetricOf(p.followers / 3),
		YoutubeAvgViews:         models.MetricOf(p.weeklyReach / 4),

		AudienceAgeRange:     p.audienceAge,
		AudienceGender:       p.audienceGender,
		AudienceTopLocations: p.audienceLocations,
		AudienceInterests:    p.audienceInterests,

		Colors:            &colors,
		Font:              p.font,
		SectionVisibility: models.AllVisible(),
		MediaKitData: models.JSONMap{
			"brand_name": p.brandName,
			"tagline":    p.tagline,
		},
	}
}

func tiktok(handle, id, title string) models.VideoItem {
	return models.VideoItem{
		URL:          fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", handle, id),
		ThumbnailURL: fmt.Sprintf("https://images.glowfolio.app/samples/videos/%s.jpg", id),
		ProviderName: "tiktok",
		Title:        title,
	}
}

func youtube(id, title string) models.VideoItem {
	return models.VideoItem{
		URL:          "https://www.youtube.com/watch?v=" + id,
		ThumbnailURL: fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", id),
		ProviderName: "youtube",
		Title:        title,
	}
}
