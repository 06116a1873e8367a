package models

import (
	"github.com/mitchellh/mapstructure"
)

// EditorPreviewData is the view model every template renders from. All fields
// are optional; the zero value is a valid (empty) media kit.
type EditorPreviewData struct {
	ProfileID string `json:"profile_id,omitempty"`
	Username  string `json:"username,omitempty"`
	FullName  string `json:"full_name,omitempty" binding:"omitempty,no_html"`
	BrandName string `json:"brand_name,omitempty" binding:"omitempty,no_html"`
	Tagline   string `json:"tagline,omitempty" binding:"omitempty,no_html"`
	Bio       string `json:"bio,omitempty"`
	Niche     string `json:"niche,omitempty" binding:"omitempty,no_html"`
	Location  string `json:"location,omitempty" binding:"omitempty,no_html"`
	AvatarURL string `json:"avatar_url,omitempty"`

	Email           string       `json:"email,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	Website         string       `json:"website,omitempty"`
	InstagramHandle string       `json:"instagram_handle,omitempty"`
	TiktokHandle    string       `json:"tiktok_handle,omitempty"`
	YoutubeHandle   string       `json:"youtube_handle,omitempty"`
	SocialLinks     []SocialLink `json:"social_links,omitempty"`

	Videos              []VideoItem          `json:"videos,omitempty"`
	PortfolioImages     []string             `json:"portfolio_images,omitempty"`
	BrandCollaborations []BrandCollaboration `json:"brand_collaborations,omitempty"`
	Services            []Service            `json:"services,omitempty"`
	Skills              []string             `json:"skills,omitempty"`
	Stats               []MediaKitStats      `json:"stats,omitempty"`

	FollowerCount      Metric `json:"follower_count,omitempty"`
	EngagementRate     Metric `json:"engagement_rate,omitempty"`
	AvgLikes           Metric `json:"avg_likes,omitempty"`
	AvgComments        Metric `json:"avg_comments,omitempty"`
	WeeklyReach        Metric `json:"weekly_reach,omitempty"`
	MonthlyImpressions Metric `json:"monthly_impressions,omitempty"`

	InstagramFollowers      Metric `json:"instagram_followers,omitempty"`
	InstagramEngagementRate Metric `json:"instagram_engagement_rate,omitempty"`
	TiktokFollowers         Metric `json:"tiktok_followers,omitempty"`
	TiktokEngagementRate    Metric `json:"tiktok_engagement_rate,omitempty"`
	YoutubeSubscribers      Metric `json:"youtube_subscribers,omitempty"`
	YoutubeAvgViews         Metric `json:"youtube_avg_views,omitempty"`

	AudienceAgeRange     string `json:"audience_age_range,omitempty"`
	AudienceGender       string `json:"audience_gender,omitempty"`
	AudienceTopLocations string `json:"audience_top_locations,omitempty"`
	AudienceInterests    string `json:"audience_interests,omitempty"`

	Colors            *ColorScheme           `json:"colors,omitempty"`
	Font              string                 `json:"font,omitempty"`
	SectionVisibility SectionVisibilityState `json:"section_visibility,omitempty"`

	// MediaKitData is the legacy overflow blob. Top-level fields take precedence over it.
	MediaKitData JSONMap `json:"media_kit_data,omitempty"`
}

// MediaKitData is the typed reading of the legacy media_kit_data blob.
type MediaKitData struct {
	BrandName string      `json:"brand_name"`
	Tagline   string      `json:"tagline"`
	Bio       string      `json:"bio"`
	AvatarURL string      `json:"avatar_url"`
	Location  string      `json:"location"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Website   string      `json:"website"`
	Font      string      `json:"font"`
	Colors    ColorScheme `json:"colors"`

	SocialLinks         []SocialLink         `json:"social_links"`
	Videos              []VideoItem          `json:"videos"`
	PortfolioImages     []string             `json:"portfolio_images"`
	BrandCollaborations []BrandCollaboration `json:"brand_collaborations"`
	Services            []Service            `json:"services"`
	Skills              []string             `json:"skills"`

	FollowerCount      Metric `json:"follower_count"`
	EngagementRate     Metric `json:"engagement_rate"`
	AvgLikes           Metric `json:"avg_likes"`
	AvgComments        Metric `json:"avg_comments"`
	WeeklyReach        Metric `json:"weekly_reach"`
	MonthlyImpressions Metric `json:"monthly_impressions"`

	AudienceAgeRange     string `json:"audience_age_range"`
	AudienceGender       string `json:"audience_gender"`
	AudienceTopLocations string `json:"audience_top_locations"`
	AudienceInterests    string `json:"audience_interests"`
}

// DecodeMediaKitData reads the legacy blob. Entries with an unexpected shape are
// skipped; the fields that decoded cleanly are still returned.
func DecodeMediaKitData(raw map[string]interface{}) MediaKitData {
	var legacy MediaKitData
	if len(raw) == 0 {
		return legacy
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &legacy,
	})
	if err != nil {
		return legacy
	}
	_ = decoder.Decode(raw)
	return legacy
}

// Legacy decodes the nested media_kit_data of d. A nil receiver yields an empty value.
func (d *EditorPreviewData) Legacy() MediaKitData {
	if d == nil {
		return MediaKitData{}
	}
	return DecodeMediaKitData(d.MediaKitData)
}
