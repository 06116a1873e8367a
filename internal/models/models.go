package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the creator record owned by the persistence layer. Templates never
// read it directly; it is projected into EditorPreviewData first.
type Profile struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username            string `gorm:"uniqueIndex;not null" json:"username"`
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Niche               string `json:"niche"`
	OnboardingCompleted bool   `gorm:"default:false" json:"onboarding_completed"`

	BrandName       string         `json:"brand_name"`
	Tagline         string         `json:"tagline"`
	Bio             string         `gorm:"type:text" json:"bio"`
	AvatarURL       string         `json:"avatar_url"`
	Phone           string         `json:"phone"`
	Website         string         `json:"website"`
	Location        string         `json:"location"`
	InstagramHandle string         `json:"instagram_handle"`
	TiktokHandle    string         `json:"tiktok_handle"`
	YoutubeHandle   string         `json:"youtube_handle"`
	SocialLinks     SocialLinkList `gorm:"type:jsonb" json:"social_links"`
	Skills          StringList     `gorm:"type:jsonb" json:"skills"`
	PortfolioImages StringList     `gorm:"type:jsonb" json:"portfolio_images"`

	AudienceAgeRange     string `json:"audience_age_range"`
	AudienceGender       string `json:"audience_gender"`
	AudienceTopLocations string `json:"audience_top_locations"`
	AudienceInterests    string `json:"audience_interests"`

	TemplateID        string                 `gorm:"default:'default'" json:"template_id"`
	Preset            string                 `json:"preset"`
	Colors            *ColorScheme           `gorm:"type:jsonb" json:"colors,omitempty"`
	Font              string                 `json:"font"`
	SectionVisibility SectionVisibilityState `gorm:"type:jsonb" json:"section_visibility,omitempty"`
	MediaKitData      JSONMap                `gorm:"type:jsonb" json:"media_kit_data,omitempty"`

	BrandCollaborations []BrandCollaboration `gorm:"foreignKey:ProfileID" json:"brand_collaborations,omitempty"`
	Services            []Service            `gorm:"foreignKey:ProfileID" json:"services,omitempty"`
	Stats               []MediaKitStats      `gorm:"foreignKey:ProfileID" json:"stats,omitempty"`
	Videos              []VideoItem          `gorm:"foreignKey:ProfileID" json:"videos,omitempty"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// VideoItem references an externally hosted video.
type VideoItem struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id,omitempty"`
	ProfileID    string `gorm:"type:uuid;index" json:"profile_id,omitempty"`
	URL          string `gorm:"not null" json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ProviderName string `json:"provider_name,omitempty"`
	Title        string `json:"title,omitempty"`
	Position     int    `gorm:"default:0" json:"-"`
}

func (v *VideoItem) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(v.ID) == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

type BrandCollaboration struct {
	ID                string `gorm:"type:uuid;primaryKey" json:"id,omitempty"`
	ProfileID         string `gorm:"type:uuid;index" json:"profile_id,omitempty"`
	BrandName         string `gorm:"not null" json:"brand_name"`
	Description       string `json:"description,omitempty"`
	CollaborationType string `json:"collaboration_type,omitempty"`
	CollaborationDate string `json:"collaboration_date,omitempty"`
}

func (b *BrandCollaboration) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(b.ID) == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type Service struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id,omitempty"`
	ProfileID   string `gorm:"type:uuid;index" json:"profile_id,omitempty"`
	ServiceName string `gorm:"not null" json:"service_name"`
	Description string `json:"description,omitempty"`
	PriceRange  string `json:"price_range,omitempty"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(s.ID) == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// MediaKitStats is a per-platform analytics snapshot.
type MediaKitStats struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id,omitempty"`
	ProfileID          string    `gorm:"type:uuid;index" json:"profile_id,omitempty"`
	Platform           string    `gorm:"not null" json:"platform"`
	FollowerCount      int64     `json:"follower_count"`
	EngagementRate     float64   `json:"engagement_rate"`
	AvgLikes           int64     `json:"avg_likes"`
	AvgComments        int64     `json:"avg_comments"`
	WeeklyReach        int64     `json:"weekly_reach"`
	MonthlyImpressions int64     `json:"monthly_impressions"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (s *MediaKitStats) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(s.ID) == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SocialLink is a typed outbound link (instagram, tiktok, youtube, email, website, ...).
type SocialLink struct {
	Type  string `json:"type"`
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

type SocialLinkList []SocialLink

func (l SocialLinkList) Value() (driver.Value, error) {
	return marshalJSONColumn(l, len(l) == 0)
}

func (l *SocialLinkList) Scan(value interface{}) error {
	return scanJSONColumn(value, l)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return marshalJSONColumn(l, len(l) == 0)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSONColumn(value, l)
}

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	return marshalJSONColumn(m, len(m) == 0)
}

func (m *JSONMap) Scan(value interface{}) error {
	decoded := JSONMap{}
	if err := scanJSONColumn(value, &decoded); err != nil {
		return err
	}
	*m = decoded
	return nil
}

func marshalJSONColumn(value interface{}, empty bool) (driver.Value, error) {
	if empty {
		return nil, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

func scanJSONColumn(value interface{}, dest interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported json column value")
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

// RenderKitRequest is the body of the server-side rendering endpoint.
type RenderKitRequest struct {
	TemplateID        string                 `json:"template_id" binding:"omitempty,max=64,template_id"`
	Data              *EditorPreviewData     `json:"data"`
	ColorScheme       *ColorScheme           `json:"color_scheme" binding:"omitempty"`
	Preset            string                 `json:"preset" binding:"omitempty,max=64,template_id"`
	SectionVisibility SectionVisibilityState `json:"section_visibility"`
	Thumbnail         bool                   `json:"thumbnail"`
}

// TemplateInfo describes a registered template for the template picker.
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}
