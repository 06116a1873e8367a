package templates

import (
	"glowfolio-backend/internal/blocks"
	"glowfolio-backend/internal/models"
)

const aestheticPrefix = "kit-aesthetic"

type aestheticView struct {
	brand     string
	name      string
	tagline   string
	bio       string
	avatarURL string

	email   string
	website string
	social  []models.SocialLink
	accent  string

	platformStats []blocks.StatItem
	audience      blocks.AudienceDemographicsProps

	showcase       []string
	videos         []models.VideoItem
	collaborations []models.BrandCollaboration
	services       []models.Service
	skills         []string

	preview bool
}

func newAestheticView(d *models.EditorPreviewData, t models.TemplateTheme, preview bool) aestheticView {
	legacy := d.Legacy()

	return aestheticView{
		brand:     models.ResolveString(d.BrandName, legacy.BrandName, ""),
		name:      models.FirstNonBlank(d.FullName, d.Username, "Creator"),
		tagline:   models.ResolveString(d.Tagline, legacy.Tagline, "Content Creator"),
		bio:       models.ResolveString(d.Bio, legacy.Bio, ""),
		avatarURL: models.ResolveString(d.AvatarURL, legacy.AvatarURL, ""),

		email:   models.ResolveString(d.Email, legacy.Email, ""),
		website: models.ResolveString(d.Website, legacy.Website, ""),
		social:  models.ResolveSlice(d.SocialLinks, legacy.SocialLinks, nil),
		accent:  t.Accent,

		platformStats: []blocks.StatItem{
			{Label: "Instagram Followers", Value: d.InstagramFollowers},
			{Label: "TikTok Followers", Value: d.TiktokFollowers},
			{Label: "Total Followers", Value: models.ResolveMetric(d.FollowerCount, legacy.FollowerCount, totalFollowers(d.Stats))},
			{Label: "Engagement Rate", Value: models.ResolveMetric(d.EngagementRate, legacy.EngagementRate, averageEngagement(d.Stats))},
		},
		audience: blocks.AudienceDemographicsProps{
			AgeRange:     models.ResolveString(d.AudienceAgeRange, legacy.AudienceAgeRange, ""),
			Gender:       models.ResolveString(d.AudienceGender, legacy.AudienceGender, ""),
			TopLocations: models.ResolveString(d.AudienceTopLocations, legacy.AudienceTopLocations, ""),
			Interests:    models.ResolveString(d.AudienceInterests, legacy.AudienceInterests, ""),
		},

		showcase:       models.ResolveStrings(d.PortfolioImages, legacy.PortfolioImages, nil),
		videos:         models.ResolveSlice(d.Videos, legacy.Videos, nil),
		collaborations: models.ResolveSlice(d.BrandCollaborations, legacy.BrandCollaborations, nil),
		services:       models.ResolveSlice(d.Services, legacy.Services, nil),
		skills:         models.ResolveStrings(d.Skills, legacy.Skills, nil),

		preview: preview,
	}
}

// Aesthetic gates its portfolio showcase on brandExperience and has no
// performance section.
var aestheticSections = []sectionRow[aestheticView]{
	{
		id:    "intro",
		title: "About Me",
		flag:  models.FlagProfileDetails,
		has:   func(v aestheticView) bool { return hasText(v.bio) },
		render: func(ctx blocks.RenderContext, prefix string, v aestheticView) string {
			return `<div class="` + prefix + `__intro">` + ctx.SanitizeHTML(v.bio) + `</div>`
		},
	},
	{
		id:    "portfolio",
		title: "Portfolio",
		flag:  models.FlagBrandExperience,
		render: func(ctx blocks.RenderContext, prefix string, v aestheticView) string {
			return blocks.ShowcaseImages(ctx, prefix, blocks.ShowcaseImagesProps{Images: v.showcase, Title: v.name, Limit: 6})
		},
	},
	{
		id:    "brands",
		title: "Brands I've Worked With",
		flag:  models.FlagBrandExperience,
		has:   func(v aestheticView) bool { return len(v.collaborations) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v aestheticView) string {
			return blocks.BrandCollaborations(ctx, prefix, blocks.BrandCollaborationsProps{Collaborations: v.collaborations})
		},
		empty: "No brand collaborations yet",
	},
	{
		id:    "stats",
		title: "My Reach",
		flag:  models.FlagAudienceStats,
		render: func(ctx blocks.RenderContext, prefix string, v aestheticView) string {
			return blocks.StatsGrid(ctx, prefix, blocks.StatsGridProps{Items: v.platformStats, Columns: 2})
		},
	},
	{
		id:    "videos",
		title: "Latest Videos",
		flag:  models.FlagTiktokVideos,
		render: func(ctx blocks.RenderContext, prefix string, v aestheticView) string {
			return blocks.VideoShowcase(ctx, prefix, blocks.VideoShowcaseProps{Videos: v.videos, IsPreview: v.preview, Limit: 4})
		},
	},
	{
		id:    "services",
		title: "What I Offer",
		flag:  models.FlagServicesSkills,
		has:   func(v aestheticView) bool { return len(v.services) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v aestheticView) string {
			return blocks.ServiceList(ctx, prefix, blocks.ServiceListProps{Services: v.services})
		},
		empty: "Services coming soon",
	},
	{
		id:    "skills",
		title: "Skills",
		flag:  models.FlagServicesSkills,
		render: func(ctx blocks.RenderContext, prefix string, v aestheticView) string {
			return blocks.SkillsList(ctx, prefix, blocks.SkillsListProps{Skills: v.skills})
		},
	},
	{
		id:    "audience",
		title: "My Audience",
		flag:  models.FlagAudienceDemographics,
		render: func(ctx blocks.RenderContext, prefix string, v aestheticView) string {
			return blocks.AudienceDemographics(ctx, prefix, v.audience)
		},
	},
	{
		id:    "contact",
		title: "Let's Collaborate",
		flag:  models.FlagContactDetails,
		render: func(ctx blocks.RenderContext, prefix string, v aestheticView) string {
			return blocks.ContactInfo(ctx, prefix, blocks.ContactInfoProps{
				Email:       v.email,
				Website:     v.website,
				SocialLinks: v.social,
				Accent:      v.accent,
			})
		},
	},
}

// RenderAesthetic renders the Aesthetic template: a centred pastel layout.
func RenderAesthetic(ctx blocks.RenderContext, in Input) string {
	if state, done := guard(in); done {
		return state
	}
	ctx = ensureContext(ctx)

	t := resolveFont(in.Theme, in.Data, in.Data.Legacy())
	view := newAestheticView(in.Data, t, in.Preview)
	vis := mergedVisibility(in)

	subheading := view.tagline
	if view.brand != "" {
		subheading = view.brand + " · " + view.tagline
	}

	header := blocks.ProfileHeader(ctx, aestheticPrefix, blocks.ProfileHeaderProps{
		AvatarURL:   view.avatarURL,
		Name:        view.name,
		Subheading:  subheading,
		SocialLinks: view.social,
		Visibility:  vis,
		Variant:     blocks.HeaderCentered,
	})

	return frame(aestheticPrefix, t, header+`<main class="`+aestheticPrefix+`__body">`+renderSections(ctx, aestheticPrefix, view, vis, aestheticSections)+`</main>`)
}
