package templates

import (
	"glowfolio-backend/internal/blocks"
	"glowfolio-backend/internal/models"
)

const luxuryPrefix = "kit-luxury"

type luxuryView struct {
	name      string
	tagline   string
	bio       string
	location  string
	avatarURL string

	email   string
	phone   string
	website string
	social  []models.SocialLink
	accent  string

	headline []blocks.StatItem
	audience blocks.AudienceDemographicsProps

	portfolio      []string
	videos         []models.VideoItem
	collaborations []models.BrandCollaboration
	services       []models.Service

	preview bool
}

func newLuxuryView(d *models.EditorPreviewData, t models.TemplateTheme, preview bool) luxuryView {
	legacy := d.Legacy()

	return luxuryView{
		name:      models.FirstNonBlank(d.BrandName, legacy.BrandName, d.FullName, "Maison"),
		tagline:   models.ResolveString(d.Tagline, legacy.Tagline, "Luxury Lifestyle Creator"),
		bio:       models.ResolveString(d.Bio, legacy.Bio, ""),
		location:  models.ResolveString(d.Location, legacy.Location, ""),
		avatarURL: models.ResolveString(d.AvatarURL, legacy.AvatarURL, ""),

		email:   models.ResolveString(d.Email, legacy.Email, ""),
		phone:   models.ResolveString(d.Phone, legacy.Phone, ""),
		website: models.ResolveString(d.Website, legacy.Website, ""),
		social:  models.ResolveSlice(d.SocialLinks, legacy.SocialLinks, nil),
		accent:  t.Accent,

		headline: []blocks.StatItem{
			{Label: "Instagram", Value: models.ResolveMetric(d.InstagramFollowers, "", d.FollowerCount)},
			{Label: "TikTok", Value: d.TiktokFollowers},
			{Label: "YouTube", Value: d.YoutubeSubscribers},
			{Label: "Engagement Rate", Value: models.ResolveMetric(d.InstagramEngagementRate, d.EngagementRate, legacy.EngagementRate)},
			{Label: "Monthly Impressions", Value: models.ResolveMetric(d.MonthlyImpressions, legacy.MonthlyImpressions, "")},
		},
		audience: blocks.AudienceDemographicsProps{
			AgeRange:     models.ResolveString(d.AudienceAgeRange, legacy.AudienceAgeRange, ""),
			Gender:       models.ResolveString(d.AudienceGender, legacy.AudienceGender, ""),
			TopLocations: models.ResolveString(d.AudienceTopLocations, legacy.AudienceTopLocations, ""),
			Interests:    models.ResolveString(d.AudienceInterests, legacy.AudienceInterests, ""),
		},

		portfolio:      models.ResolveStrings(d.PortfolioImages, legacy.PortfolioImages, nil),
		videos:         models.ResolveSlice(d.Videos, legacy.Videos, nil),
		collaborations: models.ResolveSlice(d.BrandCollaborations, legacy.BrandCollaborations, nil),
		services:       models.ResolveSlice(d.Services, legacy.Services, nil),

		preview: preview,
	}
}

// Luxury shows headline numbers under performance and demographics under
// audienceStats; it has no skills section.
var luxurySections = []sectionRow[luxuryView]{
	{
		id:    "metrics",
		title: "By the Numbers",
		flag:  models.FlagPerformance,
		render: func(ctx blocks.RenderContext, prefix string, v luxuryView) string {
			return blocks.StatsGrid(ctx, prefix, blocks.StatsGridProps{Items: v.headline, Columns: 3})
		},
	},
	{
		id:    "story",
		title: "The Story",
		flag:  models.FlagProfileDetails,
		has:   func(v luxuryView) bool { return hasText(v.bio) },
		render: func(ctx blocks.RenderContext, prefix string, v luxuryView) string {
			return `<blockquote class="` + prefix + `__story">` + ctx.SanitizeHTML(v.bio) + `</blockquote>`
		},
	},
	{
		id:    "audience",
		title: "The Audience",
		flag:  models.FlagAudienceStats,
		render: func(ctx blocks.RenderContext, prefix string, v luxuryView) string {
			return blocks.AudienceDemographics(ctx, prefix, v.audience)
		},
	},
	{
		id:    "portfolio",
		title: "Selected Work",
		flag:  models.FlagTiktokVideos,
		has:   func(v luxuryView) bool { return len(blocks.UsableImages(v.portfolio)) > 0 || len(blocks.UsableVideos(v.videos)) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v luxuryView) string {
			return blocks.PortfolioGrid(ctx, prefix, blocks.PortfolioGridProps{Images: v.portfolio, Alt: v.name, Limit: 4}) +
				blocks.VideoShowcase(ctx, prefix, blocks.VideoShowcaseProps{Videos: v.videos, IsPreview: v.preview, Limit: 3})
		},
		empty: "Portfolio available upon request",
	},
	{
		id:    "collaborations",
		title: "Maisons & Partners",
		flag:  models.FlagBrandExperience,
		has:   func(v luxuryView) bool { return len(v.collaborations) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v luxuryView) string {
			return blocks.BrandCollaborations(ctx, prefix, blocks.BrandCollaborationsProps{Collaborations: v.collaborations, Detailed: true})
		},
		empty: "Available for select partnerships",
	},
	{
		id:    "services",
		title: "Offerings",
		flag:  models.FlagServicesSkills,
		has:   func(v luxuryView) bool { return len(v.services) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v luxuryView) string {
			return blocks.ServiceList(ctx, prefix, blocks.ServiceListProps{Services: v.services, ShowPrice: true})
		},
		empty: "Rates available on request",
	},
	{
		id:    "contact",
		title: "Enquiries",
		flag:  models.FlagContactDetails,
		render: func(ctx blocks.RenderContext, prefix string, v luxuryView) string {
			return blocks.ContactInfo(ctx, prefix, blocks.ContactInfoProps{
				Email:       v.email,
				Phone:       v.phone,
				Website:     v.website,
				SocialLinks: v.social,
				Accent:      v.accent,
			})
		},
	},
}

// RenderLuxury renders the Luxury template: a full-bleed hero on a dark canvas.
func RenderLuxury(ctx blocks.RenderContext, in Input) string {
	if state, done := guard(in); done {
		return state
	}
	ctx = ensureContext(ctx)

	t := resolveFont(in.Theme, in.Data, in.Data.Legacy())
	view := newLuxuryView(in.Data, t, in.Preview)
	vis := mergedVisibility(in)

	header := blocks.ProfileHeader(ctx, luxuryPrefix, blocks.ProfileHeaderProps{
		AvatarURL:   view.avatarURL,
		Name:        view.name,
		Subheading:  view.tagline,
		Location:    view.location,
		SocialLinks: view.social,
		Visibility:  vis,
		Variant:     blocks.HeaderHero,
	})

	return frame(luxuryPrefix, t, header+`<main class="`+luxuryPrefix+`__body">`+renderSections(ctx, luxuryPrefix, view, vis, luxurySections)+`</main>`)
}
