package templates

import (
	"glowfolio-backend/internal/blocks"
	"glowfolio-backend/internal/models"
)

const defaultPrefix = "kit-default"

type defaultView struct {
	name       string
	subheading string
	bio        string
	location   string
	avatarURL  string

	email   string
	phone   string
	website string
	social  []models.SocialLink
	accent  string

	stats       []blocks.StatItem
	performance []blocks.StatItem
	audience    blocks.AudienceDemographicsProps

	portfolio      []string
	videos         []models.VideoItem
	collaborations []models.BrandCollaboration
	services       []models.Service
	skills         []string

	preview bool
}

func newDefaultView(d *models.EditorPreviewData, t models.TemplateTheme, preview bool) defaultView {
	legacy := d.Legacy()

	return defaultView{
		name:       models.FirstNonBlank(d.FullName, d.BrandName, legacy.BrandName, "Your Name"),
		subheading: models.ResolveString(d.Tagline, legacy.Tagline, d.Niche),
		bio:        models.ResolveString(d.Bio, legacy.Bio, ""),
		location:   models.ResolveString(d.Location, legacy.Location, ""),
		avatarURL:  models.ResolveString(d.AvatarURL, legacy.AvatarURL, ""),

		email:   models.ResolveString(d.Email, legacy.Email, ""),
		phone:   models.ResolveString(d.Phone, legacy.Phone, ""),
		website: models.ResolveString(d.Website, legacy.Website, ""),
		social:  models.ResolveSlice(d.SocialLinks, legacy.SocialLinks, nil),
		accent:  t.Primary,

		stats: []blocks.StatItem{
			{Label: "Followers", Value: models.ResolveMetric(d.FollowerCount, legacy.FollowerCount, totalFollowers(d.Stats))},
			{Label: "Engagement Rate", Value: models.ResolveMetric(d.EngagementRate, legacy.EngagementRate, "")},
			{Label: "Avg. Likes", Value: models.ResolveMetric(d.AvgLikes, legacy.AvgLikes, "")},
			{Label: "Avg. Comments", Value: models.ResolveMetric(d.AvgComments, legacy.AvgComments, "")},
		},
		performance: []blocks.StatItem{
			{Label: "Weekly Reach", Value: models.ResolveMetric(d.WeeklyReach, legacy.WeeklyReach, "")},
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
		skills:         models.ResolveStrings(d.Skills, legacy.Skills, nil),

		preview: preview,
	}
}

// Default ties the portfolio to tiktokVideos and shows performance separately.
var defaultSections = []sectionRow[defaultView]{
	{
		id:    "about",
		title: "About",
		flag:  models.FlagProfileDetails,
		has:   func(v defaultView) bool { return hasText(v.bio) },
		render: func(ctx blocks.RenderContext, prefix string, v defaultView) string {
			return `<div class="` + prefix + `__about">` + ctx.SanitizeHTML(v.bio) + `</div>`
		},
	},
	{
		id:    "stats",
		title: "Audience Stats",
		flag:  models.FlagAudienceStats,
		render: func(ctx blocks.RenderContext, prefix string, v defaultView) string {
			return blocks.StatsGrid(ctx, prefix, blocks.StatsGridProps{Items: v.stats, Columns: 4})
		},
	},
	{
		id:    "performance",
		title: "Performance",
		flag:  models.FlagPerformance,
		has:   func(v defaultView) bool { return len(blocks.FilterStats(v.performance)) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v defaultView) string {
			return blocks.StatsGrid(ctx, prefix, blocks.StatsGridProps{Items: v.performance, Columns: 2})
		},
		empty: "No performance data yet",
	},
	{
		id:    "demographics",
		title: "Audience Demographics",
		flag:  models.FlagAudienceDemographics,
		render: func(ctx blocks.RenderContext, prefix string, v defaultView) string {
			return blocks.AudienceDemographics(ctx, prefix, v.audience)
		},
	},
	{
		id:    "portfolio",
		title: "Portfolio",
		flag:  models.FlagTiktokVideos,
		has:   func(v defaultView) bool { return len(blocks.UsableImages(v.portfolio)) > 0 || len(blocks.UsableVideos(v.videos)) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v defaultView) string {
			return blocks.VideoShowcase(ctx, prefix, blocks.VideoShowcaseProps{Videos: v.videos, IsPreview: v.preview}) +
				blocks.PortfolioGrid(ctx, prefix, blocks.PortfolioGridProps{Images: v.portfolio, Alt: v.name})
		},
		empty: "No portfolio items yet",
	},
	{
		id:    "brands",
		title: "Brand Collaborations",
		flag:  models.FlagBrandExperience,
		has:   func(v defaultView) bool { return len(v.collaborations) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v defaultView) string {
			return blocks.BrandCollaborations(ctx, prefix, blocks.BrandCollaborationsProps{Collaborations: v.collaborations})
		},
		empty: "No brand collaborations yet",
	},
	{
		id:    "services",
		title: "Services",
		flag:  models.FlagServicesSkills,
		has:   func(v defaultView) bool { return len(v.services) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v defaultView) string {
			return blocks.ServiceList(ctx, prefix, blocks.ServiceListProps{Services: v.services, ShowPrice: true})
		},
		empty: "No services listed yet",
	},
	{
		id:    "skills",
		title: "Skills",
		flag:  models.FlagServicesSkills,
		render: func(ctx blocks.RenderContext, prefix string, v defaultView) string {
			return blocks.SkillsList(ctx, prefix, blocks.SkillsListProps{Skills: v.skills})
		},
	},
	{
		id:    "contact",
		title: "Get in Touch",
		flag:  models.FlagContactDetails,
		has:   func(v defaultView) bool { return len(blocks.ContactCards(v.contactProps())) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v defaultView) string {
			return blocks.ContactInfo(ctx, prefix, v.contactProps())
		},
		empty: "No contact details provided",
	},
}

func (v defaultView) contactProps() blocks.ContactInfoProps {
	return blocks.ContactInfoProps{Email: v.email, Phone: v.phone, Website: v.website, SocialLinks: v.social, Accent: v.accent}
}

// RenderDefault renders the Default template: a two-column header over stacked cards.
func RenderDefault(ctx blocks.RenderContext, in Input) string {
	if state, done := guard(in); done {
		return state
	}
	ctx = ensureContext(ctx)

	t := resolveFont(in.Theme, in.Data, in.Data.Legacy())
	view := newDefaultView(in.Data, t, in.Preview)
	vis := mergedVisibility(in)

	header := blocks.ProfileHeader(ctx, defaultPrefix, blocks.ProfileHeaderProps{
		AvatarURL:   view.avatarURL,
		Name:        view.name,
		Subheading:  view.subheading,
		Location:    view.location,
		SocialLinks: view.social,
		Visibility:  vis,
		Variant:     blocks.HeaderDefault,
	})

	return frame(defaultPrefix, t, header+`<main class="`+defaultPrefix+`__body">`+renderSections(ctx, defaultPrefix, view, vis, defaultSections)+`</main>`)
}
