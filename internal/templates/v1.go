package templates

import (
	"glowfolio-backend/internal/blocks"
	"glowfolio-backend/internal/models"
)

const v1Prefix = "kit-v1"

type v1View struct {
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

	platforms   []blocks.StatItem
	overview    []blocks.StatItem
	performance []blocks.StatItem
	audience    blocks.AudienceDemographicsProps

	portfolio      []string
	videos         []models.VideoItem
	collaborations []models.BrandCollaboration
	services       []models.Service
	skills         []string

	preview bool
}

func newV1View(d *models.EditorPreviewData, t models.TemplateTheme, preview bool) v1View {
	legacy := d.Legacy()

	return v1View{
		name:       models.FirstNonBlank(d.FullName, d.BrandName, legacy.BrandName, "Creator Name"),
		subheading: models.ResolveString(d.Niche, legacy.Tagline, "Content Creator"),
		bio:        models.ResolveString(d.Bio, legacy.Bio, ""),
		location:   models.ResolveString(d.Location, legacy.Location, ""),
		avatarURL:  models.ResolveString(d.AvatarURL, legacy.AvatarURL, ""),

		email:   models.ResolveString(d.Email, legacy.Email, ""),
		phone:   models.ResolveString(d.Phone, legacy.Phone, ""),
		website: models.ResolveString(d.Website, legacy.Website, ""),
		social:  models.ResolveSlice(d.SocialLinks, legacy.SocialLinks, nil),
		accent:  t.Primary,

		platforms: v1PlatformStats(d),
		overview: []blocks.StatItem{
			{Label: "Total Followers", Value: models.ResolveMetric(d.FollowerCount, legacy.FollowerCount, totalFollowers(d.Stats))},
			{Label: "Engagement Rate", Value: models.ResolveMetric(d.EngagementRate, legacy.EngagementRate, averageEngagement(d.Stats))},
		},
		performance: []blocks.StatItem{
			{Label: "Avg. Likes", Value: models.ResolveMetric(d.AvgLikes, legacy.AvgLikes, "")},
			{Label: "Avg. Comments", Value: models.ResolveMetric(d.AvgComments, legacy.AvgComments, "")},
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

// v1PlatformStats prefers per-platform snapshots and falls back to the flat
// per-platform counters.
func v1PlatformStats(d *models.EditorPreviewData) []blocks.StatItem {
	if len(d.Stats) > 0 {
		items := make([]blocks.StatItem, 0, len(d.Stats)*2)
		for _, s := range d.Stats {
			label := platformLabel(s.Platform)
			if s.FollowerCount > 0 {
				items = append(items, blocks.StatItem{Label: label + " Followers", Value: s.FollowerCount})
			}
			if s.EngagementRate > 0 {
				items = append(items, blocks.StatItem{Label: label + " Engagement Rate", Value: s.EngagementRate})
			}
		}
		return items
	}

	return []blocks.StatItem{
		{Label: "Instagram Followers", Value: d.InstagramFollowers},
		{Label: "Instagram Engagement Rate", Value: d.InstagramEngagementRate},
		{Label: "TikTok Followers", Value: d.TiktokFollowers},
		{Label: "TikTok Engagement Rate", Value: d.TiktokEngagementRate},
		{Label: "YouTube Subscribers", Value: d.YoutubeSubscribers},
		{Label: "YouTube Avg. Views", Value: d.YoutubeAvgViews},
	}
}

// V1 keeps the original ordering: platform breakdown gated by socialMedia,
// portfolio images by tiktokVideos alongside the videos themselves.
var v1Sections = []sectionRow[v1View]{
	{
		id:    "about",
		title: "About Me",
		flag:  models.FlagProfileDetails,
		has:   func(v v1View) bool { return hasText(v.bio) },
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return `<div class="` + prefix + `__about">` + ctx.SanitizeHTML(v.bio) + `</div>`
		},
		empty: "Tell brands about yourself",
	},
	{
		id:    "platforms",
		title: "Platforms",
		flag:  models.FlagSocialMedia,
		has:   func(v v1View) bool { return len(blocks.FilterStats(v.platforms)) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.StatsGrid(ctx, prefix, blocks.StatsGridProps{Items: v.platforms, Columns: 3})
		},
	},
	{
		id:    "overview",
		title: "Audience Overview",
		flag:  models.FlagAudienceStats,
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.StatsGrid(ctx, prefix, blocks.StatsGridProps{Items: v.overview, Columns: 2})
		},
	},
	{
		id:    "performance",
		title: "Performance",
		flag:  models.FlagPerformance,
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.StatsGrid(ctx, prefix, blocks.StatsGridProps{Items: v.performance, Columns: 4})
		},
	},
	{
		id:    "demographics",
		title: "Audience Demographics",
		flag:  models.FlagAudienceDemographics,
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.AudienceDemographics(ctx, prefix, v.audience)
		},
	},
	{
		id:    "videos",
		title: "Videos",
		flag:  models.FlagTiktokVideos,
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.VideoShowcase(ctx, prefix, blocks.VideoShowcaseProps{Videos: v.videos, IsPreview: v.preview})
		},
	},
	{
		id:    "portfolio",
		title: "Portfolio",
		flag:  models.FlagTiktokVideos,
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.PortfolioGrid(ctx, prefix, blocks.PortfolioGridProps{Images: v.portfolio, Alt: v.name})
		},
	},
	{
		id:    "brands",
		title: "Brand Experience",
		flag:  models.FlagBrandExperience,
		has:   func(v v1View) bool { return len(v.collaborations) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.BrandCollaborations(ctx, prefix, blocks.BrandCollaborationsProps{Collaborations: v.collaborations, Detailed: true})
		},
		empty: "No brand collaborations yet",
	},
	{
		id:    "services",
		title: "Services",
		flag:  models.FlagServicesSkills,
		has:   func(v v1View) bool { return len(v.services) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.ServiceList(ctx, prefix, blocks.ServiceListProps{Services: v.services, ShowPrice: true})
		},
		empty: "No services listed yet",
	},
	{
		id:    "skills",
		title: "Skills",
		flag:  models.FlagServicesSkills,
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.SkillsList(ctx, prefix, blocks.SkillsListProps{Skills: v.skills})
		},
	},
	{
		id:    "contact",
		title: "Contact",
		flag:  models.FlagContactDetails,
		has: func(v v1View) bool {
			return len(blocks.ContactCards(blocks.ContactInfoProps{Email: v.email, Phone: v.phone, Website: v.website, SocialLinks: v.social})) > 0
		},
		render: func(ctx blocks.RenderContext, prefix string, v v1View) string {
			return blocks.ContactInfo(ctx, prefix, blocks.ContactInfoProps{
				Email:       v.email,
				Phone:       v.phone,
				Website:     v.website,
				SocialLinks: v.social,
				Accent:      v.accent,
			})
		},
		empty: "No contact information provided",
	},
}

// RenderV1 renders the original single-column media kit.
func RenderV1(ctx blocks.RenderContext, in Input) string {
	if state, done := guard(in); done {
		return state
	}
	ctx = ensureContext(ctx)

	t := resolveFont(in.Theme, in.Data, in.Data.Legacy())
	view := newV1View(in.Data, t, in.Preview)
	vis := mergedVisibility(in)

	header := blocks.ProfileHeader(ctx, v1Prefix, blocks.ProfileHeaderProps{
		AvatarURL:   view.avatarURL,
		Name:        view.name,
		Subheading:  view.subheading,
		Location:    view.location,
		SocialLinks: view.social,
		Visibility:  vis,
		Variant:     blocks.HeaderDefault,
	})

	return frame(v1Prefix, t, header+`<main class="`+v1Prefix+`__body">`+renderSections(ctx, v1Prefix, view, vis, v1Sections)+`</main>`)
}
