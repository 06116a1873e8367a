package templates

import (
	"glowfolio-backend/internal/blocks"
	"glowfolio-backend/internal/models"
)

const elegantPrefix = "kit-elegant"

type elegantView struct {
	name      string
	brand     string
	tagline   string
	bio       string
	location  string
	niche     string
	avatarURL string

	email   string
	phone   string
	website string
	social  []models.SocialLink
	accent  string

	stats    []blocks.StatItem
	audience blocks.AudienceDemographicsProps

	gallery        []string
	videos         []models.VideoItem
	collaborations []models.BrandCollaboration
	services       []models.Service
	skills         []string

	preview bool
}

func newElegantView(d *models.EditorPreviewData, t models.TemplateTheme, preview bool) elegantView {
	legacy := d.Legacy()

	return elegantView{
		name:      models.FirstNonBlank(d.FullName, "Your Name"),
		brand:     models.ResolveString(d.BrandName, legacy.BrandName, ""),
		tagline:   models.ResolveString(d.Tagline, legacy.Tagline, ""),
		bio:       models.ResolveString(d.Bio, legacy.Bio, ""),
		location:  models.ResolveString(d.Location, legacy.Location, ""),
		niche:     d.Niche,
		avatarURL: models.ResolveString(d.AvatarURL, legacy.AvatarURL, ""),

		email:   models.ResolveString(d.Email, legacy.Email, ""),
		phone:   models.ResolveString(d.Phone, legacy.Phone, ""),
		website: models.ResolveString(d.Website, legacy.Website, ""),
		social:  models.ResolveSlice(d.SocialLinks, legacy.SocialLinks, nil),
		accent:  t.Primary,

		stats: []blocks.StatItem{
			{Label: "Followers", Value: models.ResolveMetric(d.FollowerCount, legacy.FollowerCount, totalFollowers(d.Stats))},
			{Label: "Engagement Rate", Value: models.ResolveMetric(d.EngagementRate, legacy.EngagementRate, averageEngagement(d.Stats))},
			{Label: "Weekly Reach", Value: models.ResolveMetric(d.WeeklyReach, legacy.WeeklyReach, "")},
			{Label: "Monthly Impressions", Value: models.ResolveMetric(d.MonthlyImpressions, legacy.MonthlyImpressions, "")},
		},
		audience: blocks.AudienceDemographicsProps{
			AgeRange:     models.ResolveString(d.AudienceAgeRange, legacy.AudienceAgeRange, ""),
			Gender:       models.ResolveString(d.AudienceGender, legacy.AudienceGender, ""),
			TopLocations: models.ResolveString(d.AudienceTopLocations, legacy.AudienceTopLocations, ""),
			Interests:    models.ResolveString(d.AudienceInterests, legacy.AudienceInterests, ""),
		},

		gallery:        models.ResolveStrings(d.PortfolioImages, legacy.PortfolioImages, nil),
		videos:         models.ResolveSlice(d.Videos, legacy.Videos, nil),
		collaborations: models.ResolveSlice(d.BrandCollaborations, legacy.BrandCollaborations, nil),
		services:       models.ResolveSlice(d.Services, legacy.Services, nil),
		skills:         models.ResolveStrings(d.Skills, legacy.Skills, nil),

		preview: preview,
	}
}

// Elegant folds performance into audienceStats and gates its gallery on
// profilePicture.
var elegantSections = []sectionRow[elegantView]{
	{
		id:    "about",
		title: "About",
		flag:  models.FlagProfileDetails,
		has:   func(v elegantView) bool { return hasText(v.bio, v.niche) },
		render: func(ctx blocks.RenderContext, prefix string, v elegantView) string {
			out := ""
			if v.niche != "" {
				out += `<p class="` + prefix + `__niche">` + ctx.SanitizeHTML(v.niche) + `</p>`
			}
			if v.bio != "" {
				out += `<div class="` + prefix + `__about">` + ctx.SanitizeHTML(v.bio) + `</div>`
			}
			return out
		},
	},
	{
		id:    "expertise",
		title: "Expertise",
		flag:  models.FlagServicesSkills,
		render: func(ctx blocks.RenderContext, prefix string, v elegantView) string {
			return blocks.SkillsList(ctx, prefix, blocks.SkillsListProps{Skills: v.skills})
		},
	},
	{
		id:    "stats",
		title: "Reach & Engagement",
		flag:  models.FlagAudienceStats,
		render: func(ctx blocks.RenderContext, prefix string, v elegantView) string {
			return blocks.StatsGrid(ctx, prefix, blocks.StatsGridProps{Items: v.stats, Columns: 4})
		},
	},
	{
		id:    "demographics",
		title: "Audience",
		flag:  models.FlagAudienceDemographics,
		render: func(ctx blocks.RenderContext, prefix string, v elegantView) string {
			return blocks.AudienceDemographics(ctx, prefix, v.audience)
		},
	},
	{
		id:    "gallery",
		title: "Gallery",
		flag:  models.FlagProfilePicture,
		render: func(ctx blocks.RenderContext, prefix string, v elegantView) string {
			return blocks.ShowcaseImages(ctx, prefix, blocks.ShowcaseImagesProps{Images: v.gallery, Title: v.name})
		},
	},
	{
		id:    "videos",
		title: "Featured Videos",
		flag:  models.FlagTiktokVideos,
		render: func(ctx blocks.RenderContext, prefix string, v elegantView) string {
			return blocks.VideoShowcase(ctx, prefix, blocks.VideoShowcaseProps{Videos: v.videos, IsPreview: v.preview})
		},
	},
	{
		id:    "partners",
		title: "Partners",
		flag:  models.FlagBrandExperience,
		has:   func(v elegantView) bool { return len(v.collaborations) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v elegantView) string {
			return blocks.BrandCollaborations(ctx, prefix, blocks.BrandCollaborationsProps{Collaborations: v.collaborations, Detailed: true})
		},
		empty: "No partnerships to show yet",
	},
	{
		id:    "offerings",
		title: "Offerings",
		flag:  models.FlagServicesSkills,
		has:   func(v elegantView) bool { return len(v.services) > 0 },
		render: func(ctx blocks.RenderContext, prefix string, v elegantView) string {
			return blocks.ServiceList(ctx, prefix, blocks.ServiceListProps{Services: v.services, ShowPrice: true})
		},
		empty: "No services listed yet",
	},
	{
		id:    "contact",
		title: "Contact",
		flag:  models.FlagContactDetails,
		render: func(ctx blocks.RenderContext, prefix string, v elegantView) string {
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

// RenderElegant renders the Elegant template: serif typography on warm neutrals.
func RenderElegant(ctx blocks.RenderContext, in Input) string {
	if state, done := guard(in); done {
		return state
	}
	ctx = ensureContext(ctx)

	t := resolveFont(in.Theme, in.Data, in.Data.Legacy())
	view := newElegantView(in.Data, t, in.Preview)
	vis := mergedVisibility(in)

	subheading := models.FirstNonBlank(view.tagline, view.brand)

	header := blocks.ProfileHeader(ctx, elegantPrefix, blocks.ProfileHeaderProps{
		AvatarURL:   view.avatarURL,
		Name:        view.name,
		Subheading:  subheading,
		Location:    view.location,
		SocialLinks: view.social,
		Visibility:  vis,
		Variant:     blocks.HeaderCentered,
	})

	return frame(elegantPrefix, t, header+`<main class="`+elegantPrefix+`__body">`+renderSections(ctx, elegantPrefix, view, vis, elegantSections)+`</main>`)
}
