package blocks

import (
	"strings"
	"testing"
	"unicode/utf8"

	"glowfolio-backend/internal/models"
)

const prefix = "kit"

func testContext() RenderContext {
	return NewContext()
}

func TestStatsGridFiltersMissingValues(t *testing.T) {
	html := StatsGrid(testContext(), prefix, StatsGridProps{Items: []StatItem{
		{Label: "Followers", Value: nil},
		{Label: "Engagement Rate", Value: "4.567"},
	}})

	if strings.Contains(html, "Followers") {
		t.Fatalf("expected missing stat to be filtered, got %s", html)
	}
	if !strings.Contains(html, ">4.6%<") {
		t.Fatalf("expected engagement rate rendered as 4.6%%, got %s", html)
	}
	if strings.Count(html, `class="kit__stat"`) != 1 {
		t.Fatalf("expected exactly one stat, got %s", html)
	}
}

func TestStatsGridFormatting(t *testing.T) {
	cases := []struct {
		item     StatItem
		expected string
	}{
		{StatItem{Label: "Followers", Value: 125000}, "125K"},
		{StatItem{Label: "Monthly Impressions", Value: models.Metric("2,500,000")}, "2.5M"},
		{StatItem{Label: "Avg Likes", Value: 999}, "999"},
		{StatItem{Label: "TikTok engagement rate", Value: 6.26}, "6.3%"},
		{StatItem{Label: "Age", Value: "18-34"}, "18-34"},
	}

	for _, tc := range cases {
		if got := FormatStatValue(tc.item); got != tc.expected {
			t.Errorf("%s: expected %q, got %q", tc.item.Label, tc.expected, got)
		}
	}
}

func TestStatsGridEmptyState(t *testing.T) {
	html := StatsGrid(testContext(), prefix, StatsGridProps{Items: []StatItem{
		{Label: "Followers", Value: ""},
		{Label: "Likes", Value: models.Metric("")},
	}})
	if html != `<p class="kit__stats kit__stats--empty"><em>No analytics data available</em></p>` {
		t.Fatalf("unexpected empty state %s", html)
	}
}

func TestContactInfoSkipsDuplicateEmail(t *testing.T) {
	html := ContactInfo(testContext(), prefix, ContactInfoProps{
		Email: "a@b.com",
		SocialLinks: []models.SocialLink{
			{Type: "email", URL: "a@b.com"},
			{Type: "instagram", URL: "https://instagram.com/ab"},
		},
	})

	if got := strings.Count(html, "kit__contact-card--email"); got != 1 {
		t.Fatalf("expected exactly one email card, got %d in %s", got, html)
	}
	if !strings.Contains(html, "kit__contact-card--instagram") {
		t.Fatalf("expected instagram card, got %s", html)
	}
}

func TestContactInfoKeepsSocialEmailWithoutDedicatedField(t *testing.T) {
	cards := ContactCards(ContactInfoProps{
		SocialLinks: []models.SocialLink{{Type: "email", URL: "a@b.com"}, {Type: "website", URL: "ab.com"}},
	})
	if len(cards) != 2 {
		t.Fatalf("expected social email and website cards, got %+v", cards)
	}
	if cards[0].Href != "mailto:a@b.com" || cards[1].Href != "https://ab.com" {
		t.Fatalf("unexpected hrefs %+v", cards)
	}
}

func TestContactInfoPrefixesWebsite(t *testing.T) {
	html := ContactInfo(testContext(), prefix, ContactInfoProps{Website: "glowfolio.app"})
	if !strings.Contains(html, `href="https://glowfolio.app"`) {
		t.Fatalf("expected https prefix, got %s", html)
	}
	if got := WebsiteHref("http://example.com"); got != "http://example.com" {
		t.Fatalf("expected existing scheme kept, got %s", got)
	}
	if ContactInfo(testContext(), prefix, ContactInfoProps{}) != "" {
		t.Fatalf("expected empty contact info to render nothing")
	}
}

func TestContactInfoCallToActionContrast(t *testing.T) {
	html := ContactInfo(testContext(), prefix, ContactInfoProps{Email: "a@b.com", Accent: "#000000"})
	if !strings.Contains(html, "color:#FFFFFF") {
		t.Fatalf("expected white text on black accent, got %s", html)
	}
}

func TestResolveVideoAction(t *testing.T) {
	action := ResolveVideoAction(models.VideoItem{ProviderName: "tiktok", URL: "https://tiktok.com/@x/video/123456"})
	if action.Kind != VideoActionEmbed || action.PostID != "123456" {
		t.Fatalf("expected embed action for 123456, got %+v", action)
	}
	if action.URL != "https://www.tiktok.com/embed/v2/123456?autoplay=1&loop=1" {
		t.Fatalf("unexpected embed url %s", action.URL)
	}

	external := []models.VideoItem{
		{ProviderName: "tiktok", URL: "https://tiktok.com/@x"},
		{ProviderName: "youtube", URL: "https://youtube.com/watch?v=abc"},
		{URL: "https://tiktok.com/@x/video/123456"},
	}
	for _, video := range external {
		if got := ResolveVideoAction(video); got.Kind != VideoActionExternal || got.URL != video.URL {
			t.Errorf("expected external action for %+v, got %+v", video, got)
		}
	}
}

func TestVideoShowcaseMarkup(t *testing.T) {
	html := VideoShowcase(testContext(), prefix, VideoShowcaseProps{Videos: []models.VideoItem{
		{ProviderName: "tiktok", URL: "https://tiktok.com/@x/video/123456"},
		{ProviderName: "youtube", URL: "https://youtube.com/watch?v=abc"},
	}})

	if !strings.Contains(html, `data-video-embed="https://www.tiktok.com/embed/v2/123456?autoplay=1&amp;loop=1" aria-pressed="false"`) {
		t.Fatalf("expected embed attribute, got %s", html)
	}
	if !strings.Contains(html, `href="https://youtube.com/watch?v=abc" target="_blank"`) {
		t.Fatalf("expected external link, got %s", html)
	}
	if !strings.Contains(html, VideoShowcaseScript) {
		t.Fatalf("expected showcase script reference")
	}
}

func TestVideoShowcasePreviewMode(t *testing.T) {
	html := VideoShowcase(testContext(), prefix, VideoShowcaseProps{IsPreview: true})
	if !strings.Contains(html, "Add TikTok or YouTube links to showcase your videos here") {
		t.Fatalf("expected instructions in preview mode, got %s", html)
	}
	if VideoShowcase(testContext(), prefix, VideoShowcaseProps{}) != "" {
		t.Fatalf("expected nothing without videos outside preview")
	}

	html = VideoShowcase(testContext(), prefix, VideoShowcaseProps{IsPreview: true, Videos: []models.VideoItem{
		{ProviderName: "tiktok", URL: "https://tiktok.com/@x/video/1"},
	}})
	if !strings.Contains(html, ">Preview<") || strings.Contains(html, "data-video-embed") || strings.Contains(html, "<script") {
		t.Fatalf("expected non-interactive preview, got %s", html)
	}
}

func TestProfileHeader(t *testing.T) {
	hidden := models.SectionVisibilityState{
		models.FlagProfilePicture: false,
		models.FlagProfileDetails: false,
		models.FlagSocialMedia:    false,
	}
	if html := ProfileHeader(testContext(), prefix, ProfileHeaderProps{Name: "Sophia", Visibility: hidden}); html != "" {
		t.Fatalf("expected nothing when every header flag is off, got %s", html)
	}

	html := ProfileHeader(testContext(), prefix, ProfileHeaderProps{Name: "Sophia", Variant: HeaderHero})
	if !strings.Contains(html, "No Photo") || strings.Contains(html, "<img") {
		t.Fatalf("expected photo placeholder, got %s", html)
	}
	if !strings.Contains(html, "kit__header--hero") {
		t.Fatalf("expected hero layout class, got %s", html)
	}

	html = ProfileHeader(testContext(), prefix, ProfileHeaderProps{Name: "Sophia", AvatarURL: "https://img/a.jpg"})
	if !strings.Contains(html, `<img class="kit__avatar" src="https://img/a.jpg"`) || !strings.Contains(html, "kit__header--grid") {
		t.Fatalf("expected avatar image in grid layout, got %s", html)
	}
}

func TestProfileHeaderSanitizesBio(t *testing.T) {
	html := ProfileHeader(testContext(), prefix, ProfileHeaderProps{Bio: `<b>Hi</b><script>alert(1)</script>`})
	if strings.Contains(html, "<script>") || !strings.Contains(html, "<b>Hi</b>") {
		t.Fatalf("expected sanitized bio, got %s", html)
	}
}

func TestFallbackBlocks(t *testing.T) {
	ctx := testContext()
	cases := []struct {
		name     string
		html     string
		expected string
	}{
		{"audience", AudienceDemographics(ctx, prefix, AudienceDemographicsProps{}), "No audience demographics available"},
		{"showcase", ShowcaseImages(ctx, prefix, ShowcaseImagesProps{}), "No showcase images available"},
		{"skills", SkillsList(ctx, prefix, SkillsListProps{Skills: []string{" "}}), "No skills listed"},
	}
	for _, tc := range cases {
		if !strings.Contains(tc.html, tc.expected) {
			t.Errorf("%s: expected %q, got %s", tc.name, tc.expected, tc.html)
		}
	}

	silent := map[string]string{
		"services":  ServiceList(ctx, prefix, ServiceListProps{}),
		"brands":    BrandCollaborations(ctx, prefix, BrandCollaborationsProps{Collaborations: []models.BrandCollaboration{{}}}),
		"portfolio": PortfolioGrid(ctx, prefix, PortfolioGridProps{}),
		"social":    SocialLinks(ctx, prefix, SocialLinksProps{}),
	}
	for name, html := range silent {
		if html != "" {
			t.Errorf("%s: expected nothing, got %s", name, html)
		}
	}
}

func TestListsUseIndexKeysWithoutID(t *testing.T) {
	html := ServiceList(testContext(), prefix, ServiceListProps{Services: []models.Service{
		{ServiceName: "Reel", PriceRange: "$100"},
		{ID: "svc-9", ServiceName: "Story"},
	}, ShowPrice: true})

	if !strings.Contains(html, `data-key="item-0"`) || !strings.Contains(html, `data-key="svc-9"`) {
		t.Fatalf("unexpected keys in %s", html)
	}
	if !strings.Contains(html, "$100") {
		t.Fatalf("expected price, got %s", html)
	}
}

func TestUsableMediaFilters(t *testing.T) {
	videos := UsableVideos([]models.VideoItem{{URL: " "}, {URL: "https://youtube.com/watch?v=abc"}, {}})
	if len(videos) != 1 || videos[0].URL != "https://youtube.com/watch?v=abc" {
		t.Fatalf("expected only the video with a url, got %+v", videos)
	}

	images := UsableImages([]string{"javascript:alert(1)", "", "https://cdn.example.com/a.jpg"})
	if len(images) != 1 || images[0] != "https://cdn.example.com/a.jpg" {
		t.Fatalf("expected only the safe image, got %v", images)
	}
}

func TestPortfolioGridSkipsUnsafeURLs(t *testing.T) {
	html := PortfolioGrid(testContext(), prefix, PortfolioGridProps{Images: []string{"javascript:alert(1)", "https://img/1.jpg", "https://img/2.jpg"}, Limit: 1})
	if strings.Contains(html, "javascript") || strings.Count(html, "<img") != 1 {
		t.Fatalf("unexpected portfolio markup %s", html)
	}
}

func TestSectionTitle(t *testing.T) {
	if SectionTitle(testContext(), prefix, SectionTitleProps{}) != "" {
		t.Fatalf("expected no title for blank input")
	}
	html := SectionTitle(testContext(), prefix, SectionTitleProps{Title: "Services", Level: "h9"})
	if !strings.HasPrefix(html, `<div class="kit__section-title"><h2`) {
		t.Fatalf("expected h2 fallback, got %s", html)
	}
}

func TestSocialLabelMultiByteKind(t *testing.T) {
	label := socialLabel("éclat")
	if !utf8.ValidString(label) || label != "Éclat" {
		t.Fatalf("expected Éclat, got %q", label)
	}
}
