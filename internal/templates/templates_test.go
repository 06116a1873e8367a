package templates

import (
	"strings"
	"testing"
	"unicode/utf8"

	"glowfolio-backend/internal/blocks"
	"glowfolio-backend/internal/models"
	"glowfolio-backend/internal/theme"
)

func testContext() blocks.RenderContext {
	return blocks.NewContext()
}

func TestDefaultTemplateWithEmptyData(t *testing.T) {
	out := RenderDefault(testContext(), Input{
		Data:       &models.EditorPreviewData{},
		Theme:      theme.DefaultTheme(nil),
		Visibility: models.AllVisible(),
	})

	expected := []string{
		"Your Name",
		"No Photo",
		"No analytics data available",
		"No performance data yet",
		"No audience demographics available",
		"No portfolio items yet",
		"No brand collaborations yet",
		"No services listed yet",
		"No skills listed",
		"No contact details provided",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in empty default render", want)
		}
	}

	if strings.Contains(out, `__section--about`) {
		t.Errorf("about section should collapse without a bio")
	}
	if strings.Contains(out, "data-video-embed") {
		t.Errorf("empty render should not contain videos")
	}
}

func TestLoadingAndMissingData(t *testing.T) {
	renders := map[string]RenderFunc{
		"default":   RenderDefault,
		"aesthetic": RenderAesthetic,
		"luxury":    RenderLuxury,
		"elegant":   RenderElegant,
		"v1":        RenderV1,
	}

	for name, render := range renders {
		loading := render(testContext(), Input{Loading: true, Data: &models.EditorPreviewData{FullName: "Ignored"}})
		if loading != loadingMarkup {
			t.Errorf("%s: expected loading markup, got %q", name, loading)
		}

		missing := render(testContext(), Input{})
		if missing != noDataMarkup {
			t.Errorf("%s: expected no-data markup, got %q", name, missing)
		}
	}
}

func TestTemplatesRenderPreviewData(t *testing.T) {
	reg := DefaultRegistry()
	for _, entry := range reg.List() {
		data := entry.PreviewData()
		out := entry.Render(testContext(), Input{
			Data:  &data,
			Theme: entry.Theme(data.Colors),
		})

		if !strings.Contains(out, `data-template="`+entry.ID+`"`) {
			t.Errorf("%s: missing template marker", entry.ID)
		}
		if !strings.Contains(out, "--kit-primary:") {
			t.Errorf("%s: theme variables not bound", entry.ID)
		}
		if strings.Contains(out, "No analytics data available") {
			t.Errorf("%s: preview data should populate stats", entry.ID)
		}
		if !strings.Contains(out, `data-section="contact"`) {
			t.Errorf("%s: expected a contact section", entry.ID)
		}
		if !strings.Contains(out, blocks.VideoShowcaseScript) {
			t.Errorf("%s: live render should load the video script", entry.ID)
		}
	}
}

func TestTemplatesNeverPanicOnEmptyData(t *testing.T) {
	reg := DefaultRegistry()
	for _, entry := range reg.List() {
		for _, vis := range []models.SectionVisibilityState{nil, models.AllVisible(), {}} {
			out := entry.Render(nil, Input{Data: &models.EditorPreviewData{}, Theme: entry.Theme(nil), Visibility: vis})
			if out == "" {
				t.Errorf("%s: expected markup for empty data", entry.ID)
			}
		}
	}
}

func TestVisibilityHidesSections(t *testing.T) {
	data := DefaultRegistry().List()[0].PreviewData()
	vis := models.AllVisible().With(models.FlagServicesSkills, false)

	out := RenderDefault(testContext(), Input{Data: &data, Theme: theme.DefaultTheme(nil), Visibility: vis})
	if strings.Contains(out, `data-section="services"`) || strings.Contains(out, `data-section="skills"`) {
		t.Fatalf("services and skills should be hidden")
	}
	if !strings.Contains(out, `data-section="brands"`) {
		t.Fatalf("brands should remain visible")
	}
}

func TestInputVisibilityOverridesData(t *testing.T) {
	data := &models.EditorPreviewData{
		Bio:               "Hello there",
		SectionVisibility: models.SectionVisibilityState{models.FlagProfileDetails: false},
	}

	hidden := RenderDefault(testContext(), Input{Data: data, Theme: theme.DefaultTheme(nil)})
	if strings.Contains(hidden, "Hello there") {
		t.Fatalf("data visibility should hide the bio")
	}

	shown := RenderDefault(testContext(), Input{
		Data:       data,
		Theme:      theme.DefaultTheme(nil),
		Visibility: models.SectionVisibilityState{models.FlagProfileDetails: true},
	})
	if !strings.Contains(shown, "Hello there") {
		t.Fatalf("input visibility should take precedence")
	}
}

func TestFlagMappingsDiverge(t *testing.T) {
	data := &models.EditorPreviewData{
		PortfolioImages: []string{"https://example.com/a.jpg"},
		Videos:          []models.VideoItem{{URL: "https://www.tiktok.com/@x/video/123", ProviderName: "tiktok"}},
	}
	vis := models.AllVisible().With(models.FlagBrandExperience, false)

	tests := []struct {
		name   string
		render RenderFunc
		want   bool
	}{
		// Default ties portfolio images to tiktokVideos.
		{name: "default", render: RenderDefault, want: true},
		// Aesthetic ties its showcase to brandExperience.
		{name: "aesthetic", render: RenderAesthetic, want: false},
		// Elegant ties its gallery to profilePicture.
		{name: "elegant", render: RenderElegant, want: true},
	}

	for _, tt := range tests {
		out := tt.render(testContext(), Input{Data: data, Theme: theme.DefaultTheme(nil), Visibility: vis})
		got := strings.Contains(out, "https://example.com/a.jpg")
		if got != tt.want {
			t.Errorf("%s: portfolio image shown = %v, want %v", tt.name, got, tt.want)
		}
	}

	elegantHidden := RenderElegant(testContext(), Input{
		Data:       data,
		Theme:      theme.ElegantTheme(nil),
		Visibility: models.AllVisible().With(models.FlagProfilePicture, false),
	})
	if strings.Contains(elegantHidden, "https://example.com/a.jpg") {
		t.Errorf("elegant gallery should follow profilePicture")
	}
}

func TestLuxuryHasNoSkillsSection(t *testing.T) {
	data := &models.EditorPreviewData{Skills: []string{"Styling"}}
	out := RenderLuxury(testContext(), Input{Data: data, Theme: theme.LuxuryTheme(nil)})
	if strings.Contains(out, "Styling") {
		t.Fatalf("luxury should not render skills")
	}
	if !strings.Contains(out, "Rates available on request") {
		t.Fatalf("expected luxury services fallback")
	}
}

func TestTopLevelFieldsWinOverLegacy(t *testing.T) {
	data := &models.EditorPreviewData{
		Tagline: "Top tagline",
		MediaKitData: models.JSONMap{
			"tagline": "Legacy tagline",
			"bio":     "Legacy bio",
			"skills":  []interface{}{"Legacy skill"},
		},
	}

	out := RenderDefault(testContext(), Input{Data: data, Theme: theme.DefaultTheme(nil)})
	if !strings.Contains(out, "Top tagline") || strings.Contains(out, "Legacy tagline") {
		t.Errorf("top-level tagline should win")
	}
	if !strings.Contains(out, "Legacy bio") {
		t.Errorf("legacy bio should fill the missing top-level bio")
	}
	if !strings.Contains(out, "Legacy skill") {
		t.Errorf("legacy skills should fill the missing top-level skills")
	}
}

func TestDataFontOverridesTheme(t *testing.T) {
	data := &models.EditorPreviewData{MediaKitData: models.JSONMap{"font": "Georgia, serif"}}
	out := RenderDefault(testContext(), Input{Data: data, Theme: theme.DefaultTheme(nil)})
	if !strings.Contains(out, "--kit-font:Georgia, serif") {
		t.Fatalf("expected legacy font to be applied, got %q", out)
	}
}

func TestV1PlatformBreakdown(t *testing.T) {
	data := &models.EditorPreviewData{
		Stats: []models.MediaKitStats{
			{Platform: "instagram", FollowerCount: 12000, EngagementRate: 3.26},
			{Platform: "tiktok", FollowerCount: 8000},
		},
	}

	out := RenderV1(testContext(), Input{Data: data, Theme: theme.V1Theme(nil)})
	for _, want := range []string{"Instagram Followers", "12K", "3.3%", "TikTok Followers", "20K"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in v1 render", want)
		}
	}

	hidden := RenderV1(testContext(), Input{
		Data:       data,
		Theme:      theme.V1Theme(nil),
		Visibility: models.AllVisible().With(models.FlagSocialMedia, false),
	})
	if strings.Contains(hidden, `data-section="platforms"`) {
		t.Errorf("platforms should follow socialMedia")
	}
}

func TestPreviewDisablesVideoInteraction(t *testing.T) {
	data := &models.EditorPreviewData{
		Videos: []models.VideoItem{{URL: "https://www.tiktok.com/@x/video/123456", ProviderName: "tiktok"}},
	}

	out := RenderDefault(testContext(), Input{Data: data, Theme: theme.DefaultTheme(nil), Preview: true})
	if strings.Contains(out, "data-video-embed") {
		t.Fatalf("preview render should not be interactive")
	}
	if strings.Contains(out, blocks.VideoShowcaseScript) {
		t.Fatalf("preview render should not load the video script")
	}
}

func TestUnusableMediaFallsBackToEmptyText(t *testing.T) {
	tests := []struct {
		name   string
		render RenderFunc
		theme  models.TemplateTheme
		data   *models.EditorPreviewData
		want   string
	}{
		{
			name:   "default blank video url",
			render: RenderDefault,
			theme:  theme.DefaultTheme(nil),
			data:   &models.EditorPreviewData{Videos: []models.VideoItem{{URL: "  "}}},
			want:   "No portfolio items yet",
		},
		{
			name:   "default unsafe image",
			render: RenderDefault,
			theme:  theme.DefaultTheme(nil),
			data:   &models.EditorPreviewData{PortfolioImages: []string{"javascript:alert(1)"}},
			want:   "No portfolio items yet",
		},
		{
			name:   "luxury unsafe image",
			render: RenderLuxury,
			theme:  theme.LuxuryTheme(nil),
			data:   &models.EditorPreviewData{PortfolioImages: []string{"javascript:alert(1)"}},
			want:   "Portfolio available upon request",
		},
		{
			name:   "luxury blank video url",
			render: RenderLuxury,
			theme:  theme.LuxuryTheme(nil),
			data:   &models.EditorPreviewData{Videos: []models.VideoItem{{URL: ""}}},
			want:   "Portfolio available upon request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render(testContext(), Input{Data: tt.data, Theme: tt.theme, Visibility: models.AllVisible()})
			if !strings.Contains(out, tt.want) {
				t.Fatalf("expected empty text %q", tt.want)
			}
			if strings.Contains(out, "javascript:") {
				t.Fatalf("unsafe url leaked into render")
			}
		})
	}
}

func TestPlatformLabel(t *testing.T) {
	tests := map[string]string{
		"":         "Platform",
		"tiktok":   "TikTok",
		" twitch ": "Twitch",
		"éclat":    "Éclat",
	}
	for input, want := range tests {
		got := platformLabel(input)
		if !utf8.ValidString(got) || got != want {
			t.Fatalf("platformLabel(%q) = %q, want %q", input, got, want)
		}
	}
}
