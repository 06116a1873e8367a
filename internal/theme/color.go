package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"glowfolio-backend/pkg/utils"
)

// WithAlpha appends a two-digit alpha channel to a hex colour ("#9333EA" + "33").
// Values that are not plain hex colours are returned unchanged.
func WithAlpha(hex, alpha string) string {
	r, g, b, ok := utils.ParseHexColor(hex)
	if !ok {
		return strings.TrimSpace(hex)
	}
	return fmt.Sprintf("#%02X%02X%02X%s", r, g, b, strings.ToUpper(alpha))
}

// Mix blends hex toward target by weight (0 keeps hex, 1 yields target).
// It returns fallback when either colour cannot be parsed.
func Mix(hex, target string, weight float64, fallback string) string {
	from, ok := parseColor(hex)
	if !ok {
		return fallback
	}
	to, ok := parseColor(target)
	if !ok {
		return fallback
	}
	weight = math.Max(0, math.Min(1, weight))
	return strings.ToUpper(from.BlendRgb(to, weight).Clamped().Hex())
}

func parseColor(hex string) (colorful.Color, bool) {
	r, g, b, ok := utils.ParseHexColor(hex)
	if !ok {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

// ColorMix expresses a translucent colour as a CSS color-mix() expression.
func ColorMix(color string, percent int) string {
	return fmt.Sprintf("color-mix(in srgb, %s %d%%, transparent)", strings.TrimSpace(color), percent)
}

func pick(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
