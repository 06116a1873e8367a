package blocks

import (
	"strconv"
	"strings"

	"glowfolio-backend/internal/models"
	"glowfolio-backend/pkg/utils"
)

// StatItem is a labelled stat. Value may be any number, a numeric string or a models.Metric.
type StatItem struct {
	Label string
	Value interface{}
}

type StatsGridProps struct {
	Items []StatItem
	// Columns hints the grid width; zero lets CSS decide.
	Columns int
}

// StatsGrid renders the stats that carry a value. Engagement rates are shown as
// one-decimal percentages, everything numeric else goes through FormatNumber.
func StatsGrid(ctx RenderContext, prefix string, props StatsGridProps) string {
	items := FilterStats(props.Items)
	if len(items) == 0 {
		return `<p class="` + modifier(prefix, "stats", "empty") + `"><em>No analytics data available</em></p>`
	}

	gridClass := class(prefix, "stats")
	if props.Columns > 0 {
		gridClass += " " + class(prefix, "stats") + "--cols-" + strconv.Itoa(props.Columns)
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + gridClass + `">`)
	for _, item := range items {
		sb.WriteString(`<div class="` + class(prefix, "stat") + `">`)
		sb.WriteString(`<span class="` + class(prefix, "stat-value") + `">` + esc(FormatStatValue(item)) + `</span>`)
		sb.WriteString(`<span class="` + class(prefix, "stat-label") + `">` + esc(item.Label) + `</span>`)
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// FilterStats drops items whose value is nil, an empty string or an empty Metric.
func FilterStats(items []StatItem) []StatItem {
	result := make([]StatItem, 0, len(items))
	for _, item := range items {
		if statMissing(item.Value) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// FormatStatValue renders a single stat the way StatsGrid displays it.
func FormatStatValue(item StatItem) string {
	if strings.Contains(strings.ToLower(item.Label), "engagement rate") {
		return utils.FormatPercent(item.Value)
	}
	if _, ok := utils.ParseNumber(item.Value); ok {
		return utils.FormatNumber(item.Value)
	}
	switch v := item.Value.(type) {
	case string:
		return strings.TrimSpace(v)
	case models.Metric:
		return v.String()
	default:
		return utils.FormatNumber(item.Value)
	}
}

func statMissing(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case models.Metric:
		return v.IsZero()
	default:
		return false
	}
}
