package blocks

import (
	"strconv"
	"strings"

	"glowfolio-backend/internal/models"
)

type ServiceListProps struct {
	Services  []models.Service
	ShowPrice bool
}

// ServiceList renders offered services. An empty list renders nothing; the
// parent section decides what to show instead.
func ServiceList(ctx RenderContext, prefix string, props ServiceListProps) string {
	var sb strings.Builder
	count := 0
	for i, service := range props.Services {
		name := strings.TrimSpace(service.ServiceName)
		if name == "" {
			continue
		}
		if count == 0 {
			sb.WriteString(`<ul class="` + class(prefix, "services") + `">`)
		}
		count++

		sb.WriteString(`<li class="` + class(prefix, "service") + `" data-key="` + esc(itemKey(service.ID, i)) + `">`)
		sb.WriteString(`<h3 class="` + class(prefix, "service-name") + `">` + esc(name) + `</h3>`)
		if desc := strings.TrimSpace(service.Description); desc != "" {
			sb.WriteString(`<div class="` + class(prefix, "service-description") + `">` + sanitize(ctx, desc) + `</div>`)
		}
		if price := strings.TrimSpace(service.PriceRange); price != "" && props.ShowPrice {
			sb.WriteString(`<span class="` + class(prefix, "service-price") + `">` + esc(price) + `</span>`)
		}
		sb.WriteString(`</li>`)
	}
	if count == 0 {
		return ""
	}
	sb.WriteString(`</ul>`)
	return sb.String()
}

type BrandCollaborationsProps struct {
	Collaborations []models.BrandCollaboration
	// Detailed shows description, type and date next to the brand name.
	Detailed bool
}

// BrandCollaborations renders past brand partners as tags. An empty list renders nothing.
func BrandCollaborations(ctx RenderContext, prefix string, props BrandCollaborationsProps) string {
	var sb strings.Builder
	count := 0
	for i, collab := range props.Collaborations {
		brand := strings.TrimSpace(collab.BrandName)
		if brand == "" {
			continue
		}
		if count == 0 {
			sb.WriteString(`<ul class="` + class(prefix, "brands") + `">`)
		}
		count++

		sb.WriteString(`<li class="` + class(prefix, "brand") + `" data-key="` + esc(itemKey(collab.ID, i)) + `">`)
		sb.WriteString(`<span class="` + class(prefix, "brand-name") + `">` + esc(brand) + `</span>`)
		if props.Detailed {
			if kind := strings.TrimSpace(collab.CollaborationType); kind != "" {
				sb.WriteString(`<span class="` + class(prefix, "brand-type") + `">` + esc(kind) + `</span>`)
			}
			if date := strings.TrimSpace(collab.CollaborationDate); date != "" {
				sb.WriteString(`<time class="` + class(prefix, "brand-date") + `">` + esc(date) + `</time>`)
			}
			if desc := strings.TrimSpace(collab.Description); desc != "" {
				sb.WriteString(`<div class="` + class(prefix, "brand-description") + `">` + sanitize(ctx, desc) + `</div>`)
			}
		}
		sb.WriteString(`</li>`)
	}
	if count == 0 {
		return ""
	}
	sb.WriteString(`</ul>`)
	return sb.String()
}

type SkillsListProps struct {
	Skills []string
}

// SkillsList renders skills as pills, or a fallback line when none are listed.
func SkillsList(ctx RenderContext, prefix string, props SkillsListProps) string {
	var items []string
	for _, skill := range props.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			items = append(items, `<li class="`+class(prefix, "skill")+`">`+esc(skill)+`</li>`)
		}
	}
	if len(items) == 0 {
		return `<p class="` + modifier(prefix, "skills", "empty") + `">No skills listed</p>`
	}
	return `<ul class="` + class(prefix, "skills") + `">` + strings.Join(items, "") + `</ul>`
}

type AudienceDemographicsProps struct {
	AgeRange     string
	Gender       string
	TopLocations string
	Interests    string
}

// HasData reports whether any demographic field is set.
func (p AudienceDemographicsProps) HasData() bool {
	return strings.TrimSpace(p.AgeRange) != "" ||
		strings.TrimSpace(p.Gender) != "" ||
		strings.TrimSpace(p.TopLocations) != "" ||
		strings.TrimSpace(p.Interests) != ""
}

// AudienceDemographics renders the audience breakdown, or a fallback line when no field is set.
func AudienceDemographics(ctx RenderContext, prefix string, props AudienceDemographicsProps) string {
	rows := []struct {
		label string
		value string
	}{
		{"Age Range", props.AgeRange},
		{"Gender", props.Gender},
		{"Top Locations", props.TopLocations},
		{"Interests", props.Interests},
	}

	var sb strings.Builder
	for _, row := range rows {
		value := strings.TrimSpace(row.value)
		if value == "" {
			continue
		}
		sb.WriteString(`<div class="` + class(prefix, "audience-row") + `">`)
		sb.WriteString(`<dt class="` + class(prefix, "audience-label") + `">` + row.label + `</dt>`)
		sb.WriteString(`<dd class="` + class(prefix, "audience-value") + `">` + esc(value) + `</dd>`)
		sb.WriteString(`</div>`)
	}

	if sb.Len() == 0 {
		return `<p class="` + modifier(prefix, "audience", "empty") + `">No audience demographics available</p>`
	}
	return `<dl class="` + class(prefix, "audience") + `">` + sb.String() + `</dl>`
}

func itemKey(id string, index int) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return "item-" + strconv.Itoa(index)
}
