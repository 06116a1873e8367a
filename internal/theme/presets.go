package theme

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"glowfolio-backend/internal/models"
	"glowfolio-backend/pkg/logger"
	"glowfolio-backend/pkg/validator"
)

// Preset is a named colour scheme offered in the editor.
type Preset struct {
	Name        string             `json:"name"`
	Label       string             `json:"label,omitempty"`
	Order       int                `json:"order,omitempty"`
	Description string             `json:"description,omitempty"`
	Colors      models.ColorScheme `json:"colors"`
}

type presetFile struct {
	Presets []Preset `json:"presets"`
}

func defaultPresets() map[string]Preset {
	return map[string]Preset{
		"classic": {
			Name:        "classic",
			Label:       "Classic",
			Order:       0,
			Description: "Clean white layout with a purple highlight.",
			Colors: models.ColorScheme{
				Background:  "#FFFFFF",
				Text:        "#1F2937",
				Secondary:   "#6B7280",
				AccentLight: "#F3E8FF",
				Accent:      "#EC4899",
				Primary:     "#9333EA",
			},
		},
		"blush": {
			Name:        "blush",
			Label:       "Blush",
			Order:       10,
			Description: "Soft pinks for lifestyle and beauty creators.",
			Colors: models.ColorScheme{
				Background:  "#FDF2F8",
				Text:        "#4A044E",
				Secondary:   "#9D8189",
				AccentLight: "#FCE7F3",
				Accent:      "#F472B6",
				Primary:     "#DB2777",
			},
		},
		"noir": {
			Name:        "noir",
			Label:       "Noir",
			Order:       20,
			Description: "Dark canvas with gold details.",
			Colors: models.ColorScheme{
				Background:  "#0B0B0C",
				Text:        "#F5F5F4",
				Secondary:   "#A8A29E",
				AccentLight: "#FDE68A",
				Accent:      "#D4AF37",
				Primary:     "#D4AF37",
			},
		},
		"sage": {
			Name:        "sage",
			Label:       "Sage",
			Order:       30,
			Description: "Muted greens and warm neutrals.",
			Colors: models.ColorScheme{
				Background:  "#F6F7F2",
				Text:        "#283618",
				Secondary:   "#7C8471",
				AccentLight: "#E3EAD8",
				Accent:      "#A3B18A",
				Primary:     "#588157",
			},
		},
		"ocean": {
			Name:        "ocean",
			Label:       "Ocean",
			Order:       40,
			Description: "Cool blues for tech and travel.",
			Colors: models.ColorScheme{
				Background:  "#F8FAFC",
				Text:        "#0F172A",
				Secondary:   "#64748B",
				AccentLight: "#DBEAFE",
				Accent:      "#3B82F6",
				Primary:     "#1D4ED8",
			},
		},
		"sunset": {
			Name:        "sunset",
			Label:       "Sunset",
			Order:       50,
			Description: "Warm orange and coral tones.",
			Colors: models.ColorScheme{
				Background:  "#FFF7ED",
				Text:        "#431407",
				Secondary:   "#9A6B4F",
				AccentLight: "#FFEDD5",
				Accent:      "#FB923C",
				Primary:     "#EA580C",
			},
		},
	}
}

// DefaultPresets returns a copy of the built-in presets.
func DefaultPresets() map[string]Preset {
	defs := defaultPresets()
	clone := make(map[string]Preset, len(defs))
	for key, value := range defs {
		clone[key] = value
	}
	return clone
}

// LoadPresets reads {"presets": [...]} from path and merges it over the
// built-in presets. A missing file or blank path yields the built-ins.
// Presets with a colour that is not a hex value are skipped.
func LoadPresets(path string) (map[string]Preset, error) {
	defaults := defaultPresets()

	path = strings.TrimSpace(path)
	if path == "" {
		return defaults, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return nil, fmt.Errorf("read presets: %w", err)
	}

	var file presetFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	result := make(map[string]Preset, len(defaults)+len(file.Presets))
	for _, preset := range file.Presets {
		normalised := normalisePresetName(preset.Name)
		if normalised == "" {
			continue
		}
		preset.Name = normalised

		if err := validator.ValidateColors(&preset.Colors); err != nil {
			logger.Warn("Skipping preset with invalid colours", map[string]interface{}{
				"preset": normalised,
				"error":  err.Error(),
			})
			continue
		}

		base, ok := defaults[normalised]
		if !ok {
			base = Preset{Name: normalised}
		}
		result[normalised] = mergePreset(base, preset)
	}

	for key, preset := range defaults {
		if _, ok := result[key]; !ok {
			result[key] = preset
		}
	}

	return result, nil
}

func mergePreset(base, override Preset) Preset {
	result := base

	if override.Label != "" {
		result.Label = override.Label
	}
	if override.Order != 0 {
		result.Order = override.Order
	}
	if override.Description != "" {
		result.Description = override.Description
	}

	colors := override.Colors
	if colors.Background != "" {
		result.Colors.Background = colors.Background
	}
	if colors.Text != "" {
		result.Colors.Text = colors.Text
	}
	if colors.Secondary != "" {
		result.Colors.Secondary = colors.Secondary
	}
	if colors.AccentLight != "" {
		result.Colors.AccentLight = colors.AccentLight
	}
	if colors.Accent != "" {
		result.Colors.Accent = colors.Accent
	}
	if colors.Primary != "" {
		result.Colors.Primary = colors.Primary
	}

	return result
}

func normalisePresetName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Catalog holds the active preset set and can be reloaded at runtime.
type Catalog struct {
	path string

	mu      sync.RWMutex
	presets map[string]Preset
}

// NewCatalog loads presets from path (see LoadPresets).
func NewCatalog(path string) (*Catalog, error) {
	presets, err := LoadPresets(path)
	if err != nil {
		return nil, err
	}
	return &Catalog{path: path, presets: presets}, nil
}

// Reload re-reads the presets file. On error the previous set stays active.
func (c *Catalog) Reload() error {
	presets, err := LoadPresets(c.path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.presets = presets
	c.mu.Unlock()
	return nil
}

// Get returns the preset registered under name.
func (c *Catalog) Get(name string) (Preset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	preset, ok := c.presets[normalisePresetName(name)]
	return preset, ok
}

// List returns presets ordered by Order, then name.
func (c *Catalog) List() []Preset {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := make([]Preset, 0, len(c.presets))
	for _, preset := range c.presets {
		list = append(list, preset)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Order == list[j].Order {
			return list[i].Name < list[j].Name
		}
		return list[i].Order < list[j].Order
	})

	return list
}

// Snapshot returns a copy of the preset map.
func (c *Catalog) Snapshot() map[string]Preset {
	c.mu.RLock()
	defer c.mu.RUnlock()

	clone := make(map[string]Preset, len(c.presets))
	for key, value := range c.presets {
		clone[key] = value
	}
	return clone
}

// ResolveScheme picks the colour scheme a kit renders with. Explicit colours
// win field by field over the named preset; nil means "use template defaults".
func ResolveScheme(stored *models.ColorScheme, preset string, presets map[string]Preset) *models.ColorScheme {
	var base models.ColorScheme
	if p, ok := presets[normalisePresetName(preset)]; ok {
		base = p.Colors
	}

	if stored.IsEmpty() {
		if base.IsEmpty() {
			return nil
		}
		return &base
	}

	merged := mergePreset(Preset{Colors: base}, Preset{Colors: *stored}).Colors
	return &merged
}

// Presets returns the built-in presets in display order.
func Presets() []Preset {
	return (&Catalog{presets: defaultPresets()}).List()
}
