package templates

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"glowfolio-backend/internal/placeholder"
	"glowfolio-backend/internal/theme"
)

// DefaultID is the template used when an identifier is unknown.
const DefaultID = "default"

// Entry binds a template to its placeholder data and theme function.
type Entry struct {
	ID            string
	Name          string
	Description   string
	Order         int
	Render        RenderFunc
	PreviewData   placeholder.Func
	ThumbnailData placeholder.Func
	Theme         theme.Func
}

// Registry stores the mapping between template identifiers and their entries.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

func normaliseID(id string) string {
	return strings.TrimSpace(strings.ToLower(id))
}

// Register adds or replaces an entry. It returns an error when the entry is incomplete.
func (r *Registry) Register(entry Entry) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	entry.ID = normaliseID(entry.ID)
	if entry.ID == "" {
		return fmt.Errorf("template id is empty")
	}
	if entry.Render == nil {
		return fmt.Errorf("render function is nil for template %s", entry.ID)
	}
	if entry.Theme == nil {
		return fmt.Errorf("theme function is nil for template %s", entry.ID)
	}
	if entry.PreviewData == nil || entry.ThumbnailData == nil {
		return fmt.Errorf("placeholder data is missing for template %s", entry.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]Entry)
	}
	r.entries[entry.ID] = entry
	return nil
}

// MustRegister registers the entry and panics if registration fails.
func (r *Registry) MustRegister(entry Entry) {
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}

// Get retrieves the entry for id if it exists.
func (r *Registry) Get(id string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}

	id = normaliseID(id)
	if id == "" {
		return Entry{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	return entry, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Resolve returns the entry for id, falling back to the default template.
// The boolean reports whether id itself was found.
func (r *Registry) Resolve(id string) (Entry, bool) {
	if entry, ok := r.Get(id); ok {
		return entry, true
	}
	entry, _ := r.Get(DefaultID)
	return entry, false
}

// List returns all entries ordered for the template picker.
func (r *Registry) List() []Entry {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	entries := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Order != entries[j].Order {
			return entries[i].Order < entries[j].Order
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// DefaultRegistry returns a registry with the built-in templates.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(Entry{
		ID:            DefaultID,
		Name:          "Default",
		Description:   "Clean two-column layout with stat cards and a purple accent.",
		Order:         0,
		Render:        RenderDefault,
		PreviewData:   placeholder.DefaultPreview,
		ThumbnailData: placeholder.DefaultThumbnail,
		Theme:         theme.DefaultTheme,
	})
	reg.MustRegister(Entry{
		ID:            "aesthetic",
		Name:          "Aesthetic",
		Description:   "Soft pastel palette with a centred profile and rounded cards.",
		Order:         10,
		Render:        RenderAesthetic,
		PreviewData:   placeholder.AestheticPreview,
		ThumbnailData: placeholder.AestheticThumbnail,
		Theme:         theme.AestheticTheme,
	})
	reg.MustRegister(Entry{
		ID:            "luxury",
		Name:          "Luxury",
		Description:   "Dark canvas, gold accents and a full-bleed hero.",
		Order:         20,
		Render:        RenderLuxury,
		PreviewData:   placeholder.LuxuryPreview,
		ThumbnailData: placeholder.LuxuryThumbnail,
		Theme:         theme.LuxuryTheme,
	})
	reg.MustRegister(Entry{
		ID:            "elegant",
		Name:          "Elegant",
		Description:   "Serif typography on warm neutrals.",
		Order:         30,
		Render:        RenderElegant,
		PreviewData:   placeholder.ElegantPreview,
		ThumbnailData: placeholder.ElegantThumbnail,
		Theme:         theme.ElegantTheme,
	})
	reg.MustRegister(Entry{
		ID:            "v1",
		Name:          "Classic",
		Description:   "The original single-column media kit.",
		Order:         40,
		Render:        RenderV1,
		PreviewData:   placeholder.V1Preview,
		ThumbnailData: placeholder.V1Thumbnail,
		Theme:         theme.V1Theme,
	})
	return reg
}
