package models

import (
	"database/sql/driver"
	"strings"
)

// ColorScheme is the small palette a creator picks from presets or the colour dialog.
type ColorScheme struct {
	Background  string `json:"background,omitempty" validate:"omitempty,hexcolor"`
	Text        string `json:"text,omitempty" validate:"omitempty,hexcolor"`
	Secondary   string `json:"secondary,omitempty" validate:"omitempty,hexcolor"`
	AccentLight string `json:"accent_light,omitempty" validate:"omitempty,hexcolor"`
	Accent      string `json:"accent,omitempty" validate:"omitempty,hexcolor"`
	Primary     string `json:"primary,omitempty" validate:"omitempty,hexcolor"`
}

// IsEmpty reports whether no colour is set.
func (c *ColorScheme) IsEmpty() bool {
	if c == nil {
		return true
	}
	return strings.TrimSpace(c.Background) == "" &&
		strings.TrimSpace(c.Text) == "" &&
		strings.TrimSpace(c.Secondary) == "" &&
		strings.TrimSpace(c.AccentLight) == "" &&
		strings.TrimSpace(c.Accent) == "" &&
		strings.TrimSpace(c.Primary) == ""
}

func (c ColorScheme) Value() (driver.Value, error) {
	return marshalJSONColumn(c, c.IsEmpty())
}

func (c *ColorScheme) Scan(value interface{}) error {
	return scanJSONColumn(value, c)
}

// TemplateTheme is the fully resolved palette a template renders with.
type TemplateTheme struct {
	Background   string `json:"background"`
	Foreground   string `json:"foreground"`
	Primary      string `json:"primary"`
	PrimaryLight string `json:"primaryLight"`
	Secondary    string `json:"secondary"`
	Accent       string `json:"accent"`
	Neutral      string `json:"neutral"`
	Border       string `json:"border"`
	Font         string `json:"font"`
}

// Complete reports whether every field is populated.
func (t TemplateTheme) Complete() bool {
	for _, value := range t.Fields() {
		if strings.TrimSpace(value) == "" {
			return false
		}
	}
	return true
}

// Fields lists the theme values in a stable order.
func (t TemplateTheme) Fields() []string {
	return []string{
		t.Background,
		t.Foreground,
		t.Primary,
		t.PrimaryLight,
		t.Secondary,
		t.Accent,
		t.Neutral,
		t.Border,
		t.Font,
	}
}
