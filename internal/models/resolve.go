package models

import "strings"

// Field resolution: an explicit top-level value wins, then the legacy
// media_kit_data value, then the template's hard-coded default.

// ResolveString returns the first non-blank of top, legacy and fallback.
func ResolveString(top, legacy, fallback string) string {
	if value := strings.TrimSpace(top); value != "" {
		return value
	}
	if value := strings.TrimSpace(legacy); value != "" {
		return value
	}
	return fallback
}

// FirstNonBlank returns the first value that is not empty after trimming.
func FirstNonBlank(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// ResolveSlice returns the first non-empty slice of top, legacy and fallback.
func ResolveSlice[T any](top, legacy, fallback []T) []T {
	if len(top) > 0 {
		return top
	}
	if len(legacy) > 0 {
		return legacy
	}
	return fallback
}

// ResolveStrings is ResolveSlice for string lists, ignoring blank entries.
func ResolveStrings(top, legacy, fallback []string) []string {
	return ResolveSlice(compactStrings(top), compactStrings(legacy), compactStrings(fallback))
}

// ResolveMetric returns the first present metric.
func ResolveMetric(top, legacy, fallback Metric) Metric {
	if !top.IsZero() {
		return top
	}
	if !legacy.IsZero() {
		return legacy
	}
	return fallback
}

// ResolveColors merges the top-level scheme over the legacy one field by field.
// It returns nil when neither carries a colour.
func ResolveColors(top *ColorScheme, legacy ColorScheme) *ColorScheme {
	if top.IsEmpty() && legacy.IsEmpty() {
		return nil
	}
	var current ColorScheme
	if top != nil {
		current = *top
	}
	return &ColorScheme{
		Background:  ResolveString(current.Background, legacy.Background, ""),
		Text:        ResolveString(current.Text, legacy.Text, ""),
		Secondary:   ResolveString(current.Secondary, legacy.Secondary, ""),
		AccentLight: ResolveString(current.AccentLight, legacy.AccentLight, ""),
		Accent:      ResolveString(current.Accent, legacy.Accent, ""),
		Primary:     ResolveString(current.Primary, legacy.Primary, ""),
	}
}

func compactStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	result := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
