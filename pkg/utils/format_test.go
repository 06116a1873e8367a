package utils

import (
	"math"
	"testing"

	"glowfolio-backend/internal/models"
)

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"nil", nil, "0"},
		{"not a number", "abc", "0"},
		{"NaN", math.NaN(), "0"},
		{"thousands", 1500, "1.5K"},
		{"round thousands", 2000, "2K"},
		{"millions", 2500000, "2.5M"},
		{"billions", 3100000000.0, "3.1B"},
		{"below a thousand", 999, "999"},
		{"decimal below a thousand", 12.5, "12.5"},
		{"string with commas", "12,500", "12.5K"},
		{"metric", models.Metric("2500000"), "2.5M"},
		{"empty metric", models.Metric(""), "0"},
		{"negative", -1500, "-1.5K"},
	}

	for _, tc := range testCases {
		if got := FormatNumber(tc.value); got != tc.expected {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent("4.567"); got != "4.6%" {
		t.Fatalf("expected 4.6%%, got %q", got)
	}
	if got := FormatPercent("5.2%"); got != "5.2%" {
		t.Fatalf("expected existing percent sign to be tolerated, got %q", got)
	}
	if got := FormatPercent(nil); got != "0%" {
		t.Fatalf("expected 0%% for missing value, got %q", got)
	}
}

func TestContrastColor(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"#FFFFFF", "#000000"},
		{"#000000", "#FFFFFF"},
		{"", "#000000"},
		{"notahex", "#000000"},
		{"fff", "#000000"},
		{"#123", "#FFFFFF"},
		{"#C084FC", "#000000"},
		{"#1E1B4B", "#FFFFFF"},
		{"#GGGGGG", "#000000"},
	}

	for _, tc := range testCases {
		if got := ContrastColor(tc.input); got != tc.expected {
			t.Errorf("ContrastColor(%q): expected %s, got %s", tc.input, tc.expected, got)
		}
	}
}

func TestCapitalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"pinterest", "Pinterest"},
		{"éclat", "Éclat"},
		{"ßeta", "ßeta"},
		{"日本", "日本"},
		{"Already", "Already"},
	}

	for _, tc := range testCases {
		if got := Capitalize(tc.input); got != tc.expected {
			t.Fatalf("Capitalize(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
