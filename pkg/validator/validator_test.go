package validator

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type palette struct {
	Background string `validate:"omitempty,hexcolor"`
	Accent     string `validate:"omitempty,hexcolor"`
}

type renderRequest struct {
	TemplateID string `binding:"omitempty,template_id"`
	Tagline    string `binding:"omitempty,no_html"`
}

func TestValidateColors(t *testing.T) {
	testCases := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{"nil", nil, false},
		{"nil pointer", (*palette)(nil), false},
		{"empty", &palette{}, false},
		{"valid", &palette{Background: "#FFF", Accent: "#9333ea"}, false},
		{"invalid", &palette{Accent: "pink"}, true},
	}

	for _, tc := range testCases {
		err := ValidateColors(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: expected error=%v, got %v", tc.name, tc.wantErr, err)
		}
	}

	err := ValidateColors(&palette{Accent: "pink"})
	if err == nil || !strings.Contains(err.Error(), "accent") {
		t.Fatalf("expected error to name the field, got %v", err)
	}
}

func TestBindingValidations(t *testing.T) {
	Init()

	testCases := []struct {
		name    string
		input   renderRequest
		wantErr bool
	}{
		{"valid", renderRequest{TemplateID: "luxury", Tagline: "Hi"}, false},
		{"empty", renderRequest{}, false},
		{"mixed case id", renderRequest{TemplateID: "Luxury"}, false},
		{"bad id", renderRequest{TemplateID: "luxury!"}, true},
		{"html tagline", renderRequest{Tagline: "<b>hi</b>"}, true},
	}

	for _, tc := range testCases {
		err := binding.Validator.ValidateStruct(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: expected error=%v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestValidUsername(t *testing.T) {
	testCases := []struct {
		username string
		want     bool
	}{
		{"sophia_c", true},
		{"demo.kit", true},
		{"a", false},
		{"has space", false},
		{"<script>", false},
		{strings.Repeat("x", 41), false},
	}
	for _, tc := range testCases {
		if got := ValidUsername(tc.username); got != tc.want {
			t.Errorf("ValidUsername(%q) = %v, want %v", tc.username, got, tc.want)
		}
	}
}

func TestSanitizeHTML(t *testing.T) {
	got := SanitizeHTML(`<p>Hello <script>alert(1)</script><strong>world</strong></p>`)
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected script to be removed, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected safe markup to be kept, got %q", got)
	}
}
