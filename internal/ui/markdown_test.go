package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkdownWithStyleDark(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		width        int
		wantContains []string
	}{
		{
			name:         "plain text",
			input:        "The lighthouse keeper counted ships.",
			width:        80,
			wantContains: []string{"The lighthouse keeper counted ships."},
		},
		{
			name:         "heading",
			input:        "# Mirror · Whisper · Nostalgia",
			width:        80,
			wantContains: []string{"Mirror · Whisper · Nostalgia"},
		},
		{
			name:         "list",
			input:        "- first draft\n- second draft",
			width:        80,
			wantContains: []string{"first draft", "second draft"},
		},
		{
			name:         "emphasis",
			input:        "She was **never** coming back, *probably*.",
			width:        80,
			wantContains: []string{"never", "probably"},
		},
		{
			name:         "small width wraps",
			input:        "This is a longer line of text that should wrap",
			width:        20,
			wantContains: []string{"This is a longer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderMarkdownWithStyle(tt.input, tt.width, "dark"))
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output should contain %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdownWithStyle("", 80, "dark"); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderMarkdownUnknownStyleFallsBack(t *testing.T) {
	input := "Some content"
	if got := RenderMarkdownWithStyle(input, 80, "/no/such/style.json"); got != input {
		t.Errorf("expected original content on renderer failure, got %q", got)
	}
}

func TestRenderMarkdownCachesRenderers(t *testing.T) {
	clear(renderers)

	RenderMarkdownWithStyle("# a", 80, "dark")
	RenderMarkdownWithStyle("# b", 80, "dark")
	RenderMarkdownWithStyle("# c", 40, "dark")
	RenderMarkdownWithStyle("# d", 0, "")

	if len(renderers) != 2 {
		t.Errorf("expected 2 cached renderers, got %d", len(renderers))
	}
}

func TestRenderMarkdownStyleChange(t *testing.T) {
	dark := RenderMarkdownWithStyle("# Test", 80, "dark")
	notty := RenderMarkdownWithStyle("# Test", 80, "notty")

	if dark == notty {
		t.Error("expected different output for different styles")
	}
}
