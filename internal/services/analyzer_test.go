package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzePrompt_Empty(t *testing.T) {
	a := AnalyzePrompt("   ")
	assert.Zero(t, a.Score)
	assert.Zero(t, a.WordCount)
	assert.Empty(t, a.Suggestions)
}

func TestAnalyzePrompt_Scoring(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		score int
	}{
		{"bare", "do the thing", 0},
		{"context_only", "given this background, do the thing", 20},
		{"instructions_only", "follow these steps", 25},
		{"full_house", "Context: x. Instructions: y. Example: z. Output format: json. Constraints: none.", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.score, AnalyzePrompt(tt.text).Score)
		})
	}
}

func TestAnalyzePrompt_ArabicMarkers(t *testing.T) {
	a := AnalyzePrompt("سياق المشروع ثم تعليمات التنفيذ")
	assert.True(t, a.HasContext)
	assert.True(t, a.HasInstructions)
	assert.Equal(t, 45, a.Score)
}

func TestAnalyzePrompt_Suggestions(t *testing.T) {
	a := AnalyzePrompt("do the thing")
	assert.Contains(t, a.Suggestions, "Add clear context")
	assert.Contains(t, a.Suggestions, "Specify output format")
	assert.NotContains(t, a.Suggestions, "Consider adding examples", "short prompts skip the examples nudge")

	long := strings.Repeat("word ", 60) + "output format: json, context given, instructions follow"
	a = AnalyzePrompt(long)
	assert.Contains(t, a.Suggestions, "Consider adding examples")
}

func TestFormatPrompt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"spaces", "a    b\t\tc", "a b c"},
		{"newline_runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"trim", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrompt(tt.in))
		})
	}
}

func TestStripHTML(t *testing.T) {
	out := StripHTML(`<div><p>Write a <b>prompt</b></p><script>alert(1)</script><style>p{}</style></div>`)
	assert.Contains(t, out, "Write a prompt")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "p{}")

	// Plain text passes through
	assert.Equal(t, "just text", StripHTML("just text"))
}
