package services

import (
	"regexp"
	"strings"
)

// Analysis is the structured quality report for a prompt. Score is 0-100;
// each detected structural element contributes a fixed weight.
type Analysis struct {
	HasContext      bool     `json:"hasContext"`
	HasInstructions bool     `json:"hasInstructions"`
	HasExamples     bool     `json:"hasExamples"`
	HasOutputFormat bool     `json:"hasOutputFormat"`
	HasConstraints  bool     `json:"hasConstraints"`
	WordCount       int      `json:"wordCount"`
	Score           int      `json:"score"`
	Suggestions     []string `json:"suggestions"`
}

var (
	contextRe      = regexp.MustCompile(`(?i)سياق|context|background|given`)
	instructionsRe = regexp.MustCompile(`(?i)تعليمات|instructions?|steps?|خطوات`)
	examplesRe     = regexp.MustCompile(`(?i)مثال|examples?|sample|نموذج`)
	outputRe       = regexp.MustCompile(`(?i)إخراج|output|format|تنسيق`)
	constraintsRe  = regexp.MustCompile(`(?i)قيود|constraints?|limits?|ملاحظات`)
)

// AnalyzePrompt scores a prompt's structure and suggests what is missing.
// Both English and Arabic structural markers are recognized.
func AnalyzePrompt(text string) Analysis {
	if strings.TrimSpace(text) == "" {
		return Analysis{Suggestions: []string{}}
	}

	a := Analysis{
		HasContext:      contextRe.MatchString(text),
		HasInstructions: instructionsRe.MatchString(text),
		HasExamples:     examplesRe.MatchString(text),
		HasOutputFormat: outputRe.MatchString(text),
		HasConstraints:  constraintsRe.MatchString(text),
		WordCount:       len(strings.Fields(text)),
		Suggestions:     []string{},
	}

	if a.HasContext {
		a.Score += 20
	}
	if a.HasInstructions {
		a.Score += 25
	}
	if a.HasExamples {
		a.Score += 20
	}
	if a.HasOutputFormat {
		a.Score += 20
	}
	if a.HasConstraints {
		a.Score += 15
	}

	if !a.HasContext {
		a.Suggestions = append(a.Suggestions, "Add clear context")
	}
	if !a.HasInstructions {
		a.Suggestions = append(a.Suggestions, "Add specific instructions")
	}
	if !a.HasOutputFormat {
		a.Suggestions = append(a.Suggestions, "Specify output format")
	}
	if !a.HasExamples && a.WordCount > 50 {
		a.Suggestions = append(a.Suggestions, "Consider adding examples")
	}

	return a
}
