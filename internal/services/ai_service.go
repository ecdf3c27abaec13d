package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ajramos/promptvault/internal/config"
	"github.com/ajramos/promptvault/internal/llm"
)

// ImproveResult is the outcome of a prompt improvement. When the AI path
// fails the template fallback still produces Improved, with AIError
// recording why the model was not used.
type ImproveResult struct {
	Improved string `json:"improved"`
	UsedAI   bool   `json:"usedAI,omitempty"`
	AIError  string `json:"aiError,omitempty"`
}

// AIServiceImpl implements prompt improvement over an LLM provider with a
// template-based offline fallback.
type AIServiceImpl struct {
	provider llm.Provider
	settings *config.Manager
}

// NewAIService creates a new AI service. A nil provider disables the AI
// path; improvement then always uses templates.
func NewAIService(provider llm.Provider, settings *config.Manager) *AIServiceImpl {
	return &AIServiceImpl{
		provider: provider,
		settings: settings,
	}
}

const improveSystemPromptEN = `You are a Prompt Engineering expert. Only improve the prompt below.

IMPORTANT:
- Do NOT write the requested content
- Do NOT answer the prompt
- Only rewrite it better

Rules:
1. Add clear role (e.g., "You are a professional writer...")
2. Add specs (length, style, structure)
3. Add requirements
4. Use ## headings
5. Keep it 5-15 lines only

Example:
Input: "write article about sports"
Correct output:
"You are a specialist writer. Write an article about sports.
## Specs
- Length: 500 words
## Requirements
- Useful content"

Return only the improved prompt:`

const improveSystemPromptAR = `أنت خبير في Prompt Engineering. حسّن البرومبت التالي فقط.

مهم جداً:
- لا تكتب المحتوى المطلوب
- لا تجب على البرومبت
- فقط أعد كتابة البرومبت بشكل أفضل

قواعد التحسين:
1. أضف دور واضح (مثل: "أنت كاتب محترف...")
2. أضف المواصفات (الطول، الأسلوب، الهيكل)
3. أضف المتطلبات
4. استخدم ## للعناوين
5. اجعله 5-15 سطر فقط

مثال:
المدخل: "اكتب مقال عن الرياضة"
المخرج الصحيح:
"أنت كاتب متخصص. اكتب مقالاً عن الرياضة.
## المواصفات
- الطول: 500 كلمة
## المطلوب
- محتوى مفيد"

أعد البرومبت المحسّن فقط:`

// ImprovePrompt rewrites a prompt through the configured model when the
// user has AI enabled and an API key set, and through the structural
// templates otherwise. Model failures fall back to templates rather than
// surfacing an error.
func (s *AIServiceImpl) ImprovePrompt(ctx context.Context, text string, opts ImproveOptions) *ImproveResult {
	if strings.TrimSpace(text) == "" {
		return &ImproveResult{Improved: ""}
	}

	useAI := true
	apiKey := ""
	if s.settings != nil {
		st := s.settings.Load(ctx)
		useAI = st.UseAI
		apiKey = st.APIKey
	}

	if !useAI || apiKey == "" || s.provider == nil {
		return &ImproveResult{Improved: ImproveTemplate(text, opts)}
	}

	isArabic := opts.Language == "ar" || ContainsArabic(text)
	systemPrompt := improveSystemPromptEN
	if isArabic {
		systemPrompt = improveSystemPromptAR
	}

	improved, err := s.provider.Generate(ctx, text, systemPrompt)
	if err != nil {
		log.Printf("ai improvement failed, using template: %v", err)
		return &ImproveResult{
			Improved: ImproveTemplate(text, opts),
			AIError:  err.Error(),
		}
	}

	return &ImproveResult{Improved: improved, UsedAI: true}
}

// GenerateWithPrompt runs an arbitrary prompt through the provider. Unlike
// ImprovePrompt there is no fallback; callers asking for raw generation
// get the error.
func (s *AIServiceImpl) GenerateWithPrompt(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("AI provider not available: %w", ErrServiceUnavailable)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty: %w", ErrInvalidPrompt)
	}
	return s.provider.Generate(ctx, prompt, systemPrompt)
}
