package services

import (
	"regexp"
	"strings"
)

// ImproveOptions controls the improvement flow. Language forces the output
// language; when empty it is detected from the text.
type ImproveOptions struct {
	Language string
}

var arabicPattern = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}]`)

// ContainsArabic reports whether the text carries any Arabic-block runes.
func ContainsArabic(text string) bool {
	return arabicPattern.MatchString(text)
}

// DetectLanguage classifies text as "ar", "en" or "mixed".
func DetectLanguage(text string) string {
	if text == "" {
		return "en"
	}
	hasArabic := ContainsArabic(text)
	hasEnglish := strings.ContainsFunc(text, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	switch {
	case hasArabic && hasEnglish:
		return "mixed"
	case hasArabic:
		return "ar"
	default:
		return "en"
	}
}

var promptTypePatterns = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"coding", regexp.MustCompile(`(?i)كود|برمج|code|program|function|script|api`)},
	{"writing", regexp.MustCompile(`(?i)مقال|اكتب|كتابة|write|article|essay|blog`)},
	{"translation", regexp.MustCompile(`(?i)ترجم|translate|translation`)},
	{"summary", regexp.MustCompile(`(?i)لخص|تلخيص|summarize|summary`)},
	{"analysis", regexp.MustCompile(`(?i)حلل|تحليل|analyze|analysis`)},
	{"creative", regexp.MustCompile(`(?i)أفكار|فكرة|ideas|brainstorm|creative`)},
	{"explain", regexp.MustCompile(`(?i)شرح|اشرح|explain|clarify`)},
}

// DetectPromptType classifies a prompt by intent; the first matching
// pattern wins, so a coding prompt that also says "write" stays coding.
func DetectPromptType(text string) string {
	for _, p := range promptTypePatterns {
		if p.re.MatchString(text) {
			return p.kind
		}
	}
	return "general"
}

// ImproveTemplate rewrites the prompt into a structured template chosen by
// detected type and language. This is the offline fallback used when the
// AI path is disabled or fails.
func ImproveTemplate(text string, opts ImproveOptions) string {
	if text == "" {
		return ""
	}

	original := strings.TrimSpace(text)
	isArabic := opts.Language == "ar" || ContainsArabic(original)
	kind := DetectPromptType(original)

	if isArabic {
		return buildArabicPrompt(original, kind)
	}
	return buildEnglishPrompt(original, kind)
}

func buildEnglishPrompt(original, kind string) string {
	switch kind {
	case "coding":
		return "You are an expert programmer. " + original + `

## Requirements
- Clean and organized code
- Explanatory comments
- Error handling

## Expected Output
Executable code with brief explanation`
	case "writing":
		return "You are a professional writer. " + original + `

## Specifications
- Length: 500-800 words
- Style: Professional and engaging
- Structure: Introduction, body, conclusion

## Required
- Original and useful content
- Clear and correct language`
	case "translation":
		return "You are a professional translator. " + original + `

## Translation Guidelines
- Preserve original meaning
- Consider cultural context
- Use appropriate terminology

## Output
Accurate and natural translation`
	case "summary":
		return "You are a summarization expert. " + original + `

## Required
- Summary in 3-5 points
- Main ideas only
- Concise and clear language`
	case "analysis":
		return "You are an expert analyst. " + original + `

## Analysis Points
1. Main idea
2. Supporting points
3. Strengths and weaknesses
4. Recommendations`
	case "creative":
		return "You are a creative expert. " + original + `

## Required
- 5-10 innovative ideas
- Brief explanation for each
- Priority ranking`
	case "explain":
		return "You are an expert teacher. " + original + `

## Explanation Method
- Start with simple definition
- Use practical examples
- Progress from easy to hard`
	default:
		return "## Task\n" + original + `

## Context
[Add context here]

## Expected Output
[Specify desired format]`
	}
}

func buildArabicPrompt(original, kind string) string {
	switch kind {
	case "coding":
		return "أنت مبرمج خبير. " + original + `

## المتطلبات
- كود نظيف ومنظم
- تعليقات توضيحية
- معالجة الأخطاء

## الإخراج المتوقع
كود قابل للتنفيذ مع شرح موجز`
	case "writing":
		return "أنت كاتب محترف. " + original + `

## المواصفات
- الطول: 500-800 كلمة
- الأسلوب: احترافي وجذاب
- الهيكل: مقدمة، محتوى، خاتمة

## المطلوب
- محتوى أصلي ومفيد
- لغة سليمة وواضحة`
	case "translation":
		return "أنت مترجم محترف. " + original + `

## إرشادات الترجمة
- حافظ على المعنى الأصلي
- راعِ السياق الثقافي
- استخدم مصطلحات مناسبة

## الإخراج
ترجمة دقيقة وطبيعية`
	case "summary":
		return "أنت خبير في التلخيص. " + original + `

## المطلوب
- ملخص في 3-5 نقاط
- الأفكار الرئيسية فقط
- لغة مختصرة وواضحة`
	case "analysis":
		return "أنت محلل خبير. " + original + `

## نقاط التحليل
1. الفكرة الرئيسية
2. النقاط الفرعية
3. نقاط القوة والضعف
4. التوصيات`
	case "creative":
		return "أنت خبير إبداعي. " + original + `

## المطلوب
- 5-10 أفكار مبتكرة
- شرح موجز لكل فكرة
- ترتيب حسب الأولوية`
	case "explain":
		return "أنت معلم خبير. " + original + `

## طريقة الشرح
- ابدأ بتعريف بسيط
- استخدم أمثلة عملية
- تدرج من السهل للصعب`
	default:
		return "## المهمة\n" + original + `

## السياق
[أضف السياق هنا]

## الإخراج المتوقع
[حدد التنسيق المطلوب]`
	}
}
