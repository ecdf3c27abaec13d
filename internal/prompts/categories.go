package prompts

// RecognizedCategories is the category set offered by default. Free-form
// category ids are still accepted everywhere; this list only seeds settings
// and UI pickers.
var RecognizedCategories = []string{
	"general", "coding", "writing", "analysis",
	"creative", "translation", "education", "business",
}

var categoryNamesEN = map[string]string{
	"all":         "All",
	"general":     "General",
	"coding":      "Coding",
	"writing":     "Writing",
	"analysis":    "Analysis",
	"creative":    "Creative",
	"translation": "Translation",
	"education":   "Education",
	"business":    "Business",
	"marketing":   "Marketing",
	"research":    "Research",
}

var categoryNamesAR = map[string]string{
	"all":         "الكل",
	"general":     "عام",
	"coding":      "برمجة",
	"writing":     "كتابة",
	"analysis":    "تحليل",
	"creative":    "إبداعي",
	"translation": "ترجمة",
	"education":   "تعليم",
	"business":    "أعمال",
}

// CategoryName returns a display label for a category id in the given
// language, falling back to the English label and finally to the raw id.
func CategoryName(lang, id string) string {
	if lang == "ar" {
		if name, ok := categoryNamesAR[id]; ok {
			return name
		}
	}
	if name, ok := categoryNamesEN[id]; ok {
		return name
	}
	return id
}
