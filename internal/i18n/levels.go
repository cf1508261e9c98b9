// Package i18n holds the one set of localized label tables consulted by
// every section renderer and every export path.
package i18n

import (
	"strings"

	"resume-renderer/internal/model"
)

type label struct{ ar, en string }

func (l label) in(lang model.Language) string {
	if lang == model.English {
		return l.en
	}
	return l.ar
}

var skillLevels = map[string]label{
	"beginner":     {"مبتدئ", "Beginner"},
	"intermediate": {"متوسط", "Intermediate"},
	"good":         {"جيد", "Good"},
	"very-good":    {"جيد جداً", "Very good"},
	"excellent":    {"ممتاز", "Excellent"},
}

var skillPercent = map[string]int{
	"beginner":     20,
	"intermediate": 40,
	"good":         60,
	"very-good":    80,
	"excellent":    100,
}

// languageLevels mixes the descriptive scale with CEFR codes.
var languageLevels = map[string]label{
	"beginner":           {"مبتدئ", "Beginner"},
	"elementary":         {"أساسي", "Elementary"},
	"intermediate":       {"متوسط", "Intermediate"},
	"upper-intermediate": {"فوق المتوسط", "Upper intermediate"},
	"advanced":           {"متقدم", "Advanced"},
	"fluent":             {"طلاقة", "Fluent"},
	"native":             {"اللغة الأم", "Native"},
	"a1":                 {"A1 - مبتدئ", "A1 - Beginner"},
	"a2":                 {"A2 - أساسي", "A2 - Elementary"},
	"b1":                 {"B1 - متوسط", "B1 - Intermediate"},
	"b2":                 {"B2 - فوق المتوسط", "B2 - Upper intermediate"},
	"c1":                 {"C1 - متقدم", "C1 - Advanced"},
	"c2":                 {"C2 - إتقان", "C2 - Proficient"},
}

var axisLevels = map[string]label{
	"poor":      {"ضعيف", "Poor"},
	"fair":      {"مقبول", "Fair"},
	"good":      {"جيد", "Good"},
	"excellent": {"ممتاز", "Excellent"},
}

var hobbyLevels = map[string]label{
	"beginner":     {"مبتدئ", "Beginner"},
	"intermediate": {"متوسط", "Intermediate"},
	"advanced":     {"متقدم", "Advanced"},
	"expert":       {"خبير", "Expert"},
}

func key(code string) string {
	k := strings.ToLower(strings.TrimSpace(code))
	return strings.ReplaceAll(strings.ReplaceAll(k, "_", "-"), " ", "-")
}

func lookup(table map[string]label, lang model.Language, code string) string {
	if l, ok := table[key(code)]; ok {
		return l.in(lang)
	}
	return code
}

// SkillLevel returns the localized skill level label; unknown codes are
// returned verbatim.
func SkillLevel(lang model.Language, code string) string {
	return lookup(skillLevels, lang, code)
}

// SkillPercent maps a skill level to the width of its bar indicator.
func SkillPercent(code string) (int, bool) {
	p, ok := skillPercent[key(code)]
	return p, ok
}

func LanguageLevel(lang model.Language, code string) string {
	return lookup(languageLevels, lang, code)
}

func AxisLevel(lang model.Language, code string) string {
	return lookup(axisLevels, lang, code)
}

func HobbyLevel(lang model.Language, code string) string {
	return lookup(hobbyLevels, lang, code)
}
