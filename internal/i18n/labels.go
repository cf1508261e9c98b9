package i18n

import "resume-renderer/internal/model"

var sectionTitles = map[model.SectionID]label{
	model.SectionIdentity:     {"المعلومات الشخصية", "Personal details"},
	model.SectionObjective:    {"الهدف الوظيفي", "Objective"},
	model.SectionExperience:   {"الخبرات العملية", "Experience"},
	model.SectionEducation:    {"التعليم", "Education"},
	model.SectionSkills:       {"المهارات", "Skills"},
	model.SectionLanguages:    {"اللغات", "Languages"},
	model.SectionCourses:      {"الدورات التدريبية", "Courses"},
	model.SectionAchievements: {"الإنجازات", "Achievements"},
	model.SectionHobbies:      {"الهوايات", "Hobbies"},
	model.SectionReferences:   {"المراجع", "References"},
}

// SectionTitle returns the heading of a built-in section. Custom sections
// carry their own titles and resolve to "".
func SectionTitle(lang model.Language, id model.SectionID) string {
	if l, ok := sectionTitles[id]; ok {
		return l.in(lang)
	}
	return ""
}

type Key string

const (
	Present          Key = "present"
	GeneralCategory  Key = "general"
	Email            Key = "email"
	Phone            Key = "phone"
	Address          Key = "address"
	Responsibilities Key = "responsibilities"
	Achievements     Key = "achievements"
	Reading          Key = "reading"
	Writing          Key = "writing"
	Speaking         Key = "speaking"
	Listening        Key = "listening"
	Relationship     Key = "relationship"
)

var labels = map[Key]label{
	Present:          {"حتى الآن", "Present"},
	GeneralCategory:  {"عام", "General"},
	Email:            {"البريد الإلكتروني", "Email"},
	Phone:            {"الهاتف", "Phone"},
	Address:          {"العنوان", "Address"},
	Responsibilities: {"المسؤوليات", "Responsibilities"},
	Achievements:     {"الإنجازات", "Achievements"},
	Reading:          {"القراءة", "Reading"},
	Writing:          {"الكتابة", "Writing"},
	Speaking:         {"المحادثة", "Speaking"},
	Listening:        {"الاستماع", "Listening"},
	Relationship:     {"العلاقة", "Relationship"},
}

// Label returns a localized UI label; unknown keys resolve to the key itself.
func Label(lang model.Language, k Key) string {
	if l, ok := labels[k]; ok {
		return l.in(lang)
	}
	return string(k)
}
