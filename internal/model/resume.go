package model

// Go models for the resume document record handed over by the form and
// persistence layers. The record is read-only input to rendering.

import (
	"strings"

	"github.com/google/uuid"
)

type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

type Document struct {
	ID             uuid.UUID       `json:"id,omitempty"`
	Identity       *Identity       `json:"identity"`
	Objective      string          `json:"objective,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Languages      []LanguageEntry `json:"languages,omitempty"`
	Hobbies        []Hobby         `json:"hobbies,omitempty"`
	Courses        []Course        `json:"courses,omitempty"`
	Achievements   []Achievement   `json:"achievements,omitempty"`
	References     []Reference     `json:"references,omitempty"`
	CustomSections []CustomSection `json:"customSections,omitempty"`
	Presentation   Presentation    `json:"presentation"`
}

type Identity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Photo     *Photo `json:"photo,omitempty"`
	Links     []Link `json:"links,omitempty"`
}

// FullName joins first and last name, skipping blanks.
func (i *Identity) FullName() string {
	if i == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(i.FirstName) + " " + strings.TrimSpace(i.LastName))
}

// Photo is either raw image bytes or an embedded data: URI.
type Photo struct {
	Data    []byte `json:"data,omitempty"`
	DataURI string `json:"dataUri,omitempty"`
}

type Link struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url"`
}

type Experience struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Organization     string    `json:"organization"`
	Location         string    `json:"location,omitempty"`
	StartDate        string    `json:"startDate,omitempty"`
	EndDate          string    `json:"endDate,omitempty"`
	Ongoing          bool      `json:"ongoing,omitempty"`
	Description      string    `json:"description,omitempty"`
	Responsibilities []string  `json:"responsibilities,omitempty"`
	Achievements     []string  `json:"achievements,omitempty"`
}

func (e Experience) Valid() bool {
	return e.ID != uuid.Nil && (notBlank(e.Title) || notBlank(e.Organization))
}

type Education struct {
	ID           uuid.UUID `json:"id"`
	Degree       string    `json:"degree"`
	Institution  string    `json:"institution"`
	Location     string    `json:"location,omitempty"`
	StartDate    string    `json:"startDate,omitempty"`
	EndDate      string    `json:"endDate,omitempty"`
	Ongoing      bool      `json:"ongoing,omitempty"`
	Description  string    `json:"description,omitempty"`
	Achievements []string  `json:"achievements,omitempty"`
}

func (e Education) Valid() bool {
	return e.ID != uuid.Nil && (notBlank(e.Degree) || notBlank(e.Institution))
}

type Skill struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
	Level    string    `json:"level,omitempty"`
}

func (s Skill) Valid() bool { return s.ID != uuid.Nil && notBlank(s.Name) }

type LanguageEntry struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Level  string          `json:"level,omitempty"`
	Skills *LanguageSkills `json:"skills,omitempty"`
}

func (l LanguageEntry) Valid() bool { return l.ID != uuid.Nil && notBlank(l.Name) }

// LanguageSkills holds the four independently leveled axes.
type LanguageSkills struct {
	Reading   string `json:"reading,omitempty"`
	Writing   string `json:"writing,omitempty"`
	Speaking  string `json:"speaking,omitempty"`
	Listening string `json:"listening,omitempty"`
}

func (s *LanguageSkills) Empty() bool {
	return s == nil || (s.Reading == "" && s.Writing == "" && s.Speaking == "" && s.Listening == "")
}

type Hobby struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Level       string    `json:"level,omitempty"`
	Description string    `json:"description,omitempty"`
}

func (h Hobby) Valid() bool { return h.ID != uuid.Nil && notBlank(h.Name) }

type Course struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Provider    string    `json:"provider,omitempty"`
	Date        string    `json:"date,omitempty"`
	Description string    `json:"description,omitempty"`
}

func (c Course) Valid() bool { return c.ID != uuid.Nil && notBlank(c.Name) }

type Achievement struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date,omitempty"`
	Description string    `json:"description,omitempty"`
}

func (a Achievement) Valid() bool { return a.ID != uuid.Nil && notBlank(a.Title) }

type Reference struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship,omitempty"`
	Position     string    `json:"position,omitempty"`
	Company      string    `json:"company,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
}

func (r Reference) Valid() bool { return r.ID != uuid.Nil && notBlank(r.Name) }

type Presentation struct {
	Theme    Theme       `json:"theme"`
	Language Language    `json:"language,omitempty"`
	Order    []SectionID `json:"sectionOrder,omitempty"`
	Hidden   []SectionID `json:"hiddenSections,omitempty"`
	PageSize string      `json:"pageSize,omitempty"`
}

// ValidOnly filters out placeholder rows that carry no identity or content.
func ValidOnly[T interface{ Valid() bool }](in []T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v.Valid() {
			out = append(out, v)
		}
	}
	return out
}

func notBlank(s string) bool { return strings.TrimSpace(s) != "" }
