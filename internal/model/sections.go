package model

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

type SectionID string

const (
	SectionIdentity     SectionID = "identity"
	SectionObjective    SectionID = "objective"
	SectionExperience   SectionID = "experience"
	SectionEducation    SectionID = "education"
	SectionSkills       SectionID = "skills"
	SectionLanguages    SectionID = "languages"
	SectionCourses      SectionID = "courses"
	SectionAchievements SectionID = "achievements"
	SectionHobbies      SectionID = "hobbies"
	SectionReferences   SectionID = "references"

	customPrefix = "custom:"
)

// builtinOrder is the default sequence of orderable built-in sections.
// Identity is pinned to the top of the first page and is not orderable.
var builtinOrder = []SectionID{
	SectionExperience,
	SectionEducation,
	SectionObjective,
	SectionSkills,
	SectionLanguages,
	SectionCourses,
	SectionAchievements,
	SectionHobbies,
	SectionReferences,
}

// CustomSectionID returns the section identifier of a user-defined section.
func CustomSectionID(id uuid.UUID) SectionID {
	return SectionID(customPrefix + id.String())
}

// IsCustom reports whether the id names a user-defined section.
func (id SectionID) IsCustom() bool {
	return strings.HasPrefix(string(id), customPrefix)
}

// CanonicalSections lists every orderable section of the document: the
// built-in ones followed by the custom sections in record order.
func (d *Document) CanonicalSections() []SectionID {
	out := make([]SectionID, 0, len(builtinOrder)+len(d.CustomSections))
	out = append(out, builtinOrder...)
	seen := map[SectionID]bool{}
	for _, cs := range d.CustomSections {
		if cs.ID == uuid.Nil {
			continue
		}
		id := CustomSectionID(cs.ID)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Custom returns the custom section with the given section id.
func (d *Document) Custom(id SectionID) (CustomSection, bool) {
	for _, cs := range d.CustomSections {
		if cs.ID != uuid.Nil && CustomSectionID(cs.ID) == id {
			return cs, true
		}
	}
	return CustomSection{}, false
}

type ContentType string

const (
	ContentText  ContentType = "text"
	ContentList  ContentType = "list"
	ContentTable ContentType = "table"
)

// CustomSection is a user-authored section. Exactly one of Text, Items or
// Rows is populated, selected by Type. Unknown types keep the raw tag and
// carry no payload.
type CustomSection struct {
	ID    uuid.UUID
	Title string
	Type  ContentType
	Text  string
	Items []string
	Rows  [][]string
}

type customSectionJSON struct {
	ID      uuid.UUID       `json:"id"`
	Title   string          `json:"title"`
	Type    ContentType     `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
}

func (c *CustomSection) UnmarshalJSON(b []byte) error {
	var raw customSectionJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = CustomSection{ID: raw.ID, Title: raw.Title, Type: raw.Type}
	if len(raw.Content) == 0 || string(raw.Content) == "null" {
		return nil
	}
	// a payload that does not match its tag is treated as empty content
	switch raw.Type {
	case ContentText:
		_ = json.Unmarshal(raw.Content, &c.Text)
	case ContentList:
		_ = json.Unmarshal(raw.Content, &c.Items)
	case ContentTable:
		_ = json.Unmarshal(raw.Content, &c.Rows)
	}
	return nil
}

func (c CustomSection) MarshalJSON() ([]byte, error) {
	out := customSectionJSON{ID: c.ID, Title: c.Title, Type: c.Type}
	var payload any
	switch c.Type {
	case ContentText:
		payload = c.Text
	case ContentList:
		payload = c.Items
	case ContentTable:
		payload = c.Rows
	}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		out.Content = b
	}
	return json.Marshal(out)
}

// HasContent reports whether the section carries a renderable payload for a
// known content type.
func (c CustomSection) HasContent() bool {
	switch c.Type {
	case ContentText:
		return notBlank(c.Text)
	case ContentList:
		for _, it := range c.Items {
			if notBlank(it) {
				return true
			}
		}
	case ContentTable:
		for _, row := range c.Rows {
			for _, cell := range row {
				if notBlank(cell) {
					return true
				}
			}
		}
	}
	return false
}

func (c CustomSection) Valid() bool { return c.ID != uuid.Nil && c.HasContent() }
