package render

import (
	"strings"

	"github.com/google/uuid"

	"resume-renderer/internal/i18n"
	"resume-renderer/internal/model"
	"resume-renderer/internal/style"
)

// Each renderer returns (nil, false) when its slice holds nothing worth
// rendering; placeholder rows are filtered before that decision.

func Objective(text string, c Context) (*Block, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	b := section(model.SectionObjective, i18n.SectionTitle(c.lang(), model.SectionObjective))
	b.Items = []Item{{Nodes: []Node{c.paragraph(style.RoleBody, text)}}}
	return b, true
}

func Experience(entries []model.Experience, c Context) (*Block, bool) {
	entries = model.ValidOnly(entries)
	if len(entries) == 0 {
		return nil, false
	}
	b := section(model.SectionExperience, i18n.SectionTitle(c.lang(), model.SectionExperience))
	for _, e := range entries {
		nodes := []Node{
			row(c.text(style.RoleItemTitle, e.Title), c.text(style.RoleDate, DateRange(c.lang(), e.StartDate, e.EndDate, e.Ongoing))),
		}
		if sub := joinNonBlank(" · ", e.Organization, e.Location); sub != "" {
			nodes = append(nodes, c.text(style.RoleItemSubtitle, sub))
		}
		nodes = c.appendDetails(nodes, e.Description, e.Responsibilities, e.Achievements)
		b.Items = append(b.Items, Item{Nodes: nodes})
	}
	return b, true
}

func Education(entries []model.Education, c Context) (*Block, bool) {
	entries = model.ValidOnly(entries)
	if len(entries) == 0 {
		return nil, false
	}
	b := section(model.SectionEducation, i18n.SectionTitle(c.lang(), model.SectionEducation))
	for _, e := range entries {
		nodes := []Node{
			row(c.text(style.RoleItemTitle, e.Degree), c.text(style.RoleDate, DateRange(c.lang(), e.StartDate, e.EndDate, e.Ongoing))),
		}
		if sub := joinNonBlank(" · ", e.Institution, e.Location); sub != "" {
			nodes = append(nodes, c.text(style.RoleItemSubtitle, sub))
		}
		nodes = c.appendDetails(nodes, e.Description, nil, e.Achievements)
		b.Items = append(b.Items, Item{Nodes: nodes})
	}
	return b, true
}

// appendDetails adds the free-text description and the labeled
// responsibility/achievement lists of a dated entry.
func (c Context) appendDetails(nodes []Node, description string, responsibilities, achievements []string) []Node {
	if strings.TrimSpace(description) != "" {
		nodes = append(nodes, c.paragraph(style.RoleBody, description))
	}
	if list, ok := bullets(responsibilities); ok {
		nodes = append(nodes, c.text(style.RoleCategory, i18n.Label(c.lang(), i18n.Responsibilities)), list)
	}
	if list, ok := bullets(achievements); ok {
		nodes = append(nodes, c.text(style.RoleCategory, i18n.Label(c.lang(), i18n.Achievements)), list)
	}
	return nodes
}

type SkillGroup struct {
	Name   string
	Skills []model.Skill
}

// GroupSkills groups skills by category in order of first occurrence.
// Skills without a category join the localized general group, the same
// group as an explicit "General" category.
func GroupSkills(skills []model.Skill, lang model.Language) []SkillGroup {
	var groups []SkillGroup
	index := map[string]int{}
	for _, s := range skills {
		cat := strings.TrimSpace(s.Category)
		if cat == "" {
			cat = i18n.Label(lang, i18n.GeneralCategory)
		}
		k := strings.ToLower(cat)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, SkillGroup{Name: cat})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

func Skills(skills []model.Skill, c Context) (*Block, bool) {
	skills = model.ValidOnly(skills)
	if len(skills) == 0 {
		return nil, false
	}
	b := section(model.SectionSkills, i18n.SectionTitle(c.lang(), model.SectionSkills))
	groups := GroupSkills(skills, c.lang())
	if len(groups) == 1 {
		for _, s := range groups[0].Skills {
			b.Items = append(b.Items, Item{Nodes: c.skillNodes(s)})
		}
		return b, true
	}
	for _, g := range groups {
		nodes := []Node{c.text(style.RoleCategory, g.Name)}
		for _, s := range g.Skills {
			nodes = append(nodes, c.skillNodes(s)...)
		}
		b.Items = append(b.Items, Item{Nodes: nodes})
	}
	return b, true
}

func (c Context) skillNodes(s model.Skill) []Node {
	nodes := []Node{row(c.text(style.RoleSkillName, s.Name), c.text(style.RoleLevel, i18n.SkillLevel(c.lang(), s.Level)))}
	if p, ok := i18n.SkillPercent(s.Level); ok {
		nodes = append(nodes, Node{Kind: KindBar, Role: style.RoleBarFill, Percent: p})
	}
	return nodes
}

func Languages(entries []model.LanguageEntry, c Context) (*Block, bool) {
	entries = model.ValidOnly(entries)
	if len(entries) == 0 {
		return nil, false
	}
	b := section(model.SectionLanguages, i18n.SectionTitle(c.lang(), model.SectionLanguages))
	for _, l := range entries {
		nodes := []Node{row(c.text(style.RoleSkillName, l.Name), c.text(style.RoleLevel, i18n.LanguageLevel(c.lang(), l.Level)))}
		if !l.Skills.Empty() {
			axes := []struct {
				key   i18n.Key
				level string
			}{
				{i18n.Reading, l.Skills.Reading},
				{i18n.Writing, l.Skills.Writing},
				{i18n.Speaking, l.Skills.Speaking},
				{i18n.Listening, l.Skills.Listening},
			}
			var rows [][]string
			for _, a := range axes {
				if strings.TrimSpace(a.level) == "" {
					continue
				}
				rows = append(rows, []string{i18n.Label(c.lang(), a.key), i18n.AxisLevel(c.lang(), a.level)})
			}
			if len(rows) > 0 {
				nodes = append(nodes, Node{Kind: KindTable, Role: style.RoleTable, Rows: rows})
			}
		}
		b.Items = append(b.Items, Item{Nodes: nodes})
	}
	return b, true
}

func Courses(entries []model.Course, c Context) (*Block, bool) {
	entries = model.ValidOnly(entries)
	if len(entries) == 0 {
		return nil, false
	}
	b := section(model.SectionCourses, i18n.SectionTitle(c.lang(), model.SectionCourses))
	for _, e := range entries {
		nodes := []Node{row(c.text(style.RoleItemTitle, e.Name), c.text(style.RoleDate, e.Date))}
		if strings.TrimSpace(e.Provider) != "" {
			nodes = append(nodes, c.text(style.RoleItemSubtitle, e.Provider))
		}
		if strings.TrimSpace(e.Description) != "" {
			nodes = append(nodes, c.paragraph(style.RoleBody, e.Description))
		}
		b.Items = append(b.Items, Item{Nodes: nodes})
	}
	return b, true
}

func Achievements(entries []model.Achievement, c Context) (*Block, bool) {
	entries = model.ValidOnly(entries)
	if len(entries) == 0 {
		return nil, false
	}
	b := section(model.SectionAchievements, i18n.SectionTitle(c.lang(), model.SectionAchievements))
	for _, e := range entries {
		nodes := []Node{row(c.text(style.RoleItemTitle, e.Title), c.text(style.RoleDate, e.Date))}
		if strings.TrimSpace(e.Description) != "" {
			nodes = append(nodes, c.paragraph(style.RoleBody, e.Description))
		}
		b.Items = append(b.Items, Item{Nodes: nodes})
	}
	return b, true
}

func Hobbies(entries []model.Hobby, c Context) (*Block, bool) {
	entries = model.ValidOnly(entries)
	if len(entries) == 0 {
		return nil, false
	}
	b := section(model.SectionHobbies, i18n.SectionTitle(c.lang(), model.SectionHobbies))
	for _, h := range entries {
		level := ""
		if strings.TrimSpace(h.Level) != "" {
			level = i18n.HobbyLevel(c.lang(), h.Level)
		}
		nodes := []Node{row(c.text(style.RoleItemTitle, h.Name), c.text(style.RoleLevel, level))}
		if strings.TrimSpace(h.Description) != "" {
			nodes = append(nodes, c.paragraph(style.RoleBody, h.Description))
		}
		b.Items = append(b.Items, Item{Nodes: nodes})
	}
	return b, true
}

func References(entries []model.Reference, c Context) (*Block, bool) {
	entries = model.ValidOnly(entries)
	if len(entries) == 0 {
		return nil, false
	}
	b := section(model.SectionReferences, i18n.SectionTitle(c.lang(), model.SectionReferences))
	for _, r := range entries {
		nodes := []Node{c.text(style.RoleItemTitle, r.Name)}
		if sub := joinNonBlank(" · ", r.Position, r.Company); sub != "" {
			nodes = append(nodes, c.text(style.RoleItemSubtitle, sub))
		}
		if strings.TrimSpace(r.Relationship) != "" {
			nodes = append(nodes, c.text(style.RoleBody, i18n.Label(c.lang(), i18n.Relationship)+": "+strings.TrimSpace(r.Relationship)))
		}
		if contact := joinNonBlank(" · ", r.Email, r.Phone); contact != "" {
			nodes = append(nodes, c.text(style.RoleContact, contact))
		}
		b.Items = append(b.Items, Item{Nodes: nodes})
	}
	return b, true
}

// Custom renders a user-authored section by content type. Unknown types
// render nothing.
func Custom(cs model.CustomSection, c Context) (*Block, bool) {
	if cs.ID == uuid.Nil {
		return nil, false
	}
	switch cs.Type {
	case model.ContentText, model.ContentList, model.ContentTable:
		if !cs.HasContent() {
			return nil, false
		}
	}
	b := section(model.CustomSectionID(cs.ID), strings.TrimSpace(cs.Title))
	switch cs.Type {
	case model.ContentText:
		b.Items = []Item{{Nodes: []Node{c.paragraph(style.RoleBody, cs.Text)}}}
	case model.ContentList:
		list, _ := bullets(cs.Items)
		b.Items = []Item{{Nodes: []Node{list}}}
	case model.ContentTable:
		b.Items = []Item{{Nodes: []Node{{Kind: KindTable, Role: style.RoleTable, Rows: cs.Rows}}}}
	default:
		c.logger().Debug("render: skipping custom section with unknown type", "id", cs.ID, "type", cs.Type)
		return nil, false
	}
	return b, true
}
