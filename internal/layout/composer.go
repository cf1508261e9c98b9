// Package layout resolves section order, visibility and column placement,
// and paginates the result onto fixed-size pages.
package layout

import (
	"errors"
	"log/slog"

	"resume-renderer/internal/model"
	"resume-renderer/internal/render"
	"resume-renderer/internal/style"
	"resume-renderer/internal/typography"
)

// ErrMissingIdentity rejects a record before any layout work happens.
var ErrMissingIdentity = errors.New("document has no identity")

type Column int

const (
	Narrow Column = iota
	Wide
)

func (c Column) String() string {
	if c == Narrow {
		return "narrow"
	}
	return "wide"
}

// columns is the single table of column membership. Sections that are not
// listed (custom sections) go to the wide column.
var columns = map[model.SectionID]Column{
	model.SectionObjective:    Narrow,
	model.SectionEducation:    Narrow,
	model.SectionSkills:       Narrow,
	model.SectionLanguages:    Narrow,
	model.SectionExperience:   Wide,
	model.SectionCourses:      Wide,
	model.SectionAchievements: Wide,
	model.SectionHobbies:      Wide,
	model.SectionReferences:   Wide,
}

// ColumnOf returns the column a section is placed in.
func ColumnOf(id model.SectionID) Column {
	if c, ok := columns[id]; ok {
		return c
	}
	return Wide
}

// ResolveOrder produces the complete rendering order: stored entries first
// (deduplicated, unknown and hidden ones dropped), then every remaining
// visible canonical section in canonical order.
func ResolveOrder(stored, hidden, canonical []model.SectionID) []model.SectionID {
	known := make(map[model.SectionID]bool, len(canonical))
	for _, id := range canonical {
		known[id] = true
	}
	isHidden := make(map[model.SectionID]bool, len(hidden))
	for _, id := range hidden {
		isHidden[id] = true
	}
	placed := map[model.SectionID]bool{}
	out := make([]model.SectionID, 0, len(canonical))
	add := func(id model.SectionID) {
		if !known[id] || isHidden[id] || placed[id] {
			return
		}
		placed[id] = true
		out = append(out, id)
	}
	for _, id := range stored {
		add(id)
	}
	for _, id := range canonical {
		add(id)
	}
	return out
}

// Plan is the composed, column-partitioned document before pagination.
type Plan struct {
	Order  []model.SectionID
	Header *render.Block
	Narrow []*render.Block
	Wide   []*render.Block
	// Single is true when the theme asks for one column; Narrow content
	// then flows ahead of Wide content in the same column.
	Single bool
}

// Blocks returns every content block in page order (narrow then wide).
func (p *Plan) Blocks() []*render.Block {
	out := make([]*render.Block, 0, len(p.Narrow)+len(p.Wide))
	out = append(out, p.Narrow...)
	return append(out, p.Wide...)
}

type Composer struct {
	logger *slog.Logger
}

func NewComposer(logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{logger: logger}
}

// Compose renders every visible section in resolved order and partitions
// the blocks into columns.
func (c *Composer) Compose(doc *model.Document, sheet *style.Sheet, bundle typography.Bundle) (*Plan, error) {
	if doc == nil || doc.Identity == nil {
		return nil, ErrMissingIdentity
	}
	rc := render.Context{Sheet: sheet, Bundle: bundle, Logger: c.logger}
	p := &Plan{
		Order:  ResolveOrder(doc.Presentation.Order, doc.Presentation.Hidden, doc.CanonicalSections()),
		Single: sheet.Columns() == 1,
	}
	p.Header, _ = render.IdentityHeader(doc.Identity, rc)
	if details, ok := render.IdentityDetails(doc.Identity, rc); ok {
		p.Narrow = append(p.Narrow, details)
	}
	for _, id := range p.Order {
		b, ok := renderSection(doc, id, rc)
		if !ok {
			c.logger.Debug("layout: section has no content", "section", id)
			continue
		}
		if ColumnOf(id) == Narrow {
			p.Narrow = append(p.Narrow, b)
		} else {
			p.Wide = append(p.Wide, b)
		}
	}
	return p, nil
}

func renderSection(doc *model.Document, id model.SectionID, rc render.Context) (*render.Block, bool) {
	switch id {
	case model.SectionObjective:
		return render.Objective(doc.Objective, rc)
	case model.SectionExperience:
		return render.Experience(doc.Experience, rc)
	case model.SectionEducation:
		return render.Education(doc.Education, rc)
	case model.SectionSkills:
		return render.Skills(doc.Skills, rc)
	case model.SectionLanguages:
		return render.Languages(doc.Languages, rc)
	case model.SectionCourses:
		return render.Courses(doc.Courses, rc)
	case model.SectionAchievements:
		return render.Achievements(doc.Achievements, rc)
	case model.SectionHobbies:
		return render.Hobbies(doc.Hobbies, rc)
	case model.SectionReferences:
		return render.References(doc.References, rc)
	}
	if cs, ok := doc.Custom(id); ok {
		return render.Custom(cs, rc)
	}
	return nil, false
}
