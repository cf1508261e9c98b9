package layout

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-renderer/internal/model"
	"resume-renderer/internal/render"
	"resume-renderer/internal/style"
	"resume-renderer/internal/typography"
)

func sheetFor(lang string) (*style.Sheet, typography.Bundle) {
	b := typography.Resolve(lang)
	return style.Build(model.DefaultTheme(), b), b
}

func sampleDoc() *model.Document {
	return &model.Document{
		Identity:  &model.Identity{FirstName: "Sara", LastName: "Ali", Email: "sara@example.com", JobTitle: "QA Engineer"},
		Objective: "Ship reliable software.",
		Experience: []model.Experience{
			{ID: uuid.New(), Title: "QA Engineer", Organization: "Acme", StartDate: "2020-01", Ongoing: true},
		},
		Education: []model.Education{{ID: uuid.New(), Degree: "BSc", Institution: "Cairo University"}},
		Skills:    []model.Skill{{ID: uuid.New(), Name: "Go", Level: "good"}},
		Courses:   []model.Course{{ID: uuid.New(), Name: "Testing 101"}},
		Presentation: model.Presentation{
			Language: model.English,
		},
	}
}

func TestScenarioDOrdering(t *testing.T) {
	doc := sampleDoc()
	order := ResolveOrder(
		[]model.SectionID{model.SectionSkills, model.SectionExperience},
		[]model.SectionID{model.SectionSkills},
		doc.CanonicalSections(),
	)
	require.GreaterOrEqual(t, len(order), 2)
	assert.Equal(t, []model.SectionID{model.SectionExperience, model.SectionEducation}, order[:2])
	assert.NotContains(t, order, model.SectionSkills)
}

func TestResolveOrderFallbackTotality(t *testing.T) {
	doc := sampleDoc()
	doc.CustomSections = []model.CustomSection{{ID: uuid.New(), Type: model.ContentText, Text: "x"}}
	canonical := doc.CanonicalSections()
	pool := append(append([]model.SectionID{}, canonical...), "bogus", model.SectionIdentity, "")

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		stored := make([]model.SectionID, rng.Intn(15))
		for j := range stored {
			stored[j] = pool[rng.Intn(len(pool))]
		}
		var hidden []model.SectionID
		for _, id := range pool {
			if rng.Intn(4) == 0 {
				hidden = append(hidden, id)
			}
		}
		order := ResolveOrder(stored, hidden, canonical)

		hiddenSet := map[model.SectionID]bool{}
		for _, h := range hidden {
			hiddenSet[h] = true
		}
		counts := map[model.SectionID]int{}
		for _, id := range order {
			counts[id]++
		}
		for _, id := range canonical {
			if hiddenSet[id] {
				assert.Zero(t, counts[id], "hidden %s placed", id)
			} else {
				assert.Equal(t, 1, counts[id], "section %s", id)
			}
		}
		assert.Zero(t, counts["bogus"])
		assert.Zero(t, counts[model.SectionIdentity])
	}
}

func TestResolveOrderEmptyStoredIsCanonical(t *testing.T) {
	canonical := sampleDoc().CanonicalSections()
	assert.Equal(t, canonical, ResolveOrder(nil, nil, canonical))
}

func TestColumnMembershipIsFixedByCategory(t *testing.T) {
	for _, id := range []model.SectionID{model.SectionObjective, model.SectionEducation, model.SectionSkills, model.SectionLanguages} {
		assert.Equal(t, Narrow, ColumnOf(id), id)
	}
	for _, id := range []model.SectionID{model.SectionExperience, model.SectionCourses, model.SectionAchievements, model.SectionHobbies, model.SectionReferences} {
		assert.Equal(t, Wide, ColumnOf(id), id)
	}
	assert.Equal(t, Wide, ColumnOf(model.CustomSectionID(uuid.New())))
}

func sections(blocks []*render.Block) []model.SectionID {
	out := make([]model.SectionID, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Section)
	}
	return out
}

func TestComposePartitionsAndOrdersWithinColumns(t *testing.T) {
	doc := sampleDoc()
	doc.Presentation.Order = []model.SectionID{model.SectionCourses, model.SectionSkills, model.SectionExperience}
	sheet, bundle := sheetFor("en")

	plan, err := NewComposer(nil).Compose(doc, sheet, bundle)
	require.NoError(t, err)
	require.NotNil(t, plan.Header)
	assert.Equal(t, style.RoleHeader, plan.Header.Role)

	assert.Equal(t, []model.SectionID{
		model.SectionIdentity, model.SectionSkills, model.SectionEducation, model.SectionObjective,
	}, sections(plan.Narrow))
	assert.Equal(t, []model.SectionID{model.SectionCourses, model.SectionExperience}, sections(plan.Wide))
}

func TestComposeHiddenSectionsNeverRender(t *testing.T) {
	doc := sampleDoc()
	doc.Presentation.Hidden = []model.SectionID{model.SectionExperience, model.SectionSkills, model.SectionIdentity}
	sheet, bundle := sheetFor("ar")

	plan, err := NewComposer(nil).Compose(doc, sheet, bundle)
	require.NoError(t, err)
	all := sections(plan.Blocks())
	assert.NotContains(t, all, model.SectionExperience)
	assert.NotContains(t, all, model.SectionSkills)
	// identity is not subject to the hidden set
	assert.NotNil(t, plan.Header)
	assert.Contains(t, all, model.SectionIdentity)
}

func TestComposeSkipsEmptySections(t *testing.T) {
	doc := &model.Document{
		Identity:   &model.Identity{FirstName: "Sara", LastName: "Ali", Email: "s@example.com"},
		Experience: []model.Experience{{ID: uuid.New()}},
		Hobbies:    []model.Hobby{},
	}
	sheet, bundle := sheetFor("en")
	plan, err := NewComposer(nil).Compose(doc, sheet, bundle)
	require.NoError(t, err)
	assert.Empty(t, plan.Wide)
	assert.Equal(t, []model.SectionID{model.SectionIdentity}, sections(plan.Narrow))
	assert.Len(t, plan.Order, len(doc.CanonicalSections()))
}

func TestComposeRejectsMissingIdentity(t *testing.T) {
	sheet, bundle := sheetFor("en")
	_, err := NewComposer(nil).Compose(&model.Document{Objective: "x"}, sheet, bundle)
	assert.ErrorIs(t, err, ErrMissingIdentity)
	_, err = NewComposer(nil).Compose(nil, sheet, bundle)
	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestComposeCustomSections(t *testing.T) {
	doc := sampleDoc()
	keep := model.CustomSection{ID: uuid.New(), Title: "Volunteering", Type: model.ContentList, Items: []string{"Red Crescent"}}
	future := model.CustomSection{ID: uuid.New(), Title: "Chart", Type: "chart"}
	doc.CustomSections = []model.CustomSection{keep, future}
	doc.Presentation.Order = []model.SectionID{model.CustomSectionID(keep.ID)}
	sheet, bundle := sheetFor("en")

	plan, err := NewComposer(nil).Compose(doc, sheet, bundle)
	require.NoError(t, err)
	wide := sections(plan.Wide)
	assert.Equal(t, model.CustomSectionID(keep.ID), wide[0])
	assert.NotContains(t, wide, model.CustomSectionID(future.ID))
	assert.Equal(t, "Volunteering", plan.Wide[0].Title)
	assert.True(t, strings.HasPrefix(string(wide[0]), "custom:"))
}
