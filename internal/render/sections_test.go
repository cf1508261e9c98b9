package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-renderer/internal/model"
	"resume-renderer/internal/style"
	"resume-renderer/internal/typography"
)

func ctxFor(lang string) Context {
	b := typography.Resolve(lang)
	return Context{Sheet: style.Build(model.DefaultTheme(), b), Bundle: b}
}

// texts flattens every text payload of a block, in order.
func texts(b *Block) []string {
	var out []string
	var walk func(ns []Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			if n.Text != "" {
				out = append(out, n.Text)
			}
			out = append(out, n.List...)
			for _, r := range n.Rows {
				out = append(out, r...)
			}
			walk(n.Children)
		}
	}
	for _, it := range b.Items {
		walk(it.Nodes)
	}
	return out
}

func dateOf(b *Block, item int) string {
	for _, n := range b.Items[item].Nodes {
		if n.Kind != KindRow {
			continue
		}
		for _, ch := range n.Children {
			if ch.Role == style.RoleDate {
				return ch.Text
			}
		}
	}
	return ""
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "2019-03 — 2021-05", DateRange(model.English, "2019-03", "2021-05", false))
	assert.Equal(t, "2019-03 — Present", DateRange(model.English, "2019-03", "2021-05", true))
	assert.Equal(t, "2019-03", DateRange(model.English, "2019-03", "", false))
	assert.Equal(t, "2019-03 — حتى الآن", DateRange(model.Arabic, "2019-03", "", true))
	assert.Equal(t, "2021", DateRange(model.English, "", "2021", false))
	assert.Equal(t, "", DateRange(model.English, "", "", false))
}

func TestExperienceOngoingNeverShowsEndDate(t *testing.T) {
	c := ctxFor("en")
	b, ok := Experience([]model.Experience{{
		ID: uuid.New(), Title: "Engineer", Organization: "Acme",
		StartDate: "2018-01", EndDate: "2020-01", Ongoing: true,
	}}, c)
	require.True(t, ok)
	date := dateOf(b, 0)
	assert.True(t, strings.HasSuffix(date, "Present"), date)
	assert.NotContains(t, strings.Join(texts(b), "|"), "2020-01")
}

func TestExperienceFiltersPlaceholderRows(t *testing.T) {
	c := ctxFor("en")
	_, ok := Experience([]model.Experience{{ID: uuid.New()}, {Title: "No id"}}, c)
	assert.False(t, ok)

	b, ok := Experience([]model.Experience{
		{ID: uuid.New()},
		{ID: uuid.New(), Organization: "Acme", Responsibilities: []string{"Ship", "  "}},
	}, c)
	require.True(t, ok)
	require.Len(t, b.Items, 1)
	assert.Contains(t, texts(b), "Ship")
	assert.Contains(t, texts(b), "Responsibilities")
}

func TestEmptyAndAbsentSlicesAreEquivalent(t *testing.T) {
	c := ctxFor("ar")
	b1, ok1 := Courses(nil, c)
	b2, ok2 := Courses([]model.Course{}, c)
	assert.Equal(t, b1, b2)
	assert.Equal(t, ok1, ok2)
	_, ok := Objective("   ", c)
	assert.False(t, ok)
}

func TestSkillsGroupedWhenMoreThanOneCategory(t *testing.T) {
	c := ctxFor("en")
	b, ok := Skills([]model.Skill{
		{ID: uuid.New(), Name: "Teamwork", Level: "good"},
		{ID: uuid.New(), Name: "Go", Category: "tech", Level: "excellent"},
	}, c)
	require.True(t, ok)
	require.Len(t, b.Items, 2)
	assert.Equal(t, style.RoleCategory, b.Items[0].Nodes[0].Role)
	assert.Equal(t, "General", b.Items[0].Nodes[0].Text)
	assert.Equal(t, "tech", b.Items[1].Nodes[0].Text)

	var bars []int
	for _, it := range b.Items {
		for _, n := range it.Nodes {
			if n.Kind == KindBar {
				bars = append(bars, n.Percent)
			}
		}
	}
	assert.Equal(t, []int{60, 100}, bars)
}

func TestSkillsFlattenSingleCategory(t *testing.T) {
	c := ctxFor("en")
	b, ok := Skills([]model.Skill{
		{ID: uuid.New(), Name: "Go", Category: "tech", Level: "excellent"},
		{ID: uuid.New(), Name: "SQL", Category: "Tech", Level: "wizard"},
	}, c)
	require.True(t, ok)
	require.Len(t, b.Items, 2)
	for _, it := range b.Items {
		assert.NotEqual(t, style.RoleCategory, it.Nodes[0].Role)
	}
	// unknown level: label verbatim, no bar
	assert.Contains(t, texts(b), "wizard")
	assert.Len(t, b.Items[1].Nodes, 1)
}

func TestGroupSkillsKeepsFirstOccurrenceOrder(t *testing.T) {
	groups := GroupSkills([]model.Skill{
		{Name: "a", Category: "soft"},
		{Name: "b"},
		{Name: "c", Category: "tech"},
		{Name: "d", Category: "soft"},
		{Name: "e", Category: "  "},
	}, model.English)
	require.Len(t, groups, 3)
	assert.Equal(t, "soft", groups[0].Name)
	assert.Equal(t, "General", groups[1].Name)
	assert.Equal(t, "tech", groups[2].Name)
	assert.Len(t, groups[0].Skills, 2)
	assert.Len(t, groups[1].Skills, 2)
}

func TestGroupSkillsMergesExplicitGeneralCategory(t *testing.T) {
	groups := GroupSkills([]model.Skill{
		{Name: "a", Category: "General"},
		{Name: "b"},
		{Name: "c", Category: "tech"},
	}, model.English)
	require.Len(t, groups, 2)
	assert.Equal(t, "General", groups[0].Name)
	assert.Len(t, groups[0].Skills, 2)

	ar := GroupSkills([]model.Skill{{Name: "a"}, {Name: "b", Category: "عام"}}, model.Arabic)
	require.Len(t, ar, 1)
	assert.Equal(t, "عام", ar[0].Name)
}

func TestLanguagesSkipBlankSkillAxes(t *testing.T) {
	b, ok := Languages([]model.LanguageEntry{
		{ID: uuid.New(), Name: "German", Level: "b1", Skills: &model.LanguageSkills{Reading: " ", Writing: "\t"}},
	}, ctxFor("en"))
	require.True(t, ok)
	for _, n := range b.Items[0].Nodes {
		assert.NotEqual(t, KindTable, n.Kind)
	}
}

func TestLanguagesLevelFallback(t *testing.T) {
	c := ctxFor("en")
	b, ok := Languages([]model.LanguageEntry{
		{ID: uuid.New(), Name: "French", Level: "B2"},
		{ID: uuid.New(), Name: "Klingon", Level: "Z9"},
		{ID: uuid.New(), Name: "German", Level: "fluent", Skills: &model.LanguageSkills{Reading: "excellent", Speaking: "meh"}},
	}, c)
	require.True(t, ok)
	all := texts(b)
	assert.Contains(t, all, "B2 - Upper intermediate")
	assert.Contains(t, all, "Z9")
	assert.Contains(t, all, "Reading")
	assert.Contains(t, all, "meh")
	assert.NotContains(t, all, "Writing")
}

func TestHobbyLevelFallback(t *testing.T) {
	c := ctxFor("ar")
	b, ok := Hobbies([]model.Hobby{{ID: uuid.New(), Name: "شطرنج", Level: "grandmaster"}}, c)
	require.True(t, ok)
	assert.Contains(t, texts(b), "grandmaster")
}

func TestCustomSectionDispatch(t *testing.T) {
	c := ctxFor("en")
	text := model.CustomSection{ID: uuid.New(), Title: "Note", Type: model.ContentText, Text: "hello"}
	list := model.CustomSection{ID: uuid.New(), Title: "Tools", Type: model.ContentList, Items: []string{"vim", ""}}
	table := model.CustomSection{ID: uuid.New(), Title: "Grid", Type: model.ContentTable, Rows: [][]string{{"a", "b"}, {"c"}}}
	future := model.CustomSection{ID: uuid.New(), Title: "Chart", Type: "chart", Text: "x"}

	b, ok := Custom(text, c)
	require.True(t, ok)
	assert.Equal(t, KindParagraph, b.Items[0].Nodes[0].Kind)
	assert.Equal(t, model.CustomSectionID(text.ID), b.Section)

	b, ok = Custom(list, c)
	require.True(t, ok)
	assert.Equal(t, []string{"vim"}, b.Items[0].Nodes[0].List)

	b, ok = Custom(table, c)
	require.True(t, ok)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, b.Items[0].Nodes[0].Rows)

	_, ok = Custom(future, c)
	assert.False(t, ok)
	_, ok = Custom(model.CustomSection{ID: uuid.New(), Type: model.ContentList}, c)
	assert.False(t, ok)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestIdentityHeaderPhoto(t *testing.T) {
	c := ctxFor("en")
	raw := pngBytes(t)
	id := &model.Identity{FirstName: "Sara", LastName: "Ali", JobTitle: "QA", Photo: &model.Photo{Data: raw}}
	b, ok := IdentityHeader(id, c)
	require.True(t, ok)
	assert.Equal(t, KindImage, b.Items[0].Nodes[0].Kind)
	assert.True(t, strings.HasPrefix(b.Items[0].Nodes[0].Src, "data:image/png;base64,"))

	id.Photo = &model.Photo{DataURI: "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)}
	b, _ = IdentityHeader(id, c)
	assert.Equal(t, KindImage, b.Items[0].Nodes[0].Kind)
}

func TestIdentityHeaderSkipsBrokenPhoto(t *testing.T) {
	c := ctxFor("en")
	for _, p := range []*model.Photo{
		{Data: []byte("not an image")},
		{DataURI: "https://example.com/me.png"},
		{DataURI: "data:image/png;base64,@@@"},
		{},
	} {
		b, ok := IdentityHeader(&model.Identity{FirstName: "Sara", LastName: "Ali", Photo: p}, c)
		require.True(t, ok)
		for _, n := range b.Items[0].Nodes {
			assert.NotEqual(t, KindImage, n.Kind)
		}
		assert.Equal(t, "Sara Ali", b.Items[0].Nodes[0].Text)
	}
}

func TestIdentityDetails(t *testing.T) {
	c := ctxFor("en")
	b, ok := IdentityDetails(&model.Identity{
		Email: "s@example.com", City: "Cairo",
		Links: []model.Link{{URL: "https://www.linkedin.com/in/sara"}, {URL: ""}},
	}, c)
	require.True(t, ok)
	require.Len(t, b.Items, 3)
	all := texts(b)
	assert.Contains(t, all, "s@example.com")
	assert.Contains(t, all, "Cairo")
	assert.Contains(t, all, "linkedin.com/in/sara")
}

func TestLinkLabel(t *testing.T) {
	assert.Equal(t, "github.com/sara", LinkLabel("github.com/sara/"))
	assert.Equal(t, "example.co.uk", LinkLabel("https://blog.example.co.uk"))
}

func TestRunDirectionIsolatesMixedScript(t *testing.T) {
	c := ctxFor("ar")
	b, ok := Experience([]model.Experience{{ID: uuid.New(), Title: "مهندس", Organization: "Google"}}, c)
	require.True(t, ok)
	sub := b.Items[0].Nodes[1]
	assert.Equal(t, "Google", sub.Text)
	assert.Equal(t, typography.LTR, sub.Dir)
}
