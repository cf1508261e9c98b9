package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-renderer/internal/model"
	"resume-renderer/internal/typography"
)

func TestBuildDerivesTypographyFromBundle(t *testing.T) {
	sheet := Build(model.DefaultTheme(), typography.Resolve("ar"))

	for _, r := range []Role{RolePage, RoleSectionTitle, RoleItemTitle, RoleDate, RoleBody} {
		st := sheet.Style(r)
		require.NotEmpty(t, st.FontFamily, r)
		assert.Equal(t, typography.ArabicFamily, st.FontFamily[0], r)
		assert.Equal(t, "rtl", st.Direction, r)
		assert.Equal(t, "right", st.Align, r)
	}

	en := Build(model.DefaultTheme(), typography.Resolve("en"))
	assert.Equal(t, "ltr", en.Style(RoleBody).Direction)
	assert.Equal(t, "left", en.Style(RoleBody).Align)
}

func TestBuildDerivesColorsFromTheme(t *testing.T) {
	theme := model.DefaultTheme()
	theme.Colors.Primary = "#AA0000"
	theme.Colors.Border = "#00BB00"
	sheet := Build(theme, typography.Resolve("en"))

	assert.Equal(t, "#AA0000", sheet.Style(RoleSectionTitle).Color)
	assert.Equal(t, "#AA0000", sheet.Style(RoleBarFill).Background)
	assert.Equal(t, "#00BB00", sheet.Style(RoleBarTrack).Background)
	assert.Equal(t, "#00BB00", sheet.Style(RoleIdentityDetails).BorderColor)
}

func TestIdentityBorderIgnoresThemeBorder(t *testing.T) {
	theme := model.DefaultTheme()
	theme.Colors.Border = "#123456"
	for _, h := range []model.HeaderStyle{model.HeaderClassic, model.HeaderBanner, model.HeaderMinimal} {
		theme.Style.Header = h
		sheet := Build(theme, typography.Resolve("en"))
		assert.Equal(t, IdentityAccent, sheet.Style(RoleHeader).BorderColor, h)
	}
}

func TestBuildFillsMissingThemeFields(t *testing.T) {
	sheet := Build(model.Theme{}, typography.Resolve("en"))
	d := model.DefaultTheme()

	assert.Equal(t, d.Colors.Text, sheet.Style(RoleBody).Color)
	assert.Equal(t, d.Fonts.Sizes.Base, sheet.Style(RoleBody).FontSize)
	assert.Equal(t, 2, sheet.Columns())
	top, _, _, left := sheet.Margins()
	assert.InDelta(t, 12*PointsPerMM, top, 0.001)
	assert.InDelta(t, 12*PointsPerMM, left, 0.001)
}

func TestDensityScalesSpacing(t *testing.T) {
	theme := model.DefaultTheme()
	theme.Layout.Spacing = model.DensityCompact
	compact := Build(theme, typography.Resolve("en")).Style(RoleSection).MarginBottom
	theme.Layout.Spacing = model.DensityRelaxed
	relaxed := Build(theme, typography.Resolve("en")).Style(RoleSection).MarginBottom
	assert.Less(t, compact, relaxed)
}

func TestStyleCSSIsDeterministic(t *testing.T) {
	sheet := Build(model.DefaultTheme(), typography.Resolve("en"))
	css := sheet.CSS(RoleSectionTitle)
	assert.Equal(t, css, sheet.CSS(RoleSectionTitle))
	assert.True(t, strings.HasPrefix(css, "border-bottom: 1.00pt solid"), css)
	assert.Contains(t, css, "font-family: 'Roboto', sans-serif;")
}

func TestUnknownRoleFallsBackToBody(t *testing.T) {
	sheet := Build(model.DefaultTheme(), typography.Resolve("en"))
	assert.Equal(t, sheet.Style(RoleBody), sheet.Style(Role("nope")))
}

func TestCacheKeyedByThemeAndLanguage(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	theme := model.DefaultTheme()
	a := c.Sheet(theme, typography.Resolve("ar"))
	assert.Same(t, a, c.Sheet(theme, typography.Resolve("ar")))
	assert.NotSame(t, a, c.Sheet(theme, typography.Resolve("en")))

	theme.Colors.Primary = "#000000"
	assert.NotSame(t, a, c.Sheet(theme, typography.Resolve("ar")))
	assert.Equal(t, 3, c.Len())

	var nilCache *Cache
	assert.NotNil(t, nilCache.Sheet(theme, typography.Resolve("ar")))
}

func TestBuildNeverEmitsThemeInjection(t *testing.T) {
	theme := model.DefaultTheme()
	theme.Colors.Primary = "red; background-image: url(http://169.254.169.254/latest/meta-data/)"
	theme.Colors.Border = "#000; x: url(http://10.0.0.1/)"
	theme.Fonts.Body = "Roboto; src: url(http://10.0.0.1/font)"
	sheet := Build(theme, typography.Resolve("en"))

	for _, r := range []Role{RolePage, RoleSectionTitle, RoleBarFill, RoleBarTrack, RoleIdentityDetails, RoleBody} {
		css := sheet.CSS(r)
		assert.NotContains(t, css, "url(", r)
		assert.NotContains(t, css, "169.254", r)
	}
	assert.Equal(t, model.DefaultTheme().Colors.Primary, sheet.Style(RoleSectionTitle).Color)
}
