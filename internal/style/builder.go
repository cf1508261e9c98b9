package style

import (
	"resume-renderer/internal/model"
	"resume-renderer/internal/typography"
)

// IdentityAccent is the decorative border of the identity block. It is part
// of the product's look and does not follow the theme's border color.
const IdentityAccent = "#C9A227"

// PointsPerMM converts millimetres to points.
const PointsPerMM = 72 / 25.4

const (
	// NarrowFraction and WideFraction split the content width between the
	// two columns; the remainder is the gutter.
	NarrowFraction = 0.32
	WideFraction   = 0.64
)

const baseUnit = 8.0

var densityScale = map[model.Density]float64{
	model.DensityCompact: 0.75,
	model.DensityNormal:  1,
	model.DensityRelaxed: 1.25,
}

var shadows = map[model.Shadow]string{
	model.ShadowNone:   "",
	model.ShadowLight:  "0 1pt 2pt rgba(0,0,0,0.08)",
	model.ShadowMedium: "0 2pt 4pt rgba(0,0,0,0.12)",
	model.ShadowHeavy:  "0 4pt 8pt rgba(0,0,0,0.18)",
}

func fontStack(primary, themed string) []string {
	out := []string{primary}
	if themed != "" && themed != primary {
		out = append(out, themed)
	}
	return append(out, "sans-serif")
}

// Build derives every named style from the theme and the typography bundle.
// Fonts, direction and alignment come from the bundle; colors, spacing and
// radii come from the theme.
func Build(theme model.Theme, b typography.Bundle) *Sheet {
	t := theme.Normalized()
	unit := baseUnit * densityScale[t.Layout.Spacing]
	sizes := t.Fonts.Sizes
	c := t.Colors
	body := fontStack(b.FontFamily, t.Fonts.Body)
	heading := fontStack(b.FontFamily, t.Fonts.Heading)
	dir := string(b.Direction)
	align := string(b.Align)
	shadow := shadows[t.Style.Shadow]
	radius := t.Style.Radius

	text := func(fam []string, size float64, weight int, color string) Style {
		return Style{FontFamily: fam, FontSize: size, FontWeight: weight, Color: color, Direction: dir, Align: align, LineHeight: 1.4}
	}

	s := map[Role]Style{}
	page := text(body, sizes.Base, 400, c.Text)
	page.Background = c.Background
	s[RolePage] = page

	header := Style{
		Direction:    dir,
		Align:        align,
		Padding:      unit,
		MarginBottom: unit * 1.5,
		Radius:       radius,
		BorderColor:  IdentityAccent,
		BorderWidth:  1.5,
		Shadow:       shadow,
	}
	name := text(heading, sizes.Heading*1.8, 700, c.Primary)
	name.LineHeight = 1.2
	jobTitle := text(heading, sizes.Heading, 500, c.Secondary)
	contact := text(body, sizes.Small, 400, c.Text)
	switch t.Style.Header {
	case model.HeaderBanner:
		header.Background = c.Primary
		header.BorderSide = "bottom"
		header.BorderWidth = 3
		name.Color = c.Background
		jobTitle.Color = c.Background
		contact.Color = c.Background
	case model.HeaderMinimal:
		header.BorderSide = "bottom"
		header.Radius = 0
		header.Shadow = ""
		header.Padding = unit / 2
	}
	s[RoleHeader] = header
	s[RoleName] = name
	s[RoleJobTitle] = jobTitle
	s[RoleContact] = contact
	s[RolePhoto] = Style{Height: 72, Radius: radius * 2, BorderColor: IdentityAccent, BorderWidth: 1.5}

	link := text(body, sizes.Small, 400, c.Accent)
	s[RoleLink] = link

	s[RoleIdentityDetails] = Style{
		Direction:    dir,
		Align:        align,
		Background:   c.Background,
		BorderColor:  c.Border,
		BorderWidth:  1,
		Radius:       radius,
		Padding:      unit,
		MarginBottom: unit * 1.5,
		Shadow:       shadow,
	}

	s[RoleColumns] = Style{Direction: dir}
	s[RoleColumnNarrow] = Style{Direction: dir, Align: align, Width: "32%"}
	s[RoleColumnWide] = Style{Direction: dir, Align: align, Width: "64%"}
	if t.Layout.Columns == 1 {
		s[RoleColumnNarrow] = Style{Direction: dir, Align: align, Width: "100%"}
		s[RoleColumnWide] = Style{Direction: dir, Align: align, Width: "100%"}
	}

	s[RoleSection] = Style{MarginBottom: unit * 1.5}
	title := text(heading, sizes.Heading, 700, c.Primary)
	title.MarginBottom = unit * 0.75
	title.BorderColor = c.Accent
	title.BorderWidth = 1
	title.BorderSide = "bottom"
	title.LineHeight = 1.3
	s[RoleSectionTitle] = title

	s[RoleItem] = Style{MarginBottom: unit}
	s[RoleItemTitle] = text(body, sizes.Base*1.1, 600, c.Text)
	s[RoleItemSubtitle] = text(body, sizes.Base, 400, c.Secondary)
	s[RoleDate] = text(body, sizes.Small, 400, c.Secondary)
	s[RoleBody] = text(body, sizes.Base, 400, c.Text)
	s[RoleBulletList] = Style{Direction: dir, Align: align, MarginTop: unit / 4}
	s[RoleBullet] = text(body, sizes.Base, 400, c.Text)

	category := text(heading, sizes.Small*1.1, 600, c.Secondary)
	category.MarginTop = unit / 2
	s[RoleCategory] = category
	s[RoleSkillName] = text(body, sizes.Base, 400, c.Text)
	s[RoleLevel] = text(body, sizes.Small, 400, c.Secondary)
	s[RoleBarTrack] = Style{Background: c.Border, Height: 4, Radius: radius / 2, MarginTop: 2, Width: "100%"}
	s[RoleBarFill] = Style{Background: c.Primary, Height: 4, Radius: radius / 2}

	s[RoleTable] = Style{Direction: dir, Align: align, BorderColor: c.Border, BorderWidth: 0.75, Width: "100%"}
	cell := text(body, sizes.Small, 400, c.Text)
	cell.Padding = unit / 3
	cell.BorderColor = c.Border
	cell.BorderWidth = 0.75
	s[RoleTableCell] = cell

	m := t.Layout.Margins
	return &Sheet{
		styles:  s,
		columns: t.Layout.Columns,
		margins: [4]float64{m.Top * PointsPerMM, m.Right * PointsPerMM, m.Bottom * PointsPerMM, m.Left * PointsPerMM},
	}
}
