// Package style builds the named visual styles of a rendered résumé from a
// theme and a typography bundle.
package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type Role string

const (
	RolePage            Role = "page"
	RoleHeader          Role = "header"
	RoleName            Role = "name"
	RoleJobTitle        Role = "job-title"
	RolePhoto           Role = "photo"
	RoleIdentityDetails Role = "identity-details"
	RoleContact         Role = "contact"
	RoleLink            Role = "link"
	RoleColumns         Role = "columns"
	RoleColumnNarrow    Role = "column-narrow"
	RoleColumnWide      Role = "column-wide"
	RoleSection         Role = "section"
	RoleSectionTitle    Role = "section-title"
	RoleItem            Role = "item"
	RoleItemTitle       Role = "item-title"
	RoleItemSubtitle    Role = "item-subtitle"
	RoleDate            Role = "date"
	RoleBody            Role = "body"
	RoleBulletList      Role = "bullet-list"
	RoleBullet          Role = "bullet"
	RoleCategory        Role = "category"
	RoleSkillName       Role = "skill-name"
	RoleLevel           Role = "level"
	RoleBarTrack        Role = "bar-track"
	RoleBarFill         Role = "bar-fill"
	RoleTable           Role = "table"
	RoleTableCell       Role = "table-cell"
)

// Style is one resolved visual style. Lengths are in points.
type Style struct {
	FontFamily   []string
	FontSize     float64
	FontWeight   int
	LineHeight   float64
	Color        string
	Background   string
	Direction    string
	Align        string
	MarginTop    float64
	MarginBottom float64
	Padding      float64
	Radius       float64
	BorderColor  string
	BorderWidth  float64
	BorderSide   string
	Shadow       string
	Width        string
	Height       float64
}

// LinePitch is the vertical distance between two baselines.
func (s Style) LinePitch() float64 {
	if s.LineHeight > 0 {
		return s.FontSize * s.LineHeight
	}
	return s.FontSize * 1.4
}

// CSS serializes the style as an inline declaration list with
// deterministic property order.
func (s Style) CSS() string {
	decl := map[string]string{}
	if len(s.FontFamily) > 0 {
		fams := make([]string, 0, len(s.FontFamily))
		for _, f := range s.FontFamily {
			if f == "sans-serif" || f == "serif" {
				fams = append(fams, f)
				continue
			}
			fams = append(fams, "'"+strings.ReplaceAll(f, "'", "")+"'")
		}
		decl["font-family"] = strings.Join(fams, ", ")
	}
	if s.FontSize > 0 {
		decl["font-size"] = pt(s.FontSize)
	}
	if s.FontWeight > 0 {
		decl["font-weight"] = strconv.Itoa(s.FontWeight)
	}
	if s.LineHeight > 0 {
		decl["line-height"] = strconv.FormatFloat(s.LineHeight, 'f', -1, 64)
	}
	set := func(k, v string) {
		if v != "" {
			decl[k] = v
		}
	}
	set("color", s.Color)
	set("background", s.Background)
	set("direction", s.Direction)
	set("text-align", s.Align)
	set("width", s.Width)
	set("box-shadow", s.Shadow)
	if s.MarginTop > 0 {
		decl["margin-top"] = pt(s.MarginTop)
	}
	if s.MarginBottom > 0 {
		decl["margin-bottom"] = pt(s.MarginBottom)
	}
	if s.Padding > 0 {
		decl["padding"] = pt(s.Padding)
	}
	if s.Radius > 0 {
		decl["border-radius"] = pt(s.Radius)
	}
	if s.Height > 0 {
		decl["height"] = pt(s.Height)
	}
	if s.BorderWidth > 0 && s.BorderColor != "" {
		prop := "border"
		if s.BorderSide != "" {
			prop = "border-" + s.BorderSide
		}
		decl[prop] = fmt.Sprintf("%s solid %s", pt(s.BorderWidth), s.BorderColor)
	}
	keys := make([]string, 0, len(decl))
	for k := range decl {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(decl[k])
		b.WriteByte(';')
	}
	return b.String()
}

func pt(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "pt"
}

// Sheet is an immutable role → style map.
type Sheet struct {
	styles  map[Role]Style
	columns int
	margins [4]float64
}

// Style returns the style of a role. Unknown roles resolve to the body style.
func (s *Sheet) Style(r Role) Style {
	if st, ok := s.styles[r]; ok {
		return st
	}
	return s.styles[RoleBody]
}

// CSS is shorthand for Style(r).CSS().
func (s *Sheet) CSS(r Role) string { return s.Style(r).CSS() }

// Columns is the number of content columns of the page grid (1 or 2).
func (s *Sheet) Columns() int { return s.columns }

// Margins returns the page insets in points: top, right, bottom, left.
func (s *Sheet) Margins() (top, right, bottom, left float64) {
	return s.margins[0], s.margins[1], s.margins[2], s.margins[3]
}
