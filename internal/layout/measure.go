package layout

import (
	"math"
	"strings"
	"unicode/utf8"

	"resume-renderer/internal/render"
	"resume-renderer/internal/style"
	"resume-renderer/internal/typography"
)

// Glyph advance estimates as a fraction of the font size. Arabic script
// runs wider than Latin at the same size.
const (
	latinAdvance  = 0.5
	arabicAdvance = 0.55
	bulletIndent  = 12.0
)

// measurer estimates the rendered height of blocks from the style sheet.
// Estimates err on the tall side so that a page never overflows in print.
type measurer struct {
	sheet *style.Sheet
}

func (m measurer) lines(text string, fontSize, width float64) int {
	if width <= 0 || fontSize <= 0 {
		return 1
	}
	adv := latinAdvance
	if typography.DirectionOf(text) == typography.RTL {
		adv = arabicAdvance
	}
	perLine := int(math.Floor(width / (fontSize * adv)))
	if perLine < 1 {
		perLine = 1
	}
	total := 0
	for _, para := range strings.Split(text, "\n") {
		n := utf8.RuneCountInString(para)
		l := (n + perLine - 1) / perLine
		if l < 1 {
			l = 1
		}
		total += l
	}
	return total
}

func (m measurer) text(role style.Role, text string, width float64) float64 {
	st := m.sheet.Style(role)
	return float64(m.lines(text, st.FontSize, width))*st.LinePitch() + st.MarginTop + st.MarginBottom
}

func (m measurer) node(n render.Node, width float64) float64 {
	switch n.Kind {
	case render.KindText, render.KindParagraph:
		if n.Text == "" {
			return 0
		}
		return m.text(n.Role, n.Text, width)
	case render.KindBullets:
		h := m.sheet.Style(style.RoleBulletList).MarginTop
		for _, it := range n.List {
			h += m.text(n.Role, it, width-bulletIndent)
		}
		return h
	case render.KindBar:
		track := m.sheet.Style(style.RoleBarTrack)
		return track.Height + track.MarginTop
	case render.KindTable:
		return m.table(n.Rows, width)
	case render.KindImage:
		return m.sheet.Style(style.RolePhoto).Height
	case render.KindRow:
		if len(n.Children) == 0 {
			return 0
		}
		cw := width / float64(len(n.Children))
		h := 0.0
		for _, ch := range n.Children {
			h = math.Max(h, m.node(ch, cw))
		}
		return h
	}
	return 0
}

func (m measurer) table(rows [][]string, width float64) float64 {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	if cols == 0 {
		return 0
	}
	cell := m.sheet.Style(style.RoleTableCell)
	cw := width/float64(cols) - 2*cell.Padding
	h := 0.0
	for _, r := range rows {
		rh := cell.LinePitch()
		for _, c := range r {
			rh = math.Max(rh, float64(m.lines(c, cell.FontSize, cw))*cell.LinePitch())
		}
		h += rh + 2*cell.Padding + cell.BorderWidth
	}
	return h
}

func (m measurer) item(it render.Item, width float64) float64 {
	h := m.sheet.Style(style.RoleItem).MarginBottom
	for _, n := range it.Nodes {
		h += m.node(n, width)
	}
	return h
}

// chrome is the vertical space a block fragment takes besides its items:
// padding and borders of its container, plus the heading when shown.
func (m measurer) chrome(b *render.Block, width float64, withTitle bool) float64 {
	c := m.sheet.Style(b.Role)
	h := 2*c.Padding + c.MarginBottom
	if c.BorderWidth > 0 {
		h += 2 * c.BorderWidth
	}
	if withTitle && b.Title != "" {
		t := m.sheet.Style(style.RoleSectionTitle)
		h += m.text(style.RoleSectionTitle, b.Title, width-2*c.Padding) + t.BorderWidth
	}
	return h
}

// inner is the width available to items inside a block container.
func (m measurer) inner(b *render.Block, width float64) float64 {
	return width - 2*m.sheet.Style(b.Role).Padding
}

// header measures the full-width identity block.
func (m measurer) header(b *render.Block, width float64) float64 {
	if b == nil {
		return 0
	}
	inner := m.inner(b, width)
	photo := 0.0
	textH := 0.0
	for _, it := range b.Items {
		for _, n := range it.Nodes {
			if n.Kind == render.KindImage {
				photo = m.node(n, inner)
				continue
			}
			textH += m.node(n, inner-m.sheet.Style(style.RolePhoto).Height)
		}
	}
	return math.Max(photo, textH) + m.chrome(b, width, false)
}
