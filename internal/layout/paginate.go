package layout

import (
	"resume-renderer/internal/render"
	"resume-renderer/internal/style"
)

// Fragment is the part of a block that lands on one page. Items are never
// split; a block is only ever broken between two items.
type Fragment struct {
	Block     *render.Block
	Items     []render.Item
	ShowTitle bool
	Continued bool
}

// Page is one fixed-size output page. Header is set on the first page only.
// In single-column layouts all content flows in Wide and Narrow is empty.
type Page struct {
	Number int
	Header *render.Block
	Narrow []Fragment
	Wide   []Fragment
	Single bool
}

// Geometry is the printable frame of a page, in points.
type Geometry struct {
	Size                     PageSize
	Top, Right, Bottom, Left float64
}

func NewGeometry(size PageSize, sheet *style.Sheet) Geometry {
	t, r, b, l := sheet.Margins()
	return Geometry{Size: size, Top: t, Right: r, Bottom: b, Left: l}
}

func (g Geometry) ContentWidth() float64  { return g.Size.Width - g.Left - g.Right }
func (g Geometry) ContentHeight() float64 { return g.Size.Height - g.Top - g.Bottom }

// Paginate distributes the plan over pages. Each column flows on its own,
// so a long wide column never drags narrow content onto later pages; the
// page count is that of the longest column.
func Paginate(p *Plan, sheet *style.Sheet, g Geometry) []Page {
	m := measurer{sheet: sheet}
	width := g.ContentWidth()
	headerH := m.header(p.Header, width)
	first := g.ContentHeight() - headerH
	full := g.ContentHeight()

	var narrow, wide [][]Fragment
	if p.Single {
		wide = flow(m, p.Blocks(), width, first, full)
	} else {
		narrow = flow(m, p.Narrow, width*style.NarrowFraction, first, full)
		wide = flow(m, p.Wide, width*style.WideFraction, first, full)
	}

	n := max(len(narrow), len(wide), 1)
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = Page{Number: i + 1, Single: p.Single}
		if i < len(narrow) {
			pages[i].Narrow = narrow[i]
		}
		if i < len(wide) {
			pages[i].Wide = wide[i]
		}
	}
	pages[0].Header = p.Header
	return pages
}

// flow packs blocks into successive page-high slots. first is the height
// available on the first page, full the height of every later page.
func flow(m measurer, blocks []*render.Block, width, first, full float64) [][]Fragment {
	var pages [][]Fragment
	var cur []Fragment
	avail := first
	used := 0.0
	breakPage := func() {
		pages = append(pages, cur)
		cur = nil
		avail = full
		used = 0
	}

	for _, b := range blocks {
		inner := m.inner(b, width)
		frag := Fragment{Block: b, ShowTitle: true}
		if len(b.Items) == 0 {
			h := m.chrome(b, width, true)
			if used > 0 && used+h > avail {
				breakPage()
			}
			cur = append(cur, frag)
			used += h
			continue
		}
		for _, it := range b.Items {
			need := m.item(it, inner)
			if len(frag.Items) == 0 {
				need += m.chrome(b, width, frag.ShowTitle)
			}
			if used > 0 && used+need > avail {
				if len(frag.Items) > 0 {
					cur = append(cur, frag)
					frag = Fragment{Block: b, Continued: true}
				}
				breakPage()
				need = m.item(it, inner) + m.chrome(b, width, frag.ShowTitle)
			}
			frag.Items = append(frag.Items, it)
			used += need
		}
		cur = append(cur, frag)
	}
	if len(cur) > 0 {
		pages = append(pages, cur)
	}
	return pages
}
