// Package htmlout serializes paginated layouts as a self-contained HTML
// document with one fixed-size box per page.
package htmlout

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"resume-renderer/internal/layout"
	"resume-renderer/internal/render"
	"resume-renderer/internal/style"
	"resume-renderer/internal/typography"
)

//go:embed page.gohtml
var pageTemplate string

var tpl = template.Must(template.New("page").Parse(pageTemplate))

type view struct {
	Lang      string
	Dir       string
	Title     string
	PageRules template.CSS
	Pages     []pageView
}

type pageView struct {
	Number       int
	Style        template.CSS
	Header       *headerView
	Single       bool
	ColumnsStyle template.CSS
	NarrowStyle  template.CSS
	WideStyle    template.CSS
	Narrow       []fragmentView
	Wide         []fragmentView
}

type headerView struct {
	Style template.CSS
	Photo *nodeView
	Nodes []nodeView
}

type fragmentView struct {
	Section    string
	Style      template.CSS
	Title      string
	TitleStyle template.CSS
	TitleDir   string
	Items      []itemView
}

type itemView struct {
	Style template.CSS
	Nodes []nodeView
}

type runView struct {
	Text  string
	Dir   string
	Style template.CSS
}

type nodeView struct {
	Kind       string
	Style      template.CSS
	ListStyle  template.CSS
	TrackStyle template.CSS
	Dir        string
	Text       string
	Href       string
	Src        template.URL
	Runs       []runView
	Rows       [][]runView
	Children   []nodeView
}

// Emit renders pages as HTML. The output depends only on its inputs, so
// equal layouts always serialize to equal bytes.
func Emit(pages []layout.Page, sheet *style.Sheet, bundle typography.Bundle, g layout.Geometry, title string) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("htmlout: no pages to emit")
	}
	e := emitter{sheet: sheet, bundle: bundle}
	v := view{
		Lang:      string(bundle.Lang),
		Dir:       string(bundle.Direction),
		Title:     title,
		PageRules: pageRules(g),
	}
	for _, p := range pages {
		v.Pages = append(v.Pages, e.page(p))
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("htmlout: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func pageRules(g layout.Geometry) template.CSS {
	w, h := num(g.Size.Width), num(g.Size.Height)
	var b strings.Builder
	fmt.Fprintf(&b, "@page { size: %spt %spt; margin: 0; } ", w, h)
	b.WriteString("html, body { margin: 0; padding: 0; -webkit-print-color-adjust: exact; print-color-adjust: exact; } ")
	fmt.Fprintf(&b, ".page { box-sizing: border-box; width: %spt; height: %spt; padding: %spt %spt %spt %spt; overflow: hidden; break-after: page; } ",
		w, h, num(g.Top), num(g.Right), num(g.Bottom), num(g.Left))
	b.WriteString(".page:last-child { break-after: auto; } ")
	b.WriteString(".identity { display: flex; align-items: center; gap: 12pt; } ")
	b.WriteString(".columns { display: flex; justify-content: space-between; align-items: flex-start; } ")
	b.WriteString(".row { display: flex; justify-content: space-between; align-items: baseline; gap: 6pt; } ")
	b.WriteString("section, h2, p, ul { margin-left: 0; margin-right: 0; } ")
	b.WriteString("p, h2 { margin-top: 0; } ")
	b.WriteString("ul { padding-inline-start: 12pt; margin-bottom: 0; } ")
	b.WriteString("table { border-collapse: collapse; } ")
	b.WriteString(".photo { object-fit: cover; }")
	return template.CSS(b.String())
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

type emitter struct {
	sheet  *style.Sheet
	bundle typography.Bundle
}

func (e emitter) css(r style.Role) template.CSS { return template.CSS(e.sheet.CSS(r)) }

func (e emitter) page(p layout.Page) pageView {
	pv := pageView{
		Number:       p.Number,
		Style:        e.css(style.RolePage),
		Single:       p.Single,
		ColumnsStyle: e.css(style.RoleColumns),
		NarrowStyle:  e.css(style.RoleColumnNarrow),
		WideStyle:    e.css(style.RoleColumnWide),
	}
	if p.Header != nil {
		pv.Header = e.header(p.Header)
	}
	for _, f := range p.Narrow {
		pv.Narrow = append(pv.Narrow, e.fragment(f))
	}
	for _, f := range p.Wide {
		pv.Wide = append(pv.Wide, e.fragment(f))
	}
	return pv
}

func (e emitter) header(b *render.Block) *headerView {
	hv := &headerView{Style: e.css(b.Role)}
	for _, it := range b.Items {
		for _, n := range it.Nodes {
			if n.Kind == render.KindImage {
				photo := e.node(n)
				hv.Photo = &photo
				continue
			}
			hv.Nodes = append(hv.Nodes, e.node(n))
		}
	}
	return hv
}

func (e emitter) fragment(f layout.Fragment) fragmentView {
	fv := fragmentView{
		Section: string(f.Block.Section),
		Style:   e.css(f.Block.Role),
	}
	if f.ShowTitle && f.Block.Title != "" {
		fv.Title = f.Block.Title
		fv.TitleStyle = e.css(style.RoleSectionTitle)
		fv.TitleDir = string(e.bundle.RunDirection(f.Block.Title))
	}
	for _, it := range f.Items {
		iv := itemView{Style: e.css(style.RoleItem)}
		for _, n := range it.Nodes {
			iv.Nodes = append(iv.Nodes, e.node(n))
		}
		fv.Items = append(fv.Items, iv)
	}
	return fv
}

func (e emitter) run(r style.Role, s string) runView {
	return runView{Text: s, Dir: string(e.bundle.RunDirection(s)), Style: e.css(r)}
}

func (e emitter) node(n render.Node) nodeView {
	nv := nodeView{Style: e.css(n.Role), Dir: string(n.Dir), Text: n.Text}
	switch n.Kind {
	case render.KindText:
		nv.Kind = "text"
		nv.Href = n.Href
	case render.KindParagraph:
		nv.Kind = "para"
	case render.KindRow:
		nv.Kind = "row"
		for _, ch := range n.Children {
			nv.Children = append(nv.Children, e.node(ch))
		}
	case render.KindBullets:
		nv.Kind = "bullets"
		nv.ListStyle = e.css(style.RoleBulletList)
		for _, s := range n.List {
			nv.Runs = append(nv.Runs, e.run(n.Role, s))
		}
	case render.KindBar:
		nv.Kind = "bar"
		nv.TrackStyle = e.css(style.RoleBarTrack)
		pct := min(max(n.Percent, 0), 100)
		nv.Style = template.CSS(e.sheet.CSS(style.RoleBarFill) + " width: " + strconv.Itoa(pct) + "%;")
	case render.KindTable:
		nv.Kind = "table"
		for _, row := range n.Rows {
			cells := make([]runView, 0, len(row))
			for _, c := range row {
				cells = append(cells, e.run(style.RoleTableCell, c))
			}
			nv.Rows = append(nv.Rows, cells)
		}
	case render.KindImage:
		nv.Kind = "image"
		// sources are data URIs re-encoded from a decoded image
		if strings.HasPrefix(n.Src, "data:image/") {
			nv.Src = template.URL(n.Src)
		}
		h := e.sheet.Style(style.RolePhoto).Height
		nv.Style = template.CSS(e.sheet.CSS(style.RolePhoto) + " width: " + num(h) + "pt;")
	}
	return nv
}
