// Package render turns document slices into renderable blocks, one
// renderer per content category.
package render

import (
	"log/slog"
	"strings"

	"resume-renderer/internal/i18n"
	"resume-renderer/internal/model"
	"resume-renderer/internal/style"
	"resume-renderer/internal/typography"
)

type Kind int

const (
	KindText Kind = iota
	KindParagraph
	KindBullets
	KindBar
	KindTable
	KindImage
	KindRow
)

// Node is one visual element. Which payload fields matter depends on Kind:
// Text for text and paragraphs, List for bullets, Rows for tables, Percent
// for bars, Src for images, Children for rows. Href marks a text node as a
// hyperlink.
type Node struct {
	Kind     Kind
	Role     style.Role
	Text     string
	Dir      typography.Direction
	List     []string
	Rows     [][]string
	Percent  int
	Src      string
	Href     string
	Children []Node
}

// Item is the unit of pagination: it is never split across pages.
type Item struct {
	Nodes []Node
}

// Block is the rendered form of one section.
type Block struct {
	Section model.SectionID
	Role    style.Role
	Title   string
	Items   []Item
}

// Context carries what every renderer shares within one render pass.
type Context struct {
	Sheet  *style.Sheet
	Bundle typography.Bundle
	Logger *slog.Logger
}

func (c Context) lang() model.Language { return c.Bundle.Lang }

func (c Context) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c Context) text(role style.Role, s string) Node {
	s = strings.TrimSpace(s)
	return Node{Kind: KindText, Role: role, Text: s, Dir: c.Bundle.RunDirection(s)}
}

func (c Context) paragraph(role style.Role, s string) Node {
	s = strings.TrimSpace(s)
	return Node{Kind: KindParagraph, Role: role, Text: s, Dir: c.Bundle.RunDirection(s)}
}

func row(children ...Node) Node {
	kept := children[:0:0]
	for _, ch := range children {
		if ch.Text != "" || ch.Kind != KindText {
			kept = append(kept, ch)
		}
	}
	return Node{Kind: KindRow, Children: kept}
}

func bullets(items []string) (Node, bool) {
	var kept []string
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return Node{}, false
	}
	return Node{Kind: KindBullets, Role: style.RoleBullet, List: kept}, true
}

func section(id model.SectionID, title string) *Block {
	return &Block{Section: id, Role: style.RoleSection, Title: title}
}

// joinNonBlank joins the non-blank parts with sep.
func joinNonBlank(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, sep)
}

// DateRange formats a start/end pair. An ongoing entry always ends with the
// localized "present" label, whatever its stored end marker says.
func DateRange(lang model.Language, start, end string, ongoing bool) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if ongoing {
		end = i18n.Label(lang, i18n.Present)
	}
	switch {
	case start != "" && end != "":
		return start + " — " + end
	case start != "":
		return start
	default:
		return end
	}
}
