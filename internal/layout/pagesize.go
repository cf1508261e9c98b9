package layout

import "strings"

// PageSize dimensions are in points (1" = 72pt).
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	A4     = PageSize{Name: "A4", Width: 595.28, Height: 841.89} // 210mm x 297mm
	Letter = PageSize{Name: "Letter", Width: 612, Height: 792}   // 8.5" x 11"
)

// PageSizeByName resolves a preset name case-insensitively. The empty name
// selects A4.
func PageSizeByName(name string) (PageSize, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "a4":
		return A4, true
	case "letter":
		return Letter, true
	}
	return PageSize{}, false
}

// WidthInches and HeightInches are used by print backends that take paper
// dimensions in inches.
func (p PageSize) WidthInches() float64  { return p.Width / 72 }
func (p PageSize) HeightInches() float64 { return p.Height / 72 }
