package model

import (
	"regexp"
	"strings"
)

var (
	hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	fontName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]{0,63}$`)
)

// namedColors are the CSS keywords a theme may use besides hex values.
var namedColors = map[string]bool{
	"black": true, "white": true, "gray": true, "grey": true, "silver": true,
	"red": true, "maroon": true, "orange": true, "gold": true, "yellow": true,
	"green": true, "olive": true, "teal": true, "navy": true, "blue": true,
	"purple": true, "transparent": true,
}

// IsColor reports whether v is a #RGB or #RRGGBB value or an allowed
// color keyword. Anything else never reaches a style declaration.
func IsColor(v string) bool {
	return hexColor.MatchString(v) || namedColors[strings.ToLower(v)]
}

// IsFontName reports whether v is a plain font family name.
func IsFontName(v string) bool {
	return fontName.MatchString(v)
}

type Theme struct {
	Colors ColorRoles   `json:"colors"`
	Fonts  FontRoles    `json:"fonts"`
	Layout LayoutParams `json:"layout"`
	Style  StyleParams  `json:"style"`
}

type ColorRoles struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Text       string `json:"text,omitempty"`
	Background string `json:"background,omitempty"`
	Border     string `json:"border,omitempty"`
	Accent     string `json:"accent,omitempty"`
}

type FontRoles struct {
	Heading string    `json:"heading,omitempty"`
	Body    string    `json:"body,omitempty"`
	Sizes   FontSizes `json:"sizes"`
}

// FontSizes are in points.
type FontSizes struct {
	Base    float64 `json:"base,omitempty"`
	Heading float64 `json:"heading,omitempty"`
	Small   float64 `json:"small,omitempty"`
}

type Density string

const (
	DensityCompact Density = "compact"
	DensityNormal  Density = "normal"
	DensityRelaxed Density = "relaxed"
)

type LayoutParams struct {
	Columns int     `json:"columns,omitempty"`
	Spacing Density `json:"spacing,omitempty"`
	Margins Margins `json:"margins"`
}

// Margins are in millimetres.
type Margins struct {
	Top    float64 `json:"top,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
}

type Shadow string

const (
	ShadowNone   Shadow = "none"
	ShadowLight  Shadow = "light"
	ShadowMedium Shadow = "medium"
	ShadowHeavy  Shadow = "heavy"
)

type HeaderStyle string

const (
	HeaderClassic HeaderStyle = "classic"
	HeaderBanner  HeaderStyle = "banner"
	HeaderMinimal HeaderStyle = "minimal"
)

type StyleParams struct {
	Radius float64     `json:"radius,omitempty"`
	Shadow Shadow      `json:"shadow,omitempty"`
	Header HeaderStyle `json:"header,omitempty"`
}

// DefaultTheme is the product's stock theme.
func DefaultTheme() Theme {
	return Theme{
		Colors: ColorRoles{
			Primary:    "#1F3A5F",
			Secondary:  "#4A6FA5",
			Text:       "#222222",
			Background: "#FFFFFF",
			Border:     "#D9DEE5",
			Accent:     "#2E86AB",
		},
		Fonts: FontRoles{
			Heading: "Roboto",
			Body:    "Roboto",
			Sizes:   FontSizes{Base: 10, Heading: 13, Small: 8.5},
		},
		Layout: LayoutParams{
			Columns: 2,
			Spacing: DensityNormal,
			Margins: Margins{Top: 12, Right: 12, Bottom: 12, Left: 12},
		},
		Style: StyleParams{Radius: 4, Shadow: ShadowNone, Header: HeaderClassic},
	}
}

// Normalized fills every zero-valued or malformed field from DefaultTheme
// and clamps enumerations to known values.
func (t Theme) Normalized() Theme {
	d := DefaultTheme()
	str := func(v *string, def string, ok func(string) bool) {
		*v = strings.TrimSpace(*v)
		if !ok(*v) {
			*v = def
		}
	}
	num := func(v *float64, def float64) {
		if *v <= 0 {
			*v = def
		}
	}
	str(&t.Colors.Primary, d.Colors.Primary, IsColor)
	str(&t.Colors.Secondary, d.Colors.Secondary, IsColor)
	str(&t.Colors.Text, d.Colors.Text, IsColor)
	str(&t.Colors.Background, d.Colors.Background, IsColor)
	str(&t.Colors.Border, d.Colors.Border, IsColor)
	str(&t.Colors.Accent, d.Colors.Accent, IsColor)
	str(&t.Fonts.Heading, d.Fonts.Heading, IsFontName)
	str(&t.Fonts.Body, d.Fonts.Body, IsFontName)
	num(&t.Fonts.Sizes.Base, d.Fonts.Sizes.Base)
	num(&t.Fonts.Sizes.Heading, d.Fonts.Sizes.Heading)
	num(&t.Fonts.Sizes.Small, d.Fonts.Sizes.Small)
	if t.Layout.Columns != 1 {
		t.Layout.Columns = 2
	}
	switch t.Layout.Spacing {
	case DensityCompact, DensityNormal, DensityRelaxed:
	default:
		t.Layout.Spacing = d.Layout.Spacing
	}
	num(&t.Layout.Margins.Top, d.Layout.Margins.Top)
	num(&t.Layout.Margins.Right, d.Layout.Margins.Right)
	num(&t.Layout.Margins.Bottom, d.Layout.Margins.Bottom)
	num(&t.Layout.Margins.Left, d.Layout.Margins.Left)
	if t.Style.Radius < 0 {
		t.Style.Radius = 0
	}
	switch t.Style.Shadow {
	case ShadowNone, ShadowLight, ShadowMedium, ShadowHeavy:
	default:
		t.Style.Shadow = d.Style.Shadow
	}
	switch t.Style.Header {
	case HeaderClassic, HeaderBanner, HeaderMinimal:
	default:
		t.Style.Header = d.Style.Header
	}
	return t
}
