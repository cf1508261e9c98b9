// Package typography resolves font family, text direction and alignment for
// a target language.
package typography

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"

	"resume-renderer/internal/model"
)

type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

const (
	ArabicFamily = "Cairo"
	LatinFamily  = "Roboto"
)

// Bundle is shared by every style and renderer of one render pass.
type Bundle struct {
	Lang       model.Language
	FontFamily string
	Direction  Direction
	Align      Align
}

// Start is the CSS logical side where lines begin.
func (b Bundle) Start() string { return string(b.Align) }

// End is the opposite side of Start.
func (b Bundle) End() string {
	if b.Align == AlignRight {
		return string(AlignLeft)
	}
	return string(AlignRight)
}

var englishBase, _ = language.English.Base()

// Resolve maps a language tag to its bundle. Tags carrying a region or
// script (en-US, en-Latn) resolve by base language; anything that is not
// English falls back to Arabic.
func Resolve(tag string) Bundle {
	if isEnglish(tag) {
		return Bundle{Lang: model.English, FontFamily: LatinFamily, Direction: LTR, Align: AlignLeft}
	}
	return Bundle{Lang: model.Arabic, FontFamily: ArabicFamily, Direction: RTL, Align: AlignRight}
}

func isEnglish(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	t, err := language.Parse(tag)
	if err != nil {
		return false
	}
	base, conf := t.Base()
	return conf != language.No && base == englishBase
}

// DirectionOf returns the direction of the first strongly directional rune
// in s, or "" when s has none (digits, punctuation, blanks).
func DirectionOf(s string) Direction {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		if size == 0 {
			_, size = utf8.DecodeRuneInString(s)
		}
		switch p.Class() {
		case bidi.L:
			return LTR
		case bidi.R, bidi.AL:
			return RTL
		}
		s = s[size:]
	}
	return ""
}

// RunDirection returns the direction a text run needs to be isolated with,
// or "" when it already flows with the bundle's base direction.
func (b Bundle) RunDirection(s string) Direction {
	d := DirectionOf(s)
	if d == "" || d == b.Direction {
		return ""
	}
	return d
}
