package usecase

import (
	"bytes"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"resume-renderer/internal/model"
)

// Artifact is the product of one render. Preview and download read the
// same PDF bytes.
type Artifact struct {
	Key      string
	Filename string
	Pages    int
	PageSize string
	HTML     []byte
	PDF      []byte
}

// WriteTo streams the PDF, as for a download.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.PDF)
	return int64(n), err
}

// Reader exposes the PDF for inline preview.
func (a *Artifact) Reader() io.Reader { return bytes.NewReader(a.PDF) }

// GenerateFilename derives the default file name (without extension) as
// first[_last][_jobTitle]_Resume. Anything that is not a Latin or Arabic
// letter, a digit, or one of "._-" becomes an underscore.
func GenerateFilename(id *model.Identity) string {
	parts := make([]string, 0, 4)
	if id != nil {
		for _, p := range []string{id.FirstName, id.LastName, id.JobTitle} {
			if s := strings.TrimSpace(p); s != "" {
				parts = append(parts, sanitize(s))
			}
		}
	}
	parts = append(parts, "Resume")
	return strings.Join(parts, "_")
}

func sanitize(s string) string {
	s = norm.NFC.String(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			b.WriteRune(r)
		case unicode.IsLetter(r) && (unicode.Is(unicode.Latin, r) || unicode.Is(unicode.Arabic, r)):
			b.WriteRune(r)
		case unicode.Is(unicode.Arabic, r) && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
