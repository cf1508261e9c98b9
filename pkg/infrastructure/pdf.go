package infrastructure

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/ledongthuc/pdf"
)

var (
	pdfDate = regexp.MustCompile(`/(?:CreationDate|ModDate)\s*\(D:(\d+)`)
	pdfID   = regexp.MustCompile(`/ID\s*\[\s*<([0-9A-Fa-f]+)>\s*<([0-9A-Fa-f]+)>`)
)

// NormalizePDF zeroes the timestamps and file identifiers Chrome stamps
// into every PDF, so equal HTML prints to equal bytes. Replacements keep
// the byte length, which leaves the xref offsets valid.
func NormalizePDF(b []byte) []byte {
	out := bytes.Clone(b)
	zero := func(re *regexp.Regexp) {
		for _, m := range re.FindAllSubmatchIndex(out, -1) {
			for g := 2; g+1 < len(m); g += 2 {
				for i := m[g]; i < m[g+1]; i++ {
					out[i] = '0'
				}
			}
		}
	}
	zero(pdfDate)
	zero(pdfID)
	return out
}

// CountPages parses the PDF and returns its page count.
func CountPages(b []byte) (int, error) {
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return 0, fmt.Errorf("parse pdf: %w", err)
	}
	return r.NumPage(), nil
}
