package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-renderer/internal/i18n"
	"resume-renderer/internal/model"
	"resume-renderer/internal/style"
)

// IdentityHeader renders the full-width block at the top of the first page.
// It is rendered for every document that has an identity.
func IdentityHeader(id *model.Identity, c Context) (*Block, bool) {
	if id == nil {
		return nil, false
	}
	var nodes []Node
	if id.Photo != nil {
		if src, err := PhotoSource(id.Photo); err == nil {
			nodes = append(nodes, Node{Kind: KindImage, Role: style.RolePhoto, Src: src})
		} else {
			c.logger().Debug("render: omitting profile photo", "error", err)
		}
	}
	nodes = append(nodes, c.text(style.RoleName, id.FullName()))
	if strings.TrimSpace(id.JobTitle) != "" {
		nodes = append(nodes, c.text(style.RoleJobTitle, id.JobTitle))
	}
	return &Block{
		Section: model.SectionIdentity,
		Role:    style.RoleHeader,
		Items:   []Item{{Nodes: nodes}},
	}, true
}

// IdentityDetails renders the contact block that opens the narrow column.
func IdentityDetails(id *model.Identity, c Context) (*Block, bool) {
	if id == nil {
		return nil, false
	}
	b := &Block{
		Section: model.SectionIdentity,
		Role:    style.RoleIdentityDetails,
		Title:   i18n.SectionTitle(c.lang(), model.SectionIdentity),
	}
	add := func(key i18n.Key, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.Items = append(b.Items, Item{Nodes: []Node{
			c.text(style.RoleLevel, i18n.Label(c.lang(), key)),
			c.text(style.RoleContact, value),
		}})
	}
	add(i18n.Email, id.Email)
	add(i18n.Phone, id.Phone)
	add(i18n.Address, joinNonBlank(", ", id.Address, id.City))
	for _, l := range id.Links {
		if strings.TrimSpace(l.URL) == "" {
			continue
		}
		label := strings.TrimSpace(l.Label)
		if label == "" {
			label = LinkLabel(l.URL)
		}
		n := c.text(style.RoleLink, label)
		n.Href = l.URL
		b.Items = append(b.Items, Item{Nodes: []Node{n}})
	}
	// the block is always present, even when only the heading remains
	return b, true
}

// LinkLabel shortens a URL to its registrable domain for display.
func LinkLabel(raw string) string {
	candidate := strings.TrimSpace(raw)
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	label := strings.TrimPrefix(host, "www.")
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		label = strings.TrimPrefix(etld, "www.")
	}
	if p := strings.Trim(parsed.Path, "/"); p != "" {
		label += "/" + p
	}
	return label
}

var errNoPhoto = errors.New("photo has no data")

// PhotoSource decodes the embedded photo and re-encodes it as a data URI.
// Anything that does not decode as a supported image is an error; callers
// drop the photo and keep rendering.
func PhotoSource(p *model.Photo) (string, error) {
	data := p.Data
	if len(data) == 0 && p.DataURI != "" {
		var err error
		data, err = decodeDataURI(p.DataURI)
		if err != nil {
			return "", err
		}
	}
	if len(data) == 0 {
		return "", errNoPhoto
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func decodeDataURI(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return nil, errors.New("photo reference is not a data URI")
	}
	meta, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}
	if strings.HasSuffix(meta, ";base64") {
		return base64.StdEncoding.DecodeString(payload)
	}
	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return nil, err
	}
	return []byte(unescaped), nil
}
