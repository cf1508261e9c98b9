package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/document.schema.json
var documentSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(documentSchema)

const ReasonNoContent = "at least one content section required"

// ValidateJSON validates a raw document payload against the embedded
// document schema. Returned reasons are empty when the payload is valid.
func ValidateJSON(raw []byte) ([]string, error) {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if res.Valid() {
		return nil, nil
	}
	reasons := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		reasons = append(reasons, e.String())
	}
	return reasons, nil
}

// Precheck decides whether a document is exportable. Each violated rule
// contributes one human-readable reason.
func Precheck(d *Document) []string {
	var reasons []string
	if d == nil || d.Identity == nil {
		return []string{"identity is required", ReasonNoContent}
	}
	id := d.Identity
	if !notBlank(id.FirstName) {
		reasons = append(reasons, "first name is required")
	}
	if !notBlank(id.LastName) {
		reasons = append(reasons, "last name is required")
	}
	if !notBlank(id.Email) {
		reasons = append(reasons, "email is required")
	}
	if !d.HasContent() {
		reasons = append(reasons, ReasonNoContent)
	}
	return reasons
}

// HasContent reports whether the objective or any built-in content
// section carries at least one valid entry. Custom sections alone do not
// make a document exportable.
func (d *Document) HasContent() bool {
	return strings.TrimSpace(d.Objective) != "" ||
		len(ValidOnly(d.Experience)) > 0 ||
		len(ValidOnly(d.Education)) > 0 ||
		len(ValidOnly(d.Skills)) > 0 ||
		len(ValidOnly(d.Languages)) > 0 ||
		len(ValidOnly(d.Courses)) > 0 ||
		len(ValidOnly(d.Achievements)) > 0 ||
		len(ValidOnly(d.Hobbies)) > 0 ||
		len(ValidOnly(d.References)) > 0
}
