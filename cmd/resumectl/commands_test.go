package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{
	"identity": {"firstName": "سارة", "lastName": "علي", "email": "sara@example.com"},
	"objective": "اختبار البرمجيات",
	"experience": [{"id": "0d5a4c4e-8f1b-4b8e-9a55-3a8f3b7f0a01", "title": "مهندسة جودة", "organization": "Acme", "startDate": "2020-01", "ongoing": true}],
	"presentation": {"language": "ar"}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, _, err := execute(t, "validate", writeFile(t, "sara.json", doc))
	require.NoError(t, err)
	assert.Contains(t, out, "sara.json: valid")
}

func TestValidateCommandReportsReasons(t *testing.T) {
	path := writeFile(t, "empty.json", `{"identity": {"firstName": "Sara", "lastName": "Ali", "email": "s@example.com"}}`)
	_, stderr, err := execute(t, "validate", path)
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, stderr, "at least one content section required")
}

func TestRenderHTMLCommand(t *testing.T) {
	t.Setenv("PAGE_SIZE", "")
	src := writeFile(t, "sara.json", doc)
	out := filepath.Join(t.TempDir(), "preview.html")

	stdout, _, err := execute(t, "render", src, "--html", "--page-size", "letter", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 pages, Letter")

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(html), `dir="rtl"`))
	assert.Contains(t, string(html), "حتى الآن")
}

func TestRenderCommandRequiresFile(t *testing.T) {
	_, _, err := execute(t, "render")
	assert.Error(t, err)

	_, _, err = execute(t, "render", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading document")
}
