package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(body), 0644))
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "page.html", "<p>Hello {{ .Name }}</p>")

	r := New(dir, true)
	out, err := r.Render("page.html", struct{ Name string }{"World"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello World</p>", string(out))
}

func TestRenderNestedName(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "projects/demo.html", "<h1>{{ .Name }}</h1>")

	r := New(dir, true)
	out, err := r.Render("projects/demo.html", struct{ Name string }{"Demo"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1>Demo</h1>")
}

func TestRenderSprigFuncs(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "page.html", "{{ upper .Name }}")

	r := New(dir, true)
	out, err := r.Render("page.html", struct{ Name string }{"quiet"})
	require.NoError(t, err)
	assert.Equal(t, "QUIET", string(out))
}

func TestRenderMissingTemplate(t *testing.T) {
	r := New(t.TempDir(), true)

	out, err := r.Render("nope.html", nil)
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestRenderExecuteError(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "page.html", `{{ fail "boom" }}`)

	r := New(dir, true)
	_, err := r.Render("page.html", nil)
	assert.Error(t, err)
}

func TestRenderProductionMinifies(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "page.html", "<p>\n    spaced   out\n</p>\n\n<p>more</p>")

	r := New(dir, false)
	out, err := r.Render("page.html", nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "spaced out")
	assert.Less(t, len(out), len("<p>\n    spaced   out\n</p>\n\n<p>more</p>"))
}
