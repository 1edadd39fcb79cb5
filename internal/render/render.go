package render

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

// Renderer renders named templates from a directory. Rendering returns an
// explicit error instead of writing partial output to the client, so handlers
// decide the response status after the result is known.
type Renderer struct {
	dir   string
	debug bool
	min   *minify.M
}

// New creates a Renderer rooted at dir. In debug mode templates are reparsed
// on every call so edits show up without a restart; otherwise rendered HTML
// is minified before it is returned.
func New(dir string, debug bool) *Renderer {
	r := &Renderer{dir: dir, debug: debug}

	if !debug {
		r.min = minify.New()
		r.min.AddFunc("text/html", html.Minify)
	}

	return r
}

// Render parses and executes the template at name (a path relative to the
// renderer's directory) with the given data.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	full := filepath.Join(r.dir, filepath.FromSlash(name))

	tmpl, err := template.New(filepath.Base(full)).Funcs(sprig.HtmlFuncMap()).ParseFiles(full)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}

	if r.min == nil {
		return buf.Bytes(), nil
	}

	out, err := r.min.Bytes("text/html", buf.Bytes())
	if err != nil {
		// Serve the unminified page rather than failing the request.
		return buf.Bytes(), nil
	}

	return out, nil
}
