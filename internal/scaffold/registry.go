// Package scaffold holds the file templates of generated projects.
//
// Each template is an embedded file with a YAML frontmatter header naming the
// project-relative output path, an optional octal file mode and the write
// order:
//
//	---
//	path: server.py
//	mode: "0755"
//	order: 4
//	---
//	#!/usr/bin/env python3
//	...
//
// Bodies are text/template sources executed with Data and the sprig
// function map.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/adrg/frontmatter"

	"github.com/jakoblorz/go-mcpc/internal/models"
)

//go:embed templates
var embedded embed.FS

const defaultMode fs.FileMode = 0644

// Template is a parsed scaffold file
type Template struct {
	// Name is the template file name inside its language directory
	Name string
	// Path is the project-relative output path, slash separated
	Path  string
	Mode  fs.FileMode
	Order int

	tmpl *template.Template
}

// File is a rendered template ready to be written
type File struct {
	Path    string
	Mode    fs.FileMode
	Content []byte
}

type header struct {
	Path  string `yaml:"path"`
	Mode  string `yaml:"mode"`
	Order int    `yaml:"order"`
}

// Registry holds the templates of every language
type Registry struct {
	templates map[models.Language][]*Template
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry parsed from the embedded templates
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			defaultErr = err
			return
		}
		defaultRegistry, defaultErr = Load(sub)
	})
	return defaultRegistry, defaultErr
}

// Load parses templates from fsys. Every language has a directory named
// after it (python/, typescript/) containing *.tmpl files.
func Load(fsys fs.FS) (*Registry, error) {
	r := &Registry{templates: make(map[models.Language][]*Template)}

	for _, language := range models.Languages() {
		dir := language.String()
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s templates: %w", language, err)
		}

		seen := make(map[string]string)
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
				continue
			}

			data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
			}

			t, err := Parse(entry.Name(), data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", language, err)
			}
			if other, ok := seen[t.Path]; ok {
				return nil, fmt.Errorf("%s: templates %s and %s both write %s", language, other, t.Name, t.Path)
			}
			seen[t.Path] = t.Name

			r.templates[language] = append(r.templates[language], t)
		}

		sort.SliceStable(r.templates[language], func(i, j int) bool {
			a, b := r.templates[language][i], r.templates[language][j]
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.Path < b.Path
		})
	}

	return r, nil
}

// Parse parses a single template file with its frontmatter header
func Parse(name string, data []byte) (*Template, error) {
	var h header
	rest, err := frontmatter.Parse(bytes.NewReader(data), &h)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter of %s: %w", name, err)
	}

	if strings.TrimSpace(h.Path) == "" {
		return nil, fmt.Errorf("template %s has no path", name)
	}
	clean := path.Clean(h.Path)
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return nil, fmt.Errorf("template %s writes outside the project: %s", name, h.Path)
	}

	mode := defaultMode
	if h.Mode != "" {
		m, err := strconv.ParseUint(h.Mode, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid mode %q in template %s: %w", h.Mode, name, err)
		}
		mode = fs.FileMode(m)
	}

	body := bytes.TrimLeft(rest, "\r\n")
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	return &Template{
		Name:  name,
		Path:  clean,
		Mode:  mode,
		Order: h.Order,
		tmpl:  tmpl,
	}, nil
}

// Templates returns the templates of a language in write order
func (r *Registry) Templates(language models.Language) []*Template {
	out := make([]*Template, len(r.templates[language]))
	copy(out, r.templates[language])
	return out
}

// Render executes every template of a language in write order
func (r *Registry) Render(language models.Language, data Data) ([]File, error) {
	templates := r.Templates(language)
	if len(templates) == 0 {
		return nil, fmt.Errorf("no templates for language %s", language)
	}

	files := make([]File, 0, len(templates))
	for _, t := range templates {
		content, err := t.Render(data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: t.Path, Mode: t.Mode, Content: content})
	}
	return files, nil
}

// Render executes the template with data
func (t *Template) Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", t.Path, err)
	}
	return buf.Bytes(), nil
}
