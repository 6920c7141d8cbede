package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

//go:embed templates
var embedded embed.FS

const (
	extension = ".html"
	layoutDir = "layouts"
	// contentBlock is the block each page defines and layouts include
	contentBlock = "content"
)

// DefaultLayout is the layout pages render inside unless told otherwise
const DefaultLayout = "main"

// Options configures an Engine
type Options struct {
	// FS holds the templates; defaults to the embedded templates directory
	FS fs.FS
	// Minify minifies the rendered HTML
	Minify bool
	// Funcs are added on top of the sprig functions
	Funcs template.FuncMap
}

// Engine renders html/template pages for Fiber. It implements fiber.Views.
type Engine struct {
	fsys     fs.FS
	funcs    template.FuncMap
	minifier *minify.M

	mu      sync.RWMutex
	loaded  bool
	pages   map[string]*template.Template
	layouts []string
}

// New creates a template engine
func New(opts Options) *Engine {
	fsys := opts.FS
	if fsys == nil {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			panic(err)
		}
		fsys = sub
	}

	funcs := sprig.FuncMap()
	for name, fn := range opts.Funcs {
		funcs[name] = fn
	}

	e := &Engine{
		fsys:  fsys,
		funcs: funcs,
	}
	if opts.Minify {
		e.minifier = minify.New()
		e.minifier.Add("text/html", &minhtml.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
		})
	}
	return e
}

// Load parses every page together with every layout
func (e *Engine) Load() error {
	var layouts, pages []string
	err := fs.WalkDir(e.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != extension {
			return nil
		}
		if strings.HasPrefix(p, layoutDir+"/") {
			layouts = append(layouts, p)
		} else {
			pages = append(pages, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk templates: %w", err)
	}

	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := strings.TrimSuffix(page, extension)
		files := append(append([]string{}, layouts...), page)

		tmpl, err := template.New(name).Funcs(e.funcs).ParseFS(e.fsys, files...)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		parsed[name] = tmpl
	}

	layoutNames := make([]string, 0, len(layouts))
	for _, l := range layouts {
		layoutNames = append(layoutNames, strings.TrimSuffix(path.Base(l), extension))
	}

	e.mu.Lock()
	e.pages = parsed
	e.layouts = layoutNames
	e.loaded = true
	e.mu.Unlock()
	return nil
}

// Loaded reports whether templates have been parsed
func (e *Engine) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loaded
}

// Pages returns the names of the parsed pages
func (e *Engine) Pages() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.pages))
	for name := range e.pages {
		names = append(names, name)
	}
	return names
}

// Render executes page name with binding. With a layout the layout template
// is executed and includes the page through the content block.
func (e *Engine) Render(out io.Writer, name string, binding interface{}, layout ...string) error {
	if !e.Loaded() {
		if err := e.Load(); err != nil {
			return err
		}
	}

	e.mu.RLock()
	tmpl, ok := e.pages[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("template %s does not exist", name)
	}

	entry := contentBlock
	if len(layout) > 0 && layout[0] != "" {
		entry = layout[0]
		if tmpl.Lookup(entry) == nil {
			return fmt.Errorf("layout %s does not exist", entry)
		}
	}

	if e.minifier == nil {
		return tmpl.ExecuteTemplate(out, entry, binding)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, entry, binding); err != nil {
		return err
	}
	return e.minifier.Minify("text/html", out, &buf)
}
