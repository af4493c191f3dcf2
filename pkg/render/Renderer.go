// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/navwar/dindex/pkg/fs"
	"github.com/navwar/dindex/pkg/ts"
)

type Options struct {
	Layout   ts.Layout
	Location *time.Location // if nil, timestamps keep their own zone
}

// Renderer renders index pages from a template.
type Renderer struct {
	template *template.Template
}

// Render executes the template into memory and returns the document.
// Nothing is returned if the template fails part way through.
func (r *Renderer) Render(input *RenderInput) ([]byte, error) {
	if input.Result == nil {
		return nil, errors.New("error rendering template: result is nil")
	}
	buf := &bytes.Buffer{}
	err := r.template.Execute(buf, &page{
		Files:       input.Result.Files,
		Dirs:        input.Result.Dirs,
		Version:     input.Version,
		Title:       input.Title,
		GeneratedAt: input.GeneratedAt,
		Readme:      input.Readme,
	})
	if err != nil {
		return nil, fmt.Errorf("error rendering template %q: %w", r.template.Name(), err)
	}
	return buf.Bytes(), nil
}

func funcs(options *Options) template.FuncMap {
	layout := ts.ParseLayout(ts.DefaultLayoutName)
	var location *time.Location
	if options != nil {
		if len(options.Layout) > 0 {
			layout = options.Layout
		}
		location = options.Location
	}
	in := func(t time.Time) time.Time {
		if location != nil {
			return t.In(location)
		}
		return t
	}
	return template.FuncMap{
		"date": func(t time.Time) string {
			return layout.Format(in(t))
		},
		"rfc3339": func(t time.Time) string {
			return in(t).Format(time.RFC3339)
		},
		"href": url.PathEscape,
		"kb": func(de *fs.DirectoryEntry) string {
			if !de.HasSize() {
				return ""
			}
			return fmt.Sprintf("%d KB", de.Size())
		},
	}
}

// NewRenderer parses the template with the given name from the source filesystem.
func NewRenderer(source afero.Fs, name string, options *Options) (*Renderer, error) {
	b, err := afero.ReadFile(source, name)
	if err != nil {
		return nil, fmt.Errorf("error reading template %q: %w", name, err)
	}
	t, err := template.New(filepath.Base(name)).Funcs(funcs(options)).Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("error parsing template %q: %w", name, err)
	}
	return &Renderer{template: t}, nil
}
