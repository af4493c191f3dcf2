// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

// Package assets contains the default page template and stylesheet.
package assets

import (
	"embed"

	"github.com/spf13/afero"
)

const (
	IndexTemplate = "templates/index.html"
	Stylesheet    = "style.css"
)

//go:embed templates/index.html style.css
var files embed.FS

// Fs returns the embedded assets as a read-only filesystem.
func Fs() afero.Fs {
	return afero.FromIOFS{FS: files}
}
