// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package render

import (
	"html/template"
	"time"

	"github.com/navwar/dindex/pkg/fs"
)

type RenderInput struct {
	Result      *fs.IndexResult
	Version     string
	Title       string
	GeneratedAt time.Time
	Readme      template.HTML // rendered header, may be empty
}

// page is the data bound to the template.
type page struct {
	Files       []*fs.DirectoryEntry
	Dirs        []*fs.DirectoryEntry
	Version     string
	Title       string
	GeneratedAt time.Time
	Readme      template.HTML
}
