// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package index

import (
	"time"

	"github.com/navwar/dindex/pkg/fs"
	"github.com/navwar/dindex/pkg/ts"
)

// Configuration is built once from the command line and does not change during a run.
type Configuration struct {
	InputDir   string // absolute path
	Verbose    bool
	ShowHidden bool
	IgnoreList fs.IgnoreList
	// Presentation
	Title      string
	TimeLayout ts.Layout
	Location   *time.Location // display location, nil keeps the local zone
	Readme     string         // name of a markdown file in the input directory, empty disables
}
