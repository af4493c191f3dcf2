// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package index

import (
	"time"

	"github.com/spf13/afero"

	"github.com/navwar/dindex/pkg/fs"
	"github.com/navwar/dindex/pkg/lfs"
)

type RunInput struct {
	Configuration *Configuration
	FileSystem    *lfs.LocalFileSystem
	HiddenPolicy  fs.HiddenPolicy
	Timestamper   fs.Timestamper
	// Template
	TemplateFileSystem afero.Fs
	TemplateName       string
	// Stylesheet
	StylesheetFileSystem       afero.Fs
	StylesheetName             string
	PreserveStylesheetMetadata bool
	//
	Version string
	Logger  fs.Logger
	Now     func() time.Time
}
