// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"os"

	"github.com/spf13/afero"
)

type CopyInput struct {
	SourceName            string
	SourceFileSystem      afero.Fs
	DestinationName       string
	DestinationFileSystem afero.Fs
	DestinationPerm       os.FileMode // used when metadata is not preserved
	PreserveMetadata      bool        // copy permissions and modification time
	Logger                Logger
}
