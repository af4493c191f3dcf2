// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"time"
)

type ScanInput struct {
	Directory    string // absolute path of the directory to scan
	FileSystem   FileSystem
	IgnoreList   IgnoreList
	ShowHidden   bool
	HiddenPolicy HiddenPolicy
	Timestamper  Timestamper
	Location     *time.Location // zone attached to creation dates
	Logger       Logger
}
