// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"encoding/json"
	"time"
)

// DirectoryEntry is an immediate child of the indexed directory.
// Size is in kilobytes and is only known for regular files.
type DirectoryEntry struct {
	name         string
	path         string
	creationDate time.Time
	size         int64
}

func (de *DirectoryEntry) Name() string {
	return de.name
}

func (de *DirectoryEntry) Path() string {
	return de.path
}

func (de *DirectoryEntry) CreationDate() time.Time {
	return de.creationDate
}

// HasSize returns true if the size of the entry has been resolved.
func (de *DirectoryEntry) HasSize() bool {
	return de.size >= 0
}

// Size returns the size in kilobytes, or -1 if the size is unknown.
func (de *DirectoryEntry) Size() int64 {
	return de.size
}

// WithSize returns a copy of the entry with the size set in kilobytes.
func (de *DirectoryEntry) WithSize(size int64) *DirectoryEntry {
	return &DirectoryEntry{
		name:         de.name,
		path:         de.path,
		creationDate: de.creationDate,
		size:         size,
	}
}

func (de *DirectoryEntry) String() string {
	return de.name
}

func (de *DirectoryEntry) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"creationDate": de.creationDate,
		"name":         de.name,
		"path":         de.path,
		"size":         nil,
	}
	if de.HasSize() {
		m["size"] = de.size
	}
	return json.Marshal(m)
}

func NewDirectoryEntry(name string, path string, creationDate time.Time) *DirectoryEntry {
	return &DirectoryEntry{
		name:         name,
		path:         path,
		creationDate: creationDate,
		size:         -1,
	}
}
