// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

// IndexResult holds the entries of a directory partitioned into
// directories and regular files, each sorted by creation date descending.
type IndexResult struct {
	Files []*DirectoryEntry
	Dirs  []*DirectoryEntry
}

// Len returns the total number of entries.
func (r *IndexResult) Len() int {
	return len(r.Files) + len(r.Dirs)
}
