// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"sort"
)

// SortByCreationDate sorts entries in place, most recent first.
// Entries with equal creation dates keep their relative order.
func SortByCreationDate(entries []*DirectoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreationDate().After(entries[j].CreationDate())
	})
}
