// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"sort"
	"strings"
)

const (
	IndexFileName      = "index.html"
	StylesheetFileName = "style.css"
)

// IgnoreList is a set of entry names that are never indexed.
type IgnoreList map[string]struct{}

func (l IgnoreList) Contains(name string) bool {
	_, ok := l[name]
	return ok
}

// Names returns the names in the list in lexicographical order.
func (l IgnoreList) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewIgnoreList returns an ignore list with the given names.
// Blank names are dropped.  Other names are kept exactly as given.
func NewIgnoreList(names ...string) IgnoreList {
	l := IgnoreList{}
	for _, name := range names {
		if len(strings.TrimSpace(name)) > 0 {
			l[name] = struct{}{}
		}
	}
	return l
}

// DefaultIgnoreList returns an ignore list that protects the generated files.
func DefaultIgnoreList() IgnoreList {
	return NewIgnoreList(IndexFileName, StylesheetFileName)
}
