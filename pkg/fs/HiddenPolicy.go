// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"strings"
)

// HiddenPolicy decides whether a directory entry is hidden.
type HiddenPolicy interface {
	IsHidden(name string, path string) (bool, error)
}

// DotPrefixHiddenPolicy treats names beginning with a dot as hidden.
type DotPrefixHiddenPolicy struct{}

func (DotPrefixHiddenPolicy) IsHidden(name string, path string) (bool, error) {
	return strings.HasPrefix(name, "."), nil
}
