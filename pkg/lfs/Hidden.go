//go:build !windows

// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"github.com/navwar/dindex/pkg/fs"
)

// DefaultHiddenPolicy returns the hidden policy of the host platform.
// Outside of windows, names beginning with a dot are hidden.
func DefaultHiddenPolicy() fs.HiddenPolicy {
	return fs.DotPrefixHiddenPolicy{}
}
