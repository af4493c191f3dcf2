// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"golang.org/x/sys/windows"

	"github.com/navwar/dindex/pkg/fs"
)

// AttributeHiddenPolicy treats entries with the hidden file attribute as hidden.
type AttributeHiddenPolicy struct{}

func (AttributeHiddenPolicy) IsHidden(name string, path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}
	attributes, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, err
	}
	return attributes&windows.FILE_ATTRIBUTE_HIDDEN != 0, nil
}

// DefaultHiddenPolicy returns the hidden policy of the host platform.
func DefaultHiddenPolicy() fs.HiddenPolicy {
	return AttributeHiddenPolicy{}
}
