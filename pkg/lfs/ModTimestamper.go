// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"context"
	"time"

	"github.com/spf13/afero"

	"github.com/navwar/dindex/pkg/fs"
)

// ModTimestamper uses the modification time as the creation time.
// It is used for filesystems that are not backed by the operating system.
type ModTimestamper struct {
	fs *LocalFileSystem
}

func (mt *ModTimestamper) CreationTime(ctx context.Context, path string) (time.Time, error) {
	fi, err := mt.fs.Lstat(ctx, path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

func NewModTimestamper(lfs *LocalFileSystem) *ModTimestamper {
	return &ModTimestamper{fs: lfs}
}

// NewDefaultTimestamper returns the timestamper suited to the filesystem.
func NewDefaultTimestamper(lfs *LocalFileSystem) fs.Timestamper {
	if _, ok := lfs.fs.(*afero.OsFs); ok {
		return BirthTimestamper{}
	}
	return NewModTimestamper(lfs)
}
