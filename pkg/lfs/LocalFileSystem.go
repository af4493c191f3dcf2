// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/navwar/dindex/pkg/fs"
)

type LocalFileSystem struct {
	fs afero.Fs
}

// Afero returns the underlying afero filesystem.
func (lfs *LocalFileSystem) Afero() afero.Fs {
	return lfs.fs
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (lfs *LocalFileSystem) Join(name ...string) string {
	return filepath.Join(name...)
}

// ReadDir returns the names of the immediate children of the directory.
func (lfs *LocalFileSystem) ReadDir(ctx context.Context, name string) ([]string, error) {
	f, err := lfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	names, err := f.Readdirnames(-1)
	if err != nil {
		_ = f.Close() // silently close directory
		return nil, err
	}
	err = f.Close()
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (lfs *LocalFileSystem) ReadFile(ctx context.Context, name string) ([]byte, error) {
	return afero.ReadFile(lfs.fs, name)
}

// Stat follows symbolic links, so a dangling link returns a not-exist error.
func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFileInfo(fi.Name(), fi.Mode(), fi.ModTime(), fi.Size()), nil
}

// Lstat does not follow symbolic links if the underlying filesystem supports it.
func (lfs *LocalFileSystem) Lstat(ctx context.Context, name string) (fs.FileInfo, error) {
	if lstater, ok := lfs.fs.(afero.Lstater); ok {
		fi, _, err := lstater.LstatIfPossible(name)
		if err != nil {
			return nil, err
		}
		return NewLocalFileInfo(fi.Name(), fi.Mode(), fi.ModTime(), fi.Size()), nil
	}
	return lfs.Stat(ctx, name)
}

func (lfs *LocalFileSystem) WriteFile(ctx context.Context, name string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(lfs.fs, name, data, perm)
}

// NewLocalFileSystem returns a filesystem backed by the operating system.
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{
		fs: afero.NewOsFs(),
	}
}

// NewLocalFileSystemFromFs returns a filesystem backed by the given afero filesystem.
func NewLocalFileSystemFromFs(afs afero.Fs) *LocalFileSystem {
	return &LocalFileSystem{
		fs: afs,
	}
}
