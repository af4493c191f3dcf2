// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"os"
)

type FileSystem interface {
	IsNotExist(err error) bool
	Join(name ...string) string
	ReadDir(ctx context.Context, name string) ([]string, error)
	ReadFile(ctx context.Context, name string) ([]byte, error)
	Stat(ctx context.Context, name string) (FileInfo, error)
	WriteFile(ctx context.Context, name string, data []byte, perm os.FileMode) error
}
