// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"errors"
)

// Kilobyte is the number of bytes in a kilobyte when reporting file sizes.
const Kilobyte = 1024

// Partition sorts the entries by creation date and splits them into directories and regular files.
// Each entry is classified by stating it again.
// Entries that are neither a directory nor a regular file, or that can no longer be stated, are dropped.
func Partition(ctx context.Context, input *PartitionInput) (*IndexResult, error) {
	if input.FileSystem == nil {
		return nil, errors.New("error partitioning entries: file system is nil")
	}

	sorted := make([]*DirectoryEntry, len(input.Entries))
	copy(sorted, input.Entries)
	SortByCreationDate(sorted)

	result := &IndexResult{
		Files: []*DirectoryEntry{},
		Dirs:  []*DirectoryEntry{},
	}

	for _, entry := range sorted {
		fi, err := input.FileSystem.Stat(ctx, entry.Path())
		if err != nil {
			log(input.Logger, "Skipping entry", map[string]interface{}{
				"path":   entry.Path(),
				"reason": err.Error(),
			})
			continue
		}
		switch {
		case fi.IsDir():
			result.Dirs = append(result.Dirs, entry)
		case fi.IsRegular():
			result.Files = append(result.Files, entry.WithSize(fi.Size()/Kilobyte))
		default:
			log(input.Logger, "Skipping entry", map[string]interface{}{
				"path":   entry.Path(),
				"reason": "neither a directory nor a regular file",
				"mode":   fi.Mode().String(),
			})
		}
	}

	return result, nil
}
