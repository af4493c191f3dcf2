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
	"fmt"
	"time"
)

// Scan lists the immediate children of the input directory, drops ignored and hidden names,
// and resolves the creation date of every remaining child.
// The returned entries are in enumeration order and have no size.
func Scan(ctx context.Context, input *ScanInput) ([]*DirectoryEntry, error) {
	if input.FileSystem == nil {
		return nil, errors.New("error scanning directory: file system is nil")
	}
	if input.Timestamper == nil {
		return nil, errors.New("error scanning directory: timestamper is nil")
	}

	hiddenPolicy := input.HiddenPolicy
	if hiddenPolicy == nil {
		hiddenPolicy = DotPrefixHiddenPolicy{}
	}

	location := input.Location
	if location == nil {
		location = time.Local
	}

	log(input.Logger, "Scanning directory", map[string]interface{}{
		"dir":         input.Directory,
		"show_hidden": input.ShowHidden,
		"ignore":      input.IgnoreList.Names(),
	})

	names, err := input.FileSystem.ReadDir(ctx, input.Directory)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %q: %w", input.Directory, err)
	}

	entries := make([]*DirectoryEntry, 0, len(names))
	for _, name := range names {
		if input.IgnoreList.Contains(name) {
			continue
		}

		path := input.FileSystem.Join(input.Directory, name)

		if !input.ShowHidden {
			hidden, err := hiddenPolicy.IsHidden(name, path)
			if err != nil {
				if input.FileSystem.IsNotExist(err) {
					// removed since the directory was read
					continue
				}
				return nil, fmt.Errorf("error checking if %q is hidden: %w", path, err)
			}
			if hidden {
				continue
			}
		}

		creationDate, err := input.Timestamper.CreationTime(ctx, path)
		if err != nil {
			if input.FileSystem.IsNotExist(err) {
				log(input.Logger, "Skipping entry", map[string]interface{}{
					"path":   path,
					"reason": "removed during scan",
				})
				continue
			}
			return nil, fmt.Errorf("error resolving creation date of %q: %w", path, err)
		}

		entries = append(entries, NewDirectoryEntry(name, path, creationDate.In(location)))
	}

	log(input.Logger, "Done scanning directory", map[string]interface{}{
		"dir":     input.Directory,
		"entries": len(entries),
	})

	return entries, nil
}
