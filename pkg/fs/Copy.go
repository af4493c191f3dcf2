// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Copy copies a file between two filesystems, overwriting the destination.
func Copy(ctx context.Context, input *CopyInput) error {
	log(input.Logger, "Copying file", map[string]interface{}{
		"src": input.SourceName,
		"dst": input.DestinationName,
	})

	sourceFileInfo, err := input.SourceFileSystem.Stat(input.SourceName)
	if err != nil {
		return fmt.Errorf("error stating source file at %q: %w", input.SourceName, err)
	}

	perm := input.DestinationPerm
	if perm == 0 {
		perm = 0644
	}

	// open source file
	sourceFile, err := input.SourceFileSystem.Open(input.SourceName)
	if err != nil {
		return fmt.Errorf("error opening source file at %q: %w", input.SourceName, err)
	}

	// open destination file
	destinationFile, err := input.DestinationFileSystem.OpenFile(input.DestinationName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		_ = sourceFile.Close() // silently close source file
		return fmt.Errorf("error creating destination file at %q: %w", input.DestinationName, err)
	}

	// copy bytes from source to destination
	written, err := io.Copy(destinationFile, sourceFile)
	if err != nil {
		_ = sourceFile.Close()      // silently close source file
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error copying from %q to %q: %w", input.SourceName, input.DestinationName, err)
	}

	err = sourceFile.Close()
	if err != nil {
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error closing source file after copying: %w", err)
	}

	err = destinationFile.Close()
	if err != nil {
		return fmt.Errorf("error closing destination file after copying: %w", err)
	}

	if input.PreserveMetadata {
		err = input.DestinationFileSystem.Chmod(input.DestinationName, sourceFileInfo.Mode().Perm())
		if err != nil {
			return fmt.Errorf("error changing permissions for destination after copying: %w", err)
		}
		// embedded files carry no modification time
		if modTime := sourceFileInfo.ModTime(); !modTime.IsZero() {
			err = input.DestinationFileSystem.Chtimes(input.DestinationName, time.Now(), modTime)
			if err != nil {
				return fmt.Errorf("error changing timestamps for destination after copying: %w", err)
			}
		}
	}

	log(input.Logger, "Done copying file", map[string]interface{}{
		"src":     input.SourceName,
		"dst":     input.DestinationName,
		"written": written,
	})

	return nil
}
