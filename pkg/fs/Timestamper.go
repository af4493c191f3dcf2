// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"time"
)

// Timestamper resolves the best-effort creation time of the file at path.
type Timestamper interface {
	CreationTime(ctx context.Context, path string) (time.Time, error)
}
