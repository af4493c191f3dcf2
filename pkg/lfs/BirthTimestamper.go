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
	"time"

	"github.com/djherbis/times"
)

// BirthTimestamper resolves creation times from the operating system.
// It prefers the birth time, then the status change time, then the modification time.
// Which of these is available depends on the platform and filesystem,
// so identical trees can sort differently on different hosts.
type BirthTimestamper struct{}

func (BirthTimestamper) CreationTime(ctx context.Context, path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return time.Time{}, err
		}
		// dangling symbolic link
		ts, err = times.Lstat(path)
		if err != nil {
			return time.Time{}, err
		}
	}
	return creationTime(ts), nil
}

func creationTime(ts times.Timespec) time.Time {
	if ts.HasBirthTime() {
		return ts.BirthTime()
	}
	if ts.HasChangeTime() {
		return ts.ChangeTime()
	}
	return ts.ModTime()
}
