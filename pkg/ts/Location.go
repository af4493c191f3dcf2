// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package ts

import (
	"errors"
	"strconv"
	"time"
)

// ParseLocation returns the location with the given name.
// "Local" returns nil, which means timestamps keep their own zone.
// An integer is parsed as a fixed offset in hours from UTC.
func ParseLocation(location string) (*time.Location, error) {
	if location == "" {
		return nil, errors.New("cannot parse location from empty string")
	}
	if location == "Local" {
		return nil, nil
	}
	hours, err := strconv.Atoi(location)
	if err == nil {
		return time.FixedZone("UTC"+location, hours*60*60), nil
	}
	return time.LoadLocation(location)
}

// CurrentLocalZone returns a fixed zone with the offset of the local time zone at now.
// Unlike time.Local, the offset does not vary with the date being converted.
func CurrentLocalZone(now time.Time) *time.Location {
	name, offset := now.In(time.Local).Zone()
	return time.FixedZone(name, offset)
}
