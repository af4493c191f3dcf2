// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryEntryWithSize(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
	de := NewDirectoryEntry("a.txt", "/data/a.txt", ts)
	assert.False(t, de.HasSize())
	assert.Equal(t, int64(-1), de.Size())

	sized := de.WithSize(0)
	assert.True(t, sized.HasSize())
	assert.Equal(t, int64(0), sized.Size())
	assert.Equal(t, "a.txt", sized.Name())
	assert.Equal(t, "/data/a.txt", sized.Path())
	assert.Equal(t, ts, sized.CreationDate())

	// the original entry is unchanged
	assert.False(t, de.HasSize())
}

func TestDirectoryEntryMarshalJSON(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)

	b, err := json.Marshal(NewDirectoryEntry("sub", "/data/sub", ts))
	require.NoError(t, err)
	assert.JSONEq(t, `{"creationDate":"2024-03-05T14:00:00Z","name":"sub","path":"/data/sub","size":null}`, string(b))

	b, err = json.Marshal(NewDirectoryEntry("a.txt", "/data/a.txt", ts).WithSize(3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"creationDate":"2024-03-05T14:00:00Z","name":"a.txt","path":"/data/a.txt","size":3}`, string(b))
}
