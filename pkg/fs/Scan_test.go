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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTimestamper serves creation times from a map keyed by path.
type testTimestamper map[string]time.Time

func (tt testTimestamper) CreationTime(ctx context.Context, path string) (time.Time, error) {
	if t, ok := tt[path]; ok {
		return t, nil
	}
	return time.Time{}, os.ErrNotExist
}

// testHiddenPolicy hides the named entries.
type testHiddenPolicy map[string]bool

func (thp testHiddenPolicy) IsHidden(name string, path string) (bool, error) {
	return thp[name], nil
}

func testScanInput() *ScanInput {
	t0 := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
	dir := filepath.Join("/", "data")
	return &ScanInput{
		Directory: dir,
		FileSystem: &testFileSystem{
			names: []string{"index.html", "a.txt", ".secret", "sub", "style.css", "vanished"},
		},
		IgnoreList: DefaultIgnoreList(),
		Timestamper: testTimestamper{
			filepath.Join(dir, "index.html"): t0,
			filepath.Join(dir, "style.css"):  t0,
			filepath.Join(dir, "a.txt"):      t0,
			filepath.Join(dir, ".secret"):    t0.Add(3 * time.Second),
			filepath.Join(dir, "sub"):        t0.Add(2 * time.Second),
		},
		Location: time.UTC,
	}
}

func TestScan(t *testing.T) {
	entries, err := Scan(context.Background(), testScanInput())
	require.NoError(t, err)
	// enumeration order is kept
	assert.Equal(t, []string{"a.txt", "sub"}, names(entries))
	assert.Equal(t, filepath.Join("/", "data", "sub"), entries[1].Path())
	for _, de := range entries {
		assert.False(t, de.HasSize())
	}
}

func TestScanShowHidden(t *testing.T) {
	input := testScanInput()
	input.ShowHidden = true
	entries, err := Scan(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", ".secret", "sub"}, names(entries))
}

func TestScanEmptyIgnoreList(t *testing.T) {
	input := testScanInput()
	input.IgnoreList = NewIgnoreList()
	entries, err := Scan(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "a.txt", "sub", "style.css"}, names(entries))
}

func TestScanHiddenPolicy(t *testing.T) {
	input := testScanInput()
	input.HiddenPolicy = testHiddenPolicy{"sub": true}
	entries, err := Scan(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", ".secret"}, names(entries))
}

func TestScanLocation(t *testing.T) {
	input := testScanInput()
	input.Location = time.FixedZone("UTC-5", -5*60*60)
	entries, err := Scan(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	_, offset := entries[0].CreationDate().Zone()
	assert.Equal(t, -5*60*60, offset)
	assert.Equal(t, 9, entries[0].CreationDate().Hour())
}

type failingTimestamper struct{}

func (failingTimestamper) CreationTime(ctx context.Context, path string) (time.Time, error) {
	return time.Time{}, errors.New("permission denied")
}

func TestScanErrors(t *testing.T) {
	input := testScanInput()
	input.Timestamper = failingTimestamper{}
	_, err := Scan(context.Background(), input)
	assert.Error(t, err)

	input = testScanInput()
	input.FileSystem = nil
	_, err = Scan(context.Background(), input)
	assert.Error(t, err)
}
