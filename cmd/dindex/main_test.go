// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	stdout := &bytes.Buffer{}
	cmd := newRootCommand(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)
	err := cmd.Execute()
	return stdout.String(), err
}

func newDirectory(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), make([]byte, 1024), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), make([]byte, 2048), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".secret"), []byte("x"), 0644))
	return dir
}

func listed(t *testing.T, dir string) []string {
	f, err := os.Open(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc.Find("td.name a").Map(func(i int, s *goquery.Selection) string {
		return s.Text()
	})
}

func TestVersionFlag(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	out, err := execute(t, "--version", "--input-dir", missing, "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "dindex version : "+DIndexVersion+"\n"+DIndexURL+"\n", out)

	_, err = os.Stat(missing)
	assert.True(t, os.IsNotExist(err))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dindex version : "+DIndexVersion))
}

func TestLayoutsCommand(t *testing.T) {
	out, err := execute(t, "layouts")
	require.NoError(t, err)
	assert.Contains(t, out, "DateTime: 2006-01-02 15:04:05\n")
}

func TestInputDirRequired(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input-dir is required")
}

func TestInputDirMissing(t *testing.T) {
	_, err := execute(t, "--input-dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input directory does not exist")
}

func TestUnexpectedArguments(t *testing.T) {
	_, err := execute(t, "--input-dir", t.TempDir(), "extra")
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	dir := newDirectory(t)
	out, err := execute(t, "--input-dir", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "style.css"))

	names := listed(t, dir)
	assert.ElementsMatch(t, []string{"sub/", "a.txt", "b.txt"}, names)
}

func TestIndexVerbose(t *testing.T) {
	dir := newDirectory(t)
	out, err := execute(t, "--input-dir", dir, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Writing file")
	assert.Contains(t, out, "Copying file")
}

func TestIndexShowHidden(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hidden files are marked by attribute on windows")
	}
	dir := newDirectory(t)
	_, err := execute(t, "--input-dir", dir, "--show-hidden")
	require.NoError(t, err)
	assert.Contains(t, listed(t, dir), ".secret")
}

func TestIndexIgnoreList(t *testing.T) {
	dir := newDirectory(t)

	_, err := execute(t, "--input-dir", dir)
	require.NoError(t, err)
	assert.NotContains(t, listed(t, dir), "index.html")

	// the flag alone clears the list
	_, err = execute(t, "--input-dir", dir, "--ignore-list")
	require.NoError(t, err)
	names := listed(t, dir)
	assert.Contains(t, names, "index.html")
	assert.Contains(t, names, "style.css")

	// names following the flag replace the list
	_, err = execute(t, "--input-dir", dir, "--ignore-list", "a.txt", "sub")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b.txt", "index.html", "style.css"}, listed(t, dir))

	_, err = execute(t, "--input-dir", dir, "--ignore-list=b.txt,index.html,style.css")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sub/", "a.txt"}, listed(t, dir))
}

func TestIndexIgnoreListEnvironment(t *testing.T) {
	dir := newDirectory(t)
	t.Setenv("DINDEX_IGNORE_LIST", "a.txt,b.txt")
	_, err := execute(t, "--input-dir", dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sub/"}, listed(t, dir))

	// the flag takes precedence over the environment
	_, err = execute(t, "--input-dir", dir, "--ignore-list", "sub", "index.html", "style.css")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, listed(t, dir))
}

func TestIndexShowHiddenEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hidden files are marked by attribute on windows")
	}
	dir := newDirectory(t)
	t.Setenv("DINDEX_SHOW_HIDDEN", "true")
	_, err := execute(t, "--input-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, listed(t, dir), ".secret")
}

func TestIndexLogFile(t *testing.T) {
	dir := newDirectory(t)
	logPath := filepath.Join(t.TempDir(), "dindex.log")
	out, err := execute(t, "--input-dir", dir, "--verbose", "--log-path", logPath, "--log-format", "json")
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"Writing file"`)
	assert.Contains(t, string(b), `"msg":"Done indexing"`)
}

func TestUsageErrors(t *testing.T) {
	_, err := execute(t, "--input-dir", t.TempDir(), "--log-format", "xml")
	require.Error(t, err)
	assert.True(t, isUsageError(err))

	_, err = execute(t, "--input-dir", t.TempDir(), "--unknown")
	require.Error(t, err)
	assert.True(t, isUsageError(err))

	_, err = execute(t)
	require.Error(t, err)
	assert.True(t, isUsageError(err))

	_, err = execute(t, "--input-dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.False(t, isUsageError(err))
}

func TestIndexTemplateOverride(t *testing.T) {
	dir := newDirectory(t)
	templatePath := filepath.Join(t.TempDir(), "plain.html")
	require.NoError(t, os.WriteFile(templatePath, []byte(`{{ .Title }}:{{ range .Files }} {{ .Name }}{{ end }}`), 0644))

	_, err := execute(t, "--input-dir", dir, "--template", templatePath, "--title", "plain", "--ignore-list", "a.txt")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "plain: b.txt", string(b))
}

func TestInvalidLogFormat(t *testing.T) {
	_, err := execute(t, "--input-dir", t.TempDir(), "--log-format", "xml")
	assert.Error(t, err)
}
