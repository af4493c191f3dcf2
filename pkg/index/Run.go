// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package index

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/navwar/dindex/pkg/fs"
	"github.com/navwar/dindex/pkg/render"
	"github.com/navwar/dindex/pkg/ts"
)

var (
	ErrInputDirectoryNotExist = errors.New("input directory does not exist")
	ErrInputNotDirectory      = errors.New("input is not a directory")
)

func log(logger fs.Logger, msg string, fields map[string]interface{}) {
	if logger != nil {
		_ = logger.Log(msg, fields)
	}
}

// Check returns an error if the input directory cannot be indexed.
func Check(ctx context.Context, fileSystem fs.FileSystem, inputDir string) error {
	fi, err := fileSystem.Stat(ctx, inputDir)
	if err != nil {
		if fileSystem.IsNotExist(err) {
			return fmt.Errorf("%w: %q", ErrInputDirectoryNotExist, inputDir)
		}
		return fmt.Errorf("error stating input directory %q: %w", inputDir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %q", ErrInputNotDirectory, inputDir)
	}
	return nil
}

// Run scans the input directory, partitions its entries, renders the index page,
// and writes the page and the stylesheet into the input directory.
// Nothing is written unless the page renders successfully.
func Run(ctx context.Context, input *RunInput) (*fs.IndexResult, error) {
	c := input.Configuration
	if c == nil {
		return nil, errors.New("configuration is nil")
	}

	now := time.Now
	if input.Now != nil {
		now = input.Now
	}

	if err := Check(ctx, input.FileSystem, c.InputDir); err != nil {
		return nil, err
	}

	// the template is loaded before scanning so that a broken template fails fast
	renderer, err := render.NewRenderer(input.TemplateFileSystem, input.TemplateName, &render.Options{
		Layout:   c.TimeLayout,
		Location: c.Location,
	})
	if err != nil {
		return nil, err
	}

	zone := ts.CurrentLocalZone(now())

	entries, err := fs.Scan(ctx, &fs.ScanInput{
		Directory:    c.InputDir,
		FileSystem:   input.FileSystem,
		IgnoreList:   c.IgnoreList,
		ShowHidden:   c.ShowHidden,
		HiddenPolicy: input.HiddenPolicy,
		Timestamper:  input.Timestamper,
		Location:     zone,
		Logger:       input.Logger,
	})
	if err != nil {
		return nil, err
	}

	result, err := fs.Partition(ctx, &fs.PartitionInput{
		Entries:    entries,
		FileSystem: input.FileSystem,
		Logger:     input.Logger,
	})
	if err != nil {
		return nil, err
	}

	readme, err := readReadme(ctx, input)
	if err != nil {
		return nil, err
	}

	title := c.Title
	if len(title) == 0 {
		title = filepath.Base(c.InputDir)
	}

	output, err := renderer.Render(&render.RenderInput{
		Result:      result,
		Version:     input.Version,
		Title:       title,
		GeneratedAt: now().In(zone),
		Readme:      readme,
	})
	if err != nil {
		return nil, err
	}

	indexPath := input.FileSystem.Join(c.InputDir, fs.IndexFileName)

	log(input.Logger, "Writing file", map[string]interface{}{
		"path":  indexPath,
		"bytes": len(output),
		"dirs":  len(result.Dirs),
		"files": len(result.Files),
	})

	err = input.FileSystem.WriteFile(ctx, indexPath, output, 0644)
	if err != nil {
		return nil, fmt.Errorf("error writing index to %q: %w", indexPath, err)
	}

	err = fs.Copy(ctx, &fs.CopyInput{
		SourceName:            input.StylesheetName,
		SourceFileSystem:      input.StylesheetFileSystem,
		DestinationName:       input.FileSystem.Join(c.InputDir, fs.StylesheetFileName),
		DestinationFileSystem: input.FileSystem.Afero(),
		DestinationPerm:       0644,
		PreserveMetadata:      input.PreserveStylesheetMetadata,
		Logger:                input.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("error copying stylesheet: %w", err)
	}

	return result, nil
}

// readReadme renders the configured markdown file, if it exists.
func readReadme(ctx context.Context, input *RunInput) (template.HTML, error) {
	name := input.Configuration.Readme
	if len(name) == 0 {
		return "", nil
	}
	path := input.FileSystem.Join(input.Configuration.InputDir, name)
	fi, err := input.FileSystem.Stat(ctx, path)
	if err != nil {
		if input.FileSystem.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("error stating readme %q: %w", path, err)
	}
	if !fi.IsRegular() {
		return "", nil
	}
	b, err := input.FileSystem.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("error reading readme %q: %w", path, err)
	}
	log(input.Logger, "Rendering readme", map[string]interface{}{
		"path": path,
	})
	return render.Markdown(b), nil
}
