package tabular

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/odourcollect/ocdata/pkg/core"
)

// File is a core.Source backed by a CSV or spreadsheet file on disk.
// Loading is a single blocking read; any I/O failure propagates as a
// fatal construction error.
type File struct {
	Path    string
	Format  Format
	Options ParseOptions
	Logger  *slog.Logger
}

// NewFile creates a file source with default parse options.
func NewFile(path string, format Format) *File {
	return &File{Path: path, Format: format, Options: DefaultParseOptions()}
}

// Name implements core.Source.
func (f *File) Name() string { return f.Path }

// Load implements core.Source. It resolves the format hint (FormatAuto
// derives it from the extension), picks the matching reader, and parses
// the whole file as text cells.
func (f *File) Load(ctx context.Context) (*core.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := f.Format
	if format == "" || format == FormatAuto {
		format = Detect(f.Path)
		if f.Logger != nil {
			f.Logger.Debug("file type autodetection", "path", f.Path, "format", format)
		}
	}
	reader, ok := DefaultReaders()[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (expected csv or xlsx)", core.ErrUnsupportedFormat, string(format))
	}
	if format == FormatXLSX && f.Logger != nil {
		f.Logger.Info("spreadsheet input: only the first sheet is read", "path", f.Path)
	}

	handle, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return reader.Parse(handle, f.Options)
}

// Glob returns a file source per path matching the doublestar pattern, in
// sorted path order. Useful for batch ingest of export directories.
func Glob(pattern string, format Format) ([]*File, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	files := make([]*File, 0, len(matches))
	for _, path := range matches {
		files = append(files, NewFile(path, format))
	}
	return files, nil
}
