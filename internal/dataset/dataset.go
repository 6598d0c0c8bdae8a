package dataset

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/roach88/chemref/internal/catalog"
	"github.com/roach88/chemref/internal/table"
)

//go:embed data
var bundled embed.FS

// Bundled returns the embedded data directory.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded data: %v", err))
	}
	return sub
}

// Supported file formats.
const (
	FormatTSV  = "tsv"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// FormatFromPath infers a format from a file extension.
func FormatFromPath(p string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), ".")); ext {
	case FormatTSV, "tab", "txt":
		return FormatTSV, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q", path.Ext(p))
	}
}

// Loader reads catalog datasets from a file system.
type Loader struct {
	// FS holds the data files; nil means the bundled data.
	FS fs.FS

	// Logger receives debug output; nil disables logging.
	Logger *slog.Logger
}

// NewLoader returns a loader over the bundled data.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{FS: Bundled(), Logger: logger}
}

// LoadTable reads the file named by ds and returns it as a table named ds.Key.
func (l *Loader) LoadTable(ctx context.Context, ds catalog.Dataset) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fsys := l.FS
	if fsys == nil {
		fsys = Bundled()
	}

	f, err := fsys.Open(ds.File)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", ds.Key, err)
	}
	defer f.Close()

	t, err := Decode(ds.Key, ds.Format, f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", ds.Key, err)
	}

	if l.Logger != nil {
		l.Logger.Debug("dataset loaded",
			"dataset", ds.Key,
			"file", ds.File,
			"rows", t.Len(),
			"columns", len(t.Columns()))
	}
	return t, nil
}

// Decode reads one table of the given format from r.
func Decode(name, format string, r io.Reader) (*table.Table, error) {
	r = skipBOM(r)
	switch format {
	case FormatTSV:
		return decodeDelimited(name, '\t', r)
	case FormatCSV:
		return decodeDelimited(name, ',', r)
	case FormatJSON:
		return decodeJSON(name, r)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
