package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// RowReader turns a spreadsheet file into rows of cell text. The first row is
// the header.
type RowReader interface {
	ReadRows(r io.Reader) ([][]string, error)
	Format() string
}

// Registry holds row readers by file extension.
type Registry struct {
	readers map[string]RowReader
}

// FileInfo describes a file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]RowReader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rr RowReader) {
	key := strings.ToLower(rr.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rr
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) RowReader {
	return r.readers[strings.ToLower(format)]
}

// ForPath returns the reader matching a file's extension, or nil.
func (r *Registry) ForPath(path string) RowReader {
	return r.Get(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ReadFile opens path and reads its rows with the matching reader.
func (r *Registry) ReadFile(path string) ([][]string, error) {
	rr := r.ForPath(path)
	if rr == nil {
		return nil, fmt.Errorf("no reader for %s", filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	rows, err := rr.ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// DefaultRegistry returns a registry with the xlsx reader and a UTF-8,
// semicolon separated csv reader.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(XLSXReader{})
	r.Register(CSVReader{Comma: ';'})
	return r
}

// importDir is the subdirectory for ledger files waiting to be imported.
const importDir = "import"

// processedDir is the subdirectory for imported ledger files.
const processedDir = "import/processed"

// Scan returns the files in <root>/import/ that reg can read.
func Scan(root string, reg *Registry) ([]FileInfo, error) {
	dir := filepath.Join(root, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || reg.ForPath(e.Name()) == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, importDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
