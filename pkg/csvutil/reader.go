package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// ErrFailedToOpen is returned when a file exists but cannot be opened.
var ErrFailedToOpen = errors.New("failed to open csv file")

// ErrFailedToRead is returned when records cannot be parsed.
var ErrFailedToRead = errors.New("failed to read csv records")

// NewReader returns a CSV reader over UTF-8 input. A leading byte order mark
// is stripped; UTF-16 input with a BOM is transcoded to UTF-8.
// Rows may have a varying number of fields.
func NewReader(r io.Reader) *csv.Reader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	return cr
}

// Open opens path in fsys and returns a reader over it together with the
// underlying file. The caller must close the returned Closer.
// A missing file yields apperr.NotExistsError.
func Open(fsys fs.FS, path string) (*csv.Reader, io.Closer, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, apperr.NotExists(fmt.Sprintf("file %s does not exist", path), nil)
		}
		return nil, nil, errors.Join(ErrFailedToOpen, err)
	}
	return NewReader(f), f, nil
}

// ReadAll reads every record from r.
func ReadAll(r io.Reader) ([][]string, error) {
	records, err := NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return records, nil
}

// ReadFile opens path in fsys and reads every record from it.
func ReadFile(fsys fs.FS, path string) ([][]string, error) {
	cr, closer, err := Open(fsys, path)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return records, nil
}
