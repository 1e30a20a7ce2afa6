// Package csvutil builds encoding/csv readers for UTF-8 input from io.Reader
// values or fs.FS files.
//
// Input passes through a golang.org/x/text decoder that drops a leading byte
// order mark, so spreadsheet exports parse with clean header names.
//
//	records, err := csvutil.ReadFile(os.DirFS("data"), "users.csv")
//	if apperr.Is(err, apperr.KindNotExists) {
//		// handle missing file
//	}
package csvutil
