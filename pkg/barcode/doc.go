// Package barcode encodes small JSON payloads into barcode images and reads
// them back.
//
// QR codes are generated with github.com/skip2/go-qrcode; Code 128 symbols and
// all decoding use github.com/makiuchi-d/gozxing.
//
// # Usage
//
//	import "github.com/dmitrymomot/commonkit/pkg/barcode"
//
//	img, err := barcode.Generate(barcode.FormatQR, map[string]any{"order": 42}, 256, 256)
//	if err != nil {
//		// handle error
//	}
//
//	data, err := barcode.Read(bytes.NewReader(img))
//	// data["order"] == float64(42)
//
// Defaults can come from the environment (BARCODE_FORMAT, BARCODE_WIDTH,
// BARCODE_HEIGHT) through LoadConfig and NewGenerator.
//
// # Error Handling
//
// Empty or non-serializable data and non-object payloads yield apperr.InvalidError.
// Encoder and decoder failures are joined with ErrFailedToGenerate or
// ErrFailedToDecode; compare with errors.Is.
package barcode
