package barcode

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// Format is a barcode symbology.
type Format string

const (
	// FormatQR is a two-dimensional QR code.
	FormatQR Format = "qr"
	// FormatCode128 is a linear Code 128 barcode. Payloads must be ASCII.
	FormatCode128 Format = "code128"
)

// Error variables for barcode generation and decoding
var (
	// ErrUnsupportedFormat is returned for formats other than FormatQR and FormatCode128.
	ErrUnsupportedFormat = errors.New("unsupported barcode format")
	// ErrFailedToGenerate is returned when the underlying encoder fails.
	ErrFailedToGenerate = errors.New("failed to generate barcode")
	// ErrFailedToDecode is returned when no barcode could be read from the image.
	ErrFailedToDecode = errors.New("failed to decode barcode")
)

// defaultSize is the size in pixels used when no size is specified
const defaultSize = 256

// Generate encodes data as JSON into a barcode image and returns it as PNG bytes.
// Non-positive sizes fall back to 256 pixels. QR codes are square, so the
// smaller of width and height is used for them.
func Generate(format Format, data map[string]any, width, height int) ([]byte, error) {
	if len(data) == 0 {
		return nil, apperr.Invalid("barcode data cannot be empty")
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, apperr.Invalid(fmt.Sprintf("barcode data is not serializable: %v", err))
	}
	if width <= 0 {
		width = defaultSize
	}
	if height <= 0 {
		height = defaultSize
	}

	switch format {
	case FormatQR:
		img, err := skipqrcode.Encode(string(payload), skipqrcode.Medium, min(width, height))
		if err != nil {
			return nil, errors.Join(ErrFailedToGenerate, err)
		}
		return img, nil
	case FormatCode128:
		return encodeCode128(string(payload), width, height)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func encodeCode128(content string, width, height int) ([]byte, error) {
	matrix, err := oned.NewCode128Writer().Encode(content, gozxing.BarcodeFormat_CODE_128, width, height, nil)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, matrix); err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return buf.Bytes(), nil
}

// GenerateFile works like Generate but writes the PNG to a uniquely named file
// in the system temp directory and returns its path. The caller owns the file.
func GenerateFile(format Format, data map[string]any, width, height int) (string, error) {
	img, err := Generate(format, data, width, height)
	if err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), uuid.NewString()+".png")
	if err := os.WriteFile(path, img, 0o600); err != nil {
		return "", errors.Join(ErrFailedToGenerate, err)
	}
	return path, nil
}

// GenerateBase64Image works like Generate but returns a data URI suitable for
// an img src attribute.
func GenerateBase64Image(format Format, data map[string]any, width, height int) (string, error) {
	img, err := Generate(format, data, width, height)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img), nil
}

// Read decodes a PNG barcode image produced by Generate and returns the JSON
// payload. QR codes are tried first, then Code 128. JSON numbers decode as float64.
func Read(r io.Reader) (map[string]any, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	// Readers keep internal state, so fresh ones are built per call.
	readers := []gozxing.Reader{
		zxqrcode.NewQRCodeReader(),
		oned.NewCode128Reader(),
	}

	var errs []error
	for _, reader := range readers {
		res, err := reader.Decode(bmp, hints)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		var data map[string]any
		if err := json.Unmarshal([]byte(res.GetText()), &data); err != nil {
			return nil, apperr.Invalid(fmt.Sprintf("barcode payload is not a JSON object: %v", err))
		}
		return data, nil
	}
	return nil, errors.Join(append([]error{ErrFailedToDecode}, errs...)...)
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.NotExists("barcode file does not exist: "+path, nil)
		}
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	defer f.Close()
	return Read(f)
}
