package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSizeMB is the upload ceiling enforced before encoding. The vision
// API rejects larger payloads, so oversized files fail locally instead of
// wasting a round trip.
const MaxImageSizeMB = 20

var (
	// ErrNotFound indicates the image path does not exist.
	ErrNotFound = errors.New("image file not found")

	// ErrSizeExceeded indicates the image is larger than MaxImageSizeMB.
	ErrSizeExceeded = errors.New("image size exceeds limit")

	// ErrEncodingFailed indicates the image could not be read or encoded.
	ErrEncodingFailed = errors.New("image encoding failed")
)

// EncodedImage is a transport-safe representation of one image file.
type EncodedImage struct {
	SourcePath string
	MimeType   string
	Base64     string
	SizeKB     float64
}

// DataURL renders the image as an RFC 2397 data URL for vision content parts.
func (img EncodedImage) DataURL() string {
	return "data:" + img.MimeType + ";base64," + img.Base64
}

// ValidateSize checks the on-disk size against MaxImageSizeMB.
func ValidateSize(path string) error {
	st, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", ErrEncodingFailed, path, err)
	}
	sizeMB := float64(st.Size()) / (1024 * 1024)
	if sizeMB > MaxImageSizeMB {
		return fmt.Errorf("%w: %.2f MB (max %d MB): %s", ErrSizeExceeded, sizeMB, MaxImageSizeMB, path)
	}
	return nil
}

// SizeKB returns the file size in kilobytes, rounded to two decimals.
func SizeKB(path string) (float64, error) {
	st, err := os.Stat(path)
	if os.IsNotExist(err) {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: stat %s: %v", ErrEncodingFailed, path, err)
	}
	kb := float64(st.Size()) / 1024
	return float64(int(kb*100+0.5)) / 100, nil
}

// Encode validates the file size and returns the base64 encoding of the raw
// bytes. The encoding is byte-for-byte reversible with base64 standard
// decoding.
func Encode(path string) (EncodedImage, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return EncodedImage{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err := ValidateSize(path); err != nil {
		return EncodedImage{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return EncodedImage{}, fmt.Errorf("%w: read %s: %v", ErrEncodingFailed, path, err)
	}

	kb, err := SizeKB(path)
	if err != nil {
		return EncodedImage{}, err
	}

	return EncodedImage{
		SourcePath: path,
		MimeType:   mimeTypeFor(path),
		Base64:     base64.StdEncoding.EncodeToString(b),
		SizeKB:     kb,
	}, nil
}

func mimeTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt := mime.TypeByExtension(ext); mt != "" {
		return mt
	}
	switch strings.TrimPrefix(ext, ".") {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
