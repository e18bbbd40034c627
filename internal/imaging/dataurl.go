// Package imaging converts user-picked images into self-contained data
// URIs stored directly as document fields. A stored image needs no blob
// reference: any client that can render a data URI can display it without
// a network fetch.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	xdraw "golang.org/x/image/draw"

	_ "image/gif"           // register GIF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Format selects the output encoding. JPEG is the default; WEBP falls
// back to JPEG on platforms where the encoder is unavailable.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWEBP Format = "webp"
)

const (
	// DefaultQuality is the lossy re-encode quality.
	DefaultQuality = 80
	// DefaultMaxDim caps the longest image side before encoding.
	DefaultMaxDim = 2048
)

// ErrUnreadableImage is returned when the source bytes cannot be decoded
// as an image. The caller aborts the save; no partial value is produced.
var ErrUnreadableImage = errors.New("unreadable image data")

// ErrNotDataURI is returned by DecodeDataURI for strings that are not
// well-formed data URIs.
var ErrNotDataURI = errors.New("not a data URI")

// errWebPUnavailable is returned by the stub encoder on platforms built
// without the WebP encoder; EncodeDataURI falls back to JPEG.
var errWebPUnavailable = errors.New("webp encoder unavailable")

// Options configures EncodeDataURI. The zero value means JPEG at
// DefaultQuality with no resizing.
type Options struct {
	Format  Format
	Quality int
	MaxDim  int
}

// EncodeDataURI decodes raw picked-image bytes, optionally downscales them
// to fit MaxDim, re-encodes them in the requested format, and returns a
// `data:<mime>;base64,<payload>` string.
func EncodeDataURI(content []byte, opts Options) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty input", ErrUnreadableImage)
	}

	decoded, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	if opts.MaxDim > 0 {
		decoded = resizeToFit(decoded, opts.MaxDim, opts.MaxDim)
	}

	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	format := opts.Format
	if format == "" {
		format = FormatJPEG
	}

	var (
		encoded []byte
		mime    string
	)
	switch format {
	case FormatPNG:
		encoded, err = encodePNG(decoded)
		mime = "image/png"
	case FormatWEBP:
		encoded, err = encodeWebP(decoded, quality)
		mime = "image/webp"
		if errors.Is(err, errWebPUnavailable) {
			encoded, err = encodeJPEG(decoded, quality)
			mime = "image/jpeg"
		}
	case FormatJPEG:
		encoded, err = encodeJPEG(decoded, quality)
		mime = "image/jpeg"
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return "", err
	}

	return BuildDataURI(mime, encoded), nil
}

// BuildDataURI assembles a data URI from a MIME type and raw payload.
func BuildDataURI(mime string, payload []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(payload))
}

// IsDataURI reports whether s looks like an inline-encoded image.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// DecodeDataURI splits a data URI back into its MIME type and payload.
func DecodeDataURI(s string) (mime string, payload []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	meta, b64, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	mime, enc, hasEnc := strings.Cut(meta, ";")
	if !hasEnc || enc != "base64" {
		return "", nil, fmt.Errorf("%w: unsupported encoding", ErrNotDataURI)
	}
	payload, err = base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrNotDataURI, err)
	}
	return mime, payload, nil
}

// resizeToFit scales src down so both dimensions fit within the given
// bounds, preserving aspect ratio. Images already within bounds are
// returned unchanged.
func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodePNG(img image.Image) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
