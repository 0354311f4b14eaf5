package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// ErrUnknownFormat is returned for image formats other than ppm and png
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an output image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatPPM, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extension returns the file extension including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type used when uploading
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/x-portable-pixmap"
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WritePPM writes img as a plain-text (P3) PPM
func WritePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, bl>>8); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Scale resizes img to the given width keeping its aspect ratio.
// A width of 0 or the current width returns img unchanged.
func Scale(img image.Image, width int) image.Image {
	if width <= 0 || width == img.Bounds().Dx() {
		return img
	}
	return resize.Resize(uint(width), 0, img, resize.Bilinear)
}
