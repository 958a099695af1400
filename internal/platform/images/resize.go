package images

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Cover images are normalized to a fixed portrait canvas.
const (
	CanvasWidth  = 800
	CanvasHeight = 1200
)

var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// IsSupportedExt reports whether ext (with leading dot, any case) is one of
// the accepted cover formats.
func IsSupportedExt(ext string) bool {
	return supportedExts[strings.ToLower(ext)]
}

// Decode sniffs the payload's content type and decodes jpeg, png or webp,
// falling back to the file extension when sniffing is inconclusive.
func Decode(data []byte, ext string) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(data))
	}

	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case ".png":
		return png.Decode(bytes.NewReader(data))
	case ".webp":
		return webp.Decode(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

// Contain scales src to fit the canvas while preserving aspect ratio and
// centers it on a full canvas. JPEG has no alpha channel, so its padding is
// white; png and webp pad with transparency.
func Contain(src image.Image, ext string) *image.NRGBA {
	b := src.Bounds()
	scale := math.Min(
		float64(CanvasWidth)/float64(b.Dx()),
		float64(CanvasHeight)/float64(b.Dy()),
	)
	nw := int(math.Round(float64(b.Dx()) * scale))
	nh := int(math.Round(float64(b.Dy()) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	scaled := imaging.Resize(src, nw, nh, imaging.Lanczos)

	bg := color.NRGBA{} // transparent
	if isJPEG(ext) {
		bg = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	canvas := imaging.New(CanvasWidth, CanvasHeight, bg)
	return imaging.PasteCenter(canvas, scaled)
}

// Encode writes img back out in the format matching ext.
func Encode(img image.Image, ext string) ([]byte, error) {
	buf := new(bytes.Buffer)
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 90}); err != nil {
			return nil, err
		}
	case ".png":
		if err := png.Encode(buf, img); err != nil {
			return nil, err
		}
	case ".webp":
		if err := webp.Encode(buf, img, &webp.Options{Quality: 90}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s", ext)
	}
	return buf.Bytes(), nil
}

// Process decodes an uploaded cover, fits it to the canvas and re-encodes
// it in the same format.
func Process(data []byte, ext string) ([]byte, error) {
	src, err := Decode(data, ext)
	if err != nil {
		return nil, err
	}
	return Encode(Contain(src, ext), ext)
}

func isJPEG(ext string) bool {
	e := strings.ToLower(ext)
	return e == ".jpg" || e == ".jpeg"
}
