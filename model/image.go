package model

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrEmptyImage is returned by NewImage when no data is supplied.
var ErrEmptyImage = errors.New("model: empty image data")

// Image represents an embedded image
type Image struct {
	Data   []byte
	Format ImageFormat
	// Pixel dimensions, filled by NewImage
	PixelWidth  int
	PixelHeight int
	DPI         float64
	// Alt text if available
	AltText string
}

func (i *Image) Type() ElementType { return ElementTypeImage }
func (i *Image) GetText() string   { return i.AltText }

// NewImage wraps raw image bytes, detecting the format and pixel size from
// the encoded header without decoding the full image.
func NewImage(data []byte, altText string) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("model: reading image header: %w", err)
	}
	return &Image{
		Data:        data,
		Format:      imageFormatFromName(name),
		PixelWidth:  cfg.Width,
		PixelHeight: cfg.Height,
		AltText:     altText,
	}, nil
}

// Size returns the image size in points at the image DPI (72 when unset).
func (i *Image) Size() (width, height float64) {
	dpi := i.DPI
	if dpi <= 0 {
		dpi = 72
	}
	return float64(i.PixelWidth) * 72 / dpi, float64(i.PixelHeight) * 72 / dpi
}

// ImageFormat represents image format
type ImageFormat int

const (
	ImageFormatUnknown ImageFormat = iota
	ImageFormatJPEG
	ImageFormatPNG
	ImageFormatGIF
	ImageFormatTIFF
	ImageFormatBMP
	ImageFormatWebP
)

func (f ImageFormat) String() string {
	switch f {
	case ImageFormatJPEG:
		return "jpeg"
	case ImageFormatPNG:
		return "png"
	case ImageFormatGIF:
		return "gif"
	case ImageFormatTIFF:
		return "tiff"
	case ImageFormatBMP:
		return "bmp"
	case ImageFormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

func imageFormatFromName(name string) ImageFormat {
	switch name {
	case "jpeg":
		return ImageFormatJPEG
	case "png":
		return ImageFormatPNG
	case "gif":
		return ImageFormatGIF
	case "tiff":
		return ImageFormatTIFF
	case "bmp":
		return ImageFormatBMP
	case "webp":
		return ImageFormatWebP
	default:
		return ImageFormatUnknown
	}
}
