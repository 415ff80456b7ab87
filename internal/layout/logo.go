package layout

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
)

const (
	logoX    = Margin
	logoY    = 5.0
	logoMaxW = 60.0
	logoMaxH = 25.0
)

var errEmptyImage = errors.New("empty image data")

// placeLogo checks that img decodes and fits it into the header logo box,
// keeping its aspect ratio.
func placeLogo(img *Image) (Element, error) {
	if len(img.Data) == 0 {
		return Element{}, errEmptyImage
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return Element{}, err
	}
	var kind string
	switch format {
	case "png":
		kind = "PNG"
	case "jpeg":
		kind = "JPG"
	default:
		return Element{}, fmt.Errorf("unsupported image format %q", format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Element{}, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}

	scale := math.Min(logoMaxW/float64(cfg.Width), logoMaxH/float64(cfg.Height))
	w := math.Round(float64(cfg.Width)*scale*100) / 100
	h := math.Round(float64(cfg.Height)*scale*100) / 100

	name := img.Name
	if name == "" {
		name = "logo"
	}
	return Element{
		Kind:    KindImage,
		Section: SectionHeader,
		Key:     "header.logo",
		X:       logoX,
		Y:       logoY + (logoMaxH-h)/2,
		W:       w,
		H:       h,
		Image:   &Image{Name: name, Type: kind, Data: img.Data},
	}, nil
}
