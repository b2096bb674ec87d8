package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize draws an svg so that its longer side is size pixels. A size of 0
// keeps the dimensions of the view box.
func Rasterize(svg []byte, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		return nil, fmt.Errorf("svg has an empty view box: %vx%v", vw, vh)
	}

	scale := 1.0
	if size > 0 {
		scale = float64(size) / max(vw, vh)
	}
	w, h := max(int(vw*scale+0.5), 1), max(int(vh*scale+0.5), 1)
	icon.SetTarget(0, 0, float64(w), float64(h))

	slog.Debug("rasterizing", "viewbox_w", vw, "viewbox_h", vh, "w", w, "h", h)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func RasterizeAsPNG(svg []byte, wr io.Writer, size int) error {
	img, err := Rasterize(svg, size)
	if err != nil {
		return err
	}
	if err := png.Encode(wr, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
