package moderation

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const highlightPadding = 3

var highlightColor = color.RGBA{R: 255, A: 255}

// Annotate decodes data, outlines every box in red and returns the result as PNG.
func Annotate(data []byte, boxes []image.Rectangle) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	for _, box := range boxes {
		outline(dst, box.Inset(-highlightPadding).Intersect(bounds))
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func outline(img *image.RGBA, r image.Rectangle) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, highlightColor)
		img.SetRGBA(x, r.Max.Y-1, highlightColor)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, highlightColor)
		img.SetRGBA(r.Max.X-1, y, highlightColor)
	}
}
