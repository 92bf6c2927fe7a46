package internal

import (
	"bytes"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders SVG data to an RGBA image of the given size.
// The icon is scaled to fill the target rectangle.
func RasterizeSVG(data []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return img, nil
}

// SVGTexture rasterizes SVG data and uploads it as an SDL texture.
// Used for cursor and focus ring icons in render sinks.
func SVGTexture(renderer *sdl.Renderer, data []byte, width, height int) (*sdl.Texture, error) {
	img, err := RasterizeSVG(data, width, height)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(width), int32(height),
		32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
