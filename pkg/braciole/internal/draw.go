package internal

import "github.com/veandco/go-sdl2/sdl"

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// DrawRoundedRect fills a rectangle with rounded corners.
// The radius is clamped so the corner arcs never overlap.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	if radius > rect.W/2 {
		radius = rect.W / 2
	}
	if radius > rect.H/2 {
		radius = rect.H / 2
	}

	r, g, b, a, _ := renderer.GetDrawColor()
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	// Center band, full width
	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})

	// Top and bottom bands between the corner arcs
	renderer.FillRect(&sdl.Rect{X: rect.X + radius, Y: rect.Y, W: rect.W - 2*radius, H: radius})
	renderer.FillRect(&sdl.Rect{X: rect.X + radius, Y: rect.Y + rect.H - radius, W: rect.W - 2*radius, H: radius})

	// Corner arcs drawn as horizontal spans
	for dy := int32(0); dy < radius; dy++ {
		// Horizontal half-width of the corner circle at this scanline
		h := radius - dy
		var span int32
		for (span+1)*(span+1)+h*h <= radius*radius {
			span++
		}

		topY := rect.Y + dy
		bottomY := rect.Y + rect.H - 1 - dy

		renderer.DrawLine(rect.X+radius-span, topY, rect.X+radius, topY)
		renderer.DrawLine(rect.X+rect.W-radius-1, topY, rect.X+rect.W-radius-1+span, topY)
		renderer.DrawLine(rect.X+radius-span, bottomY, rect.X+radius, bottomY)
		renderer.DrawLine(rect.X+rect.W-radius-1, bottomY, rect.X+rect.W-radius-1+span, bottomY)
	}

	renderer.SetDrawColor(r, g, b, a)
}
