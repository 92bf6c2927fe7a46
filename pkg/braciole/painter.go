package braciole

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// GridPainter is an SDL render sink for a GridFocusController. It draws the
// grid cells, a rounded highlight on the focused cell, an optional SVG
// cursor icon, and a localized footer hint line.
//
// The painter owns no navigation state: it reads the controller it is
// attached to and repaints whatever that reports. All visual policy
// (colors, highlight shape) comes from the active theme.
type GridPainter struct {
	renderer   *sdl.Renderer
	font       *ttf.Font
	loc        *Localizer
	margins    internal.Padding
	labels     *internal.TextureCache
	cursor     *sdl.Texture
	cursorSize int32
	controller *GridFocusController
	lastChange FocusChange
}

// NewGridPainter creates a painter drawing with the given renderer and font.
// A nil localizer suppresses the footer hint line.
func NewGridPainter(renderer *sdl.Renderer, font *ttf.Font, loc *Localizer) *GridPainter {
	return &GridPainter{
		renderer:   renderer,
		font:       font,
		loc:        loc,
		margins:    internal.UniformPadding(20),
		labels:     internal.NewTextureCache(),
		lastChange: FocusChange{Index: -1, PrevIndex: -1},
	}
}

// Attach subscribes the painter to a controller's focus-changed
// notifications. A painter renders one controller at a time.
func (p *GridPainter) Attach(c *GridFocusController) {
	p.controller = c
	c.OnFocusChanged(func(fc FocusChange) {
		p.lastChange = fc
	})
}

// LastChange reports the most recent focus change seen by the painter.
// Index and PrevIndex are -1 until the attached controller binds items.
func (p *GridPainter) LastChange() FocusChange {
	return p.lastChange
}

// SetCursorSVG rasterizes an SVG icon drawn centered over the focused cell.
func (p *GridPainter) SetCursorSVG(data []byte, size int) error {
	texture, err := internal.SVGTexture(p.renderer, data, size, size)
	if err != nil {
		return err
	}

	if p.cursor != nil {
		p.cursor.Destroy()
	}
	p.cursor = texture
	p.cursorSize = int32(size)
	return nil
}

// Render draws the attached grid. Call once per frame between clearing the
// renderer and presenting.
func (p *GridPainter) Render() {
	c := p.controller
	if c == nil || c.Len() == 0 {
		return
	}

	windowWidth, windowHeight, err := p.renderer.GetOutputSize()
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get render output size", "error", err)
		return
	}

	theme := internal.GetTheme()
	footerHeight := int32(50)

	dims := internal.CalculateGridDimensions(
		windowWidth, windowHeight-footerHeight,
		p.margins, c.Columns(), c.Len(),
	)

	items := c.Items()
	focused := c.FocusedIndex()

	for i := range items {
		cell := dims.CellRect(i)

		if i == focused {
			internal.DrawRoundedRect(p.renderer, &cell, 12, theme.HighlightColor)
			if p.cursor != nil {
				p.renderer.Copy(p.cursor, nil, &sdl.Rect{
					X: cell.X + (cell.W-p.cursorSize)/2,
					Y: cell.Y + (cell.H-p.cursorSize)/2,
					W: p.cursorSize,
					H: p.cursorSize,
				})
			}
		}

		labelColor := theme.TextColor
		if i == focused {
			labelColor = theme.HighlightedTextColor
		}
		p.renderLabelCentered(items[i].Text, labelColor, cell)
	}

	p.renderFooter(windowWidth, windowHeight, footerHeight, theme)
}

// Destroy releases all textures owned by the painter.
func (p *GridPainter) Destroy() {
	p.labels.Destroy()
	if p.cursor != nil {
		p.cursor.Destroy()
		p.cursor = nil
	}
}

func (p *GridPainter) renderLabelCentered(text string, color sdl.Color, cell sdl.Rect) {
	if text == "" {
		return
	}

	texture := p.labelTexture(text, color)
	if texture == nil {
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	w = internal.Min32(w, cell.W)
	p.renderer.Copy(texture, &sdl.Rect{X: 0, Y: 0, W: w, H: h}, &sdl.Rect{
		X: cell.X + (cell.W-w)/2,
		Y: cell.Y + (cell.H-h)/2,
		W: w,
		H: h,
	})
}

func (p *GridPainter) labelTexture(text string, color sdl.Color) *sdl.Texture {
	key := internal.LabelKey(text, color)
	if texture := p.labels.Get(key); texture != nil {
		return texture
	}

	surface, err := p.font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := p.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	p.labels.Set(key, texture)
	return texture
}

func (p *GridPainter) renderFooter(windowWidth, windowHeight, footerHeight int32, theme internal.Theme) {
	if p.loc == nil {
		return
	}

	hints := fmt.Sprintf("A %s    B %s", p.loc.T(MsgFooterSelect), p.loc.T(MsgFooterBack))

	texture := p.labelTexture(hints, theme.HintColor)
	if texture == nil {
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	p.renderer.Copy(texture, nil, &sdl.Rect{
		X: (windowWidth - w) / 2,
		Y: windowHeight - footerHeight + (footerHeight-h)/2,
		W: w,
		H: h,
	})
}
