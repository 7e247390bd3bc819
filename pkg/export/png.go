package export

import (
	"fmt"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
)

// WritePNG draws the layout snapshot of g to a PNG file at path. Pass
// focus.NoElem when no element should be highlighted.
func WritePNG(path string, g *focus.Graph, focused focus.ElemID) error {
	f := newFrame(g)
	dc := gg.NewContext(f.width, f.height)

	dc.SetHexColor(colorBackground)
	dc.Clear()

	dc.SetLineWidth(2)
	for _, sr := range scopeRects(g) {
		x, y, w, h := f.rect(sr.Rect)
		dc.SetHexColor(colorScope)
		dc.DrawRectangle(x-6, y-6, w+12, h+12)
		dc.Stroke()
	}

	dc.SetFontFace(basicfont.Face7x13)
	for _, e := range g.ElementIDs() {
		x, y, w, h := f.rect(g.Rect(e))
		if e == focused {
			dc.SetHexColor(colorFocused)
		} else {
			dc.SetHexColor(colorElement)
		}
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
		dc.SetHexColor(colorScope)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()
		if name := g.Name(e); name != "" {
			dc.SetHexColor(colorLabel)
			dc.DrawStringAnchored(name, x+w/2, y+h/2, 0.5, 0.5)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return nil
}
