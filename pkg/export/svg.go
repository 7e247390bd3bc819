package export

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
)

// Snapshot colors, matching the demo's palette.
const (
	colorBackground = "#282A36"
	colorScope      = "#6272A4"
	colorElement    = "#44475A"
	colorFocused    = "#50FA7B"
	colorLabel      = "#F8F8F2"
)

// WriteSVG draws the layout snapshot of g to w. Pass focus.NoElem when no
// element should be highlighted.
func WriteSVG(w io.Writer, g *focus.Graph, focused focus.ElemID) {
	f := newFrame(g)
	canvas := svg.New(w)
	canvas.Start(f.width, f.height)
	canvas.Rect(0, 0, f.width, f.height, "fill:"+colorBackground)

	for _, sr := range scopeRects(g) {
		x, y, bw, bh := f.rect(sr.Rect)
		canvas.Rect(int(x)-6, int(y)-6, int(bw)+12, int(bh)+12,
			"fill:none;stroke:"+colorScope+";stroke-width:2;stroke-dasharray:6 3")
	}

	for _, e := range g.ElementIDs() {
		x, y, bw, bh := f.rect(g.Rect(e))
		fill := colorElement
		if e == focused {
			fill = colorFocused
		}
		canvas.Rect(int(x), int(y), int(bw), int(bh), "fill:"+fill+";stroke:"+colorScope)
		if name := g.Name(e); name != "" {
			canvas.Text(int(x+bw/2), int(y+bh/2)+4, name,
				"fill:"+colorLabel+";text-anchor:middle;font-size:11px;font-family:monospace")
		}
	}

	canvas.End()
}
