package simview

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/simview/stage"
)

// metaOverlayColor is the metrics text color.
var metaOverlayColor = gg.RGBA{R: 0.15, G: 0.15, B: 0.15, A: 1}

// metaOverlay draws the FPS and IPF readouts in the top-left corner.
// Labels exist only after the first update; every later update just
// rewrites their text, so calling it each frame is cheap and idempotent.
type metaOverlay struct {
	fps *stage.Label
	ipf *stage.Label
}

// update creates the labels under parent on first use, then refreshes
// them from m. Without a face the labels stay invisible but keep their
// text current, so supplying a face later shows live numbers at once.
func (mo *metaOverlay) update(parent *stage.Container, face text.Face, m Meta) {
	if mo.fps == nil {
		mo.fps = newMetaLabel(parent, face, 8, 16)
		mo.ipf = newMetaLabel(parent, face, 8, 32)
	}
	mo.fps.SetText(fmt.Sprintf("FPS: %.2f", m.FPS))
	mo.ipf.SetText(fmt.Sprintf("IPF: %d", m.IPF))
}

func newMetaLabel(parent *stage.Container, face text.Face, x, y float64) *stage.Label {
	l := stage.NewLabel("")
	l.SetFace(face)
	l.SetColor(metaOverlayColor)
	l.SetPosition(x, y)
	parent.AddChild(l)
	return l
}
