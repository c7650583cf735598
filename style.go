package simview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ErrMissingStyle is returned by StyleSet.Validate when a known shape
// kind has no entry.
var ErrMissingStyle = errors.New("simview: style table is missing a shape")

// Style holds the visual parameters for one shape kind.
//
// An AngleIndicator with zero alpha disables the rotation mark; any other
// color draws a radial tick from the shape center so spin is visible.
type Style struct {
	Fill           gg.RGBA
	Stroke         gg.RGBA
	LineWidth      float64
	AngleIndicator gg.RGBA
}

// StyleSet maps every shape kind to its style, plus the frame background.
type StyleSet struct {
	Background gg.RGBA
	Shapes     map[ShapeKind]Style
}

// DefaultStyles returns a complete style table: muted blue circles, slate
// polygons, red rotation ticks, white background.
func DefaultStyles() StyleSet {
	stroke := gg.RGB(0.08, 0.17, 0.25)
	tick := gg.RGB(0.83, 0.27, 0.27)
	return StyleSet{
		Background: gg.White,
		Shapes: map[ShapeKind]Style{
			ShapeCircle: {
				Fill:           gg.RGB(0.11, 0.42, 0.60),
				Stroke:         stroke,
				LineWidth:      1,
				AngleIndicator: tick,
			},
			ShapeConvexPolygon: {
				Fill:           gg.RGB(0.21, 0.30, 0.33),
				Stroke:         stroke,
				LineWidth:      1,
				AngleIndicator: tick,
			},
		},
	}
}

// Validate checks that every known shape kind has an entry with a sane
// stroke width. Renderer construction runs this, so a style gap fails at
// startup instead of at first draw.
func (ss StyleSet) Validate() error {
	for _, k := range shapeKinds {
		st, ok := ss.Shapes[k]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingStyle, k)
		}
		if st.LineWidth < 0 {
			return fmt.Errorf("simview: negative stroke width %v for %s", st.LineWidth, k)
		}
	}
	return nil
}

// styleFor looks up the entry for a kind.
func (ss StyleSet) styleFor(k ShapeKind) (Style, bool) {
	st, ok := ss.Shapes[k]
	return st, ok
}
