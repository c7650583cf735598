package simview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/simview/stage"
	"github.com/gogpu/simview/texture"
)

// Renderer construction errors.
var (
	// ErrNilTarget is returned by New when WithTarget(nil) is passed:
	// the injected backend target is required to be real.
	ErrNilTarget = errors.New("simview: nil render target")

	// ErrBadSize is returned by New for non-positive canvas dimensions.
	ErrBadSize = errors.New("simview: canvas size must be positive")
)

// debugBoxColor outlines view bounding boxes in debug mode.
var debugBoxColor = gg.RGBA{R: 1, G: 0.45, B: 0.1, A: 0.9}

// BodyView pairs a live body's state with the view that draws it.
// The host rebuilds the State every frame; the View is the handle
// CreateView (or CreateDisplay) returned once.
type BodyView struct {
	View  stage.Node
	State State
}

// Meta is the host's per-frame metrics record. Interpolation is the
// fraction of a physics step elapsed since the last integration; the
// frame driver hands it to every view update. Zero means "draw the
// snapshots as they are".
type Meta struct {
	FPS           float64
	IPF           int
	Interpolation float64
}

// Renderer adapts a physics host to the gg display stack: it creates one
// view per body, repositions every view each frame with sub-step
// interpolation, and composites the display tree to its target.
//
// A Renderer and everything it owns belong to the host's frame loop.
// Only texture loading happens off that loop.
type Renderer struct {
	stage  *stage.Stage
	target stage.Target
	styles StyleSet
	loader *texture.Loader

	debug      bool
	debugLayer *stage.Graphics

	metaOn   bool
	metaFace text.Face
	meta     metaOverlay
}

// New creates a renderer with a width x height canvas.
//
// Without WithTarget frames go to an offscreen image target. The style
// table (default or injected) is validated here: a missing shape entry
// fails construction instead of the first draw.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}

	cfg := defaultRendererOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.targetSet && cfg.target == nil {
		return nil, ErrNilTarget
	}
	target := cfg.target
	if target == nil {
		target = stage.NewImageTarget(width, height)
	}

	styles := cfg.styles
	if !cfg.stylesSet {
		styles = DefaultStyles()
	}
	if err := styles.Validate(); err != nil {
		return nil, err
	}

	loader := cfg.loader
	if loader == nil {
		loader = texture.NewLoader()
	}

	s := stage.New(width, height)
	s.SetBackground(styles.Background)
	s.SetOffset(cfg.offset.X, cfg.offset.Y)

	r := &Renderer{
		stage:    s,
		target:   target,
		styles:   styles,
		loader:   loader,
		debug:    cfg.debug,
		metaOn:   cfg.meta,
		metaFace: cfg.metaFace,
	}
	Logger().Debug("simview: renderer ready",
		"width", width, "height", height, "debug", cfg.debug)
	return r, nil
}

// Stage returns the display tree the renderer composites.
func (r *Renderer) Stage() *stage.Stage { return r.stage }

// Target returns the injected (or default offscreen) render target.
func (r *Renderer) Target() stage.Target { return r.target }

// Loader returns the texture loader used by the display helpers.
func (r *Renderer) Loader() *texture.Loader { return r.loader }

// Styles returns the validated style table.
func (r *Renderer) Styles() StyleSet { return r.styles }

// SetDebug toggles bounding-box drawing at runtime.
func (r *Renderer) SetDebug(on bool) { r.debug = on }

// Debug reports whether bounding boxes are drawn.
func (r *Renderer) Debug() bool { return r.debug }

// Render draws one frame: reposition every view from its state using
// meta.Interpolation, rebuild the debug layer if enabled, refresh the
// FPS/IPF overlay, then flush the stage to the target.
func (r *Renderer) Render(views []BodyView, meta Meta) error {
	for _, bv := range views {
		if bv.View == nil {
			continue
		}
		UpdateView(bv.View, bv.State, meta.Interpolation)
	}

	r.renderDebug(views)

	if r.metaOn {
		r.meta.update(r.stage.Overlay(), r.metaFace, meta)
	}
	return r.stage.Flush(r.target)
}

// renderDebug rebuilds the bounding-box layer for this frame's views.
// The boxes are axis-aligned: each view's untransformed local bounds
// placed at its rendered position, shifted like the body layer is.
func (r *Renderer) renderDebug(views []BodyView) {
	if !r.debug {
		if r.debugLayer != nil {
			r.debugLayer.Clear()
		}
		return
	}
	if r.debugLayer == nil {
		r.debugLayer = stage.NewGraphics()
		r.stage.Overlay().AddChild(r.debugLayer)
	}

	g := r.debugLayer
	g.Clear()
	g.SetStroke(debugBoxColor, 1)

	off := r.stage.Offset()
	for _, bv := range views {
		if bv.View == nil {
			continue
		}
		lo, hi, ok := stage.Bounds(bv.View)
		if !ok {
			continue
		}
		base := bv.View.Position().Sub(bv.View.Pivot()).Add(off)
		g.MoveTo(base.X+lo.X, base.Y+lo.Y)
		g.LineTo(base.X+hi.X, base.Y+lo.Y)
		g.LineTo(base.X+hi.X, base.Y+hi.Y)
		g.LineTo(base.X+lo.X, base.Y+hi.Y)
		g.ClosePath()
		g.StrokeOnly()
	}
}
