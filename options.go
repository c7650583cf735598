package simview

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/simview/stage"
	"github.com/gogpu/simview/texture"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Offscreen rendering with defaults
//	r, err := simview.New(800, 600)
//
//	// Custom target and debug boxes (dependency injection)
//	r, err := simview.New(800, 600,
//	    simview.WithTarget(windowTarget),
//	    simview.WithDebug(true))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	target    stage.Target
	targetSet bool

	styles    StyleSet
	stylesSet bool

	loader *texture.Loader

	debug    bool
	offset   gg.Vec2
	meta     bool
	metaFace text.Face
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		meta: true, // overlay state is created on demand
	}
}

// WithTarget injects the render target frames are flushed to. Without it
// an offscreen image target of the canvas size is created. Passing nil
// explicitly is an error: New fails with ErrNilTarget.
func WithTarget(t stage.Target) Option {
	return func(o *rendererOptions) {
		o.target = t
		o.targetSet = true
	}
}

// WithStyles replaces the default style table. The table is validated by
// New: every known shape kind needs an entry.
func WithStyles(ss StyleSet) Option {
	return func(o *rendererOptions) {
		o.styles = ss
		o.stylesSet = true
	}
}

// WithDebug enables drawing a bounding box around every view.
func WithDebug(on bool) Option {
	return func(o *rendererOptions) {
		o.debug = on
	}
}

// WithOffset shifts all body drawing by a fixed pixel offset.
func WithOffset(x, y float64) Option {
	return func(o *rendererOptions) {
		o.offset = gg.V2(x, y)
	}
}

// WithMeta enables or disables the FPS/IPF overlay. It is enabled by
// default but stays invisible until a font face is supplied.
func WithMeta(on bool) Option {
	return func(o *rendererOptions) {
		o.meta = on
	}
}

// WithMetaFace sets the font face the FPS/IPF overlay renders with.
func WithMetaFace(face text.Face) Option {
	return func(o *rendererOptions) {
		o.metaFace = face
	}
}

// WithLoader shares a texture loader between renderers, or pre-populates
// one with generated textures. Without it each renderer gets its own.
func WithLoader(l *texture.Loader) Option {
	return func(o *rendererOptions) {
		o.loader = l
	}
}
