package simview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/simview/stage"
	"github.com/gogpu/simview/texture"
)

// Display creation errors.
var (
	// ErrUnknownDisplayType is returned for a DisplayKind CreateDisplay
	// does not recognize.
	ErrUnknownDisplayType = errors.New("simview: unknown display type")

	// ErrAssetsNotLoaded is returned when a movie clip is requested
	// before any texture batch has finished loading.
	ErrAssetsNotLoaded = errors.New("simview: assets not loaded")

	// ErrTextureNotFound is returned when a named texture is not
	// registered with the renderer's loader.
	ErrTextureNotFound = errors.New("simview: texture not found")
)

// DisplayKind selects what CreateDisplay builds.
type DisplayKind uint8

const (
	// DisplaySprite is a single-texture display node.
	DisplaySprite DisplayKind = iota
	// DisplayMovieClip is a frame-animated display node.
	DisplayMovieClip
)

var displayKindNames = [...]string{
	DisplaySprite:    "sprite",
	DisplayMovieClip: "movieclip",
}

// String returns the kind's name.
func (k DisplayKind) String() string {
	if int(k) < len(displayKindNames) {
		return displayKindNames[k]
	}
	return "unknown"
}

// DisplayConfig describes a sprite or movie clip for CreateDisplay.
// Texture names refer to entries in the renderer's loader. Nil optional
// fields keep the node defaults.
type DisplayConfig struct {
	// Texture is the sprite's texture name. Ignored for movie clips.
	Texture string

	// Frames are the movie clip's frame texture names, in play order.
	Frames []string

	// FPS overrides the movie clip's playback rate when positive.
	FPS float64

	// Anchor places the texture relative to the node origin, each axis
	// in [0, 1]; {0.5, 0.5} centers it.
	Anchor *gg.Vec2

	// Size forces a destination size in pixels.
	Size *gg.Vec2

	// Container receives the node; nil means the stage root.
	Container *stage.Container
}

// CreateDisplay builds a textured display node, attaches it and returns
// it. Sprites resolve their texture immediately; movie clips additionally
// require a finished load batch, so animation frames are never resolved
// against a half-loaded atlas. Failures attach nothing.
func (r *Renderer) CreateDisplay(kind DisplayKind, cfg DisplayConfig) (stage.Node, error) {
	var n stage.Node

	switch kind {
	case DisplaySprite:
		tex, ok := r.loader.Texture(cfg.Texture)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrTextureNotFound, cfg.Texture)
		}
		sp := stage.NewSprite(tex)
		applySpriteConfig(sp, cfg)
		n = sp

	case DisplayMovieClip:
		if !r.loader.Loaded() {
			return nil, ErrAssetsNotLoaded
		}
		if len(cfg.Frames) == 0 {
			return nil, fmt.Errorf("simview: movie clip needs at least one frame")
		}
		frames := make([]*texture.Texture, 0, len(cfg.Frames))
		for _, name := range cfg.Frames {
			tex, ok := r.loader.Texture(name)
			if !ok {
				return nil, fmt.Errorf("%w: frame %q", ErrTextureNotFound, name)
			}
			frames = append(frames, tex)
		}
		mc := stage.NewMovieClip(frames)
		applySpriteConfig(&mc.Sprite, cfg)
		if cfg.FPS > 0 {
			mc.SetFPS(cfg.FPS)
		}
		n = mc

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDisplayType, kind)
	}

	parent := cfg.Container
	if parent == nil {
		parent = r.stage.Root()
	}
	parent.AddChild(n)
	Logger().Debug("simview: display created", "kind", kind)
	return n, nil
}

// applySpriteConfig applies the optional anchor and size.
func applySpriteConfig(sp *stage.Sprite, cfg DisplayConfig) {
	if cfg.Anchor != nil {
		sp.SetAnchor(cfg.Anchor.X, cfg.Anchor.Y)
	}
	if cfg.Size != nil {
		sp.SetSize(cfg.Size.X, cfg.Size.Y)
	}
}

// LoadTextures starts an asynchronous texture batch load on the
// renderer's loader. done runs exactly once, from the loader goroutine,
// with the batch error or nil; after a nil error the textures are
// registered and movie clips may be created. Validation failures are
// returned synchronously and done never runs.
func (r *Renderer) LoadTextures(sources []string, done func(error)) error {
	return r.loader.Load(sources, done)
}
