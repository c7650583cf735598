package texture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
)

// ErrEmptyBatch is returned by Load when the source batch is empty or
// contains a blank entry.
var ErrEmptyBatch = errors.New("texture: empty load batch")

// Loader decodes image files and sheet manifests into a texture registry.
//
// Loading is the one asynchronous boundary of the rendering stack: Load
// validates its batch synchronously, then decodes on a single goroutine
// and invokes the completion callback exactly once when every source is
// ready. There is no partial progress, no cancellation and no timeout; a
// failed batch registers nothing.
//
// Texture and Loaded are safe to call from the frame loop while a load is
// in flight.
type Loader struct {
	mu       sync.Mutex
	textures map[string]*Texture
	loaded   bool
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{textures: make(map[string]*Texture)}
}

// Load decodes a batch of sources in the background and calls done(nil)
// once all of them are registered, or done(err) with the first failure.
//
// A source ending in .yaml or .yml is a sheet manifest (see LoadManifest's
// format); anything else is decoded as an image and registered under its
// base name without extension. A nil done is allowed.
//
// The returned error covers batch validation only: an empty batch or a
// blank path fails immediately and done is never called.
func (l *Loader) Load(sources []string, done func(error)) error {
	if len(sources) == 0 {
		return ErrEmptyBatch
	}
	for i, src := range sources {
		if strings.TrimSpace(src) == "" {
			return fmt.Errorf("%w: blank path at index %d", ErrEmptyBatch, i)
		}
	}

	go func() {
		start := time.Now()
		batch, err := decodeBatch(sources)
		if err != nil {
			logger().Debug("texture: batch failed", "err", err)
			if done != nil {
				done(err)
			}
			return
		}

		l.mu.Lock()
		for _, t := range batch {
			l.textures[t.name] = t
		}
		l.loaded = true
		l.mu.Unlock()

		logger().Debug("texture: batch loaded",
			"sources", len(sources),
			"textures", len(batch),
			"elapsed", time.Since(start))
		if done != nil {
			done(nil)
		}
	}()
	return nil
}

// decodeBatch decodes every source up front so a failure registers
// nothing.
func decodeBatch(sources []string) ([]*Texture, error) {
	var batch []*Texture
	for _, src := range sources {
		switch strings.ToLower(filepath.Ext(src)) {
		case ".yaml", ".yml":
			frames, err := LoadManifest(src)
			if err != nil {
				return nil, err
			}
			batch = append(batch, frames...)
		case ".bmp":
			// gg decodes PNG, JPEG and WebP itself; BMP goes through
			// x/image.
			f, err := os.Open(src)
			if err != nil {
				return nil, fmt.Errorf("texture: load %s: %w", src, err)
			}
			img, err := bmp.Decode(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("texture: decode %s: %w", src, err)
			}
			batch = append(batch, FromImage(baseName(src), img))
		default:
			buf, err := gg.LoadImage(src)
			if err != nil {
				return nil, fmt.Errorf("texture: load %s: %w", src, err)
			}
			batch = append(batch, New(baseName(src), buf))
		}
	}
	return batch, nil
}

// baseName strips directory and extension: "assets/ball.png" -> "ball".
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Loaded reports whether at least one batch has fully completed.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Texture fetches a registered texture by name.
func (l *Loader) Texture(name string) (*Texture, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.textures[name]
	return t, ok
}

// Register adds a texture directly, for frames produced programmatically
// (SliceGrid, generated images). It does not mark the loader as loaded;
// only a completed Load batch does that.
func (l *Loader) Register(t *Texture) {
	if t == nil {
		return
	}
	l.mu.Lock()
	l.textures[t.name] = t
	l.mu.Unlock()
}

// Names returns the registered texture names in no particular order.
func (l *Loader) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]string, 0, len(l.textures))
	for name := range l.textures {
		names = append(names, name)
	}
	return names
}
