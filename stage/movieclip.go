// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stage

import (
	"github.com/gogpu/simview/texture"
)

// DefaultClipFPS is the playback rate a MovieClip starts with.
const DefaultClipFPS = 12

// MovieClip is a sprite that cycles through a fixed frame sequence.
// It starts on frame 0, stopped; call Play and feed it wall-clock deltas
// via Advance from the frame loop. Playback wraps past the last frame.
type MovieClip struct {
	Sprite
	frames []*texture.Texture
	frame  int
	fps    float64
	acc    float64

	playing bool
}

// NewMovieClip creates a clip from a frame sequence. The sequence must not
// be empty; the caller validates that (the display helpers do).
func NewMovieClip(frames []*texture.Texture) *MovieClip {
	mc := &MovieClip{
		Sprite: Sprite{node: newNode()},
		frames: append([]*texture.Texture(nil), frames...),
		fps:    DefaultClipFPS,
	}
	if len(mc.frames) > 0 {
		mc.tex = mc.frames[0]
	}
	return mc
}

// Play starts frame advancement.
func (mc *MovieClip) Play() { mc.playing = true }

// Stop halts frame advancement; the current frame keeps drawing.
func (mc *MovieClip) Stop() { mc.playing = false }

// Playing reports whether the clip advances on Advance calls.
func (mc *MovieClip) Playing() bool { return mc.playing }

// SetFPS sets the playback rate in frames per second.
// Non-positive rates are ignored.
func (mc *MovieClip) SetFPS(fps float64) {
	if fps > 0 {
		mc.fps = fps
	}
}

// FPS returns the playback rate.
func (mc *MovieClip) FPS() float64 { return mc.fps }

// Frames returns the number of frames in the sequence.
func (mc *MovieClip) Frames() int { return len(mc.frames) }

// Frame returns the current frame index.
func (mc *MovieClip) Frame() int { return mc.frame }

// SetFrame jumps to a frame, wrapping out-of-range indexes into the
// sequence.
func (mc *MovieClip) SetFrame(i int) {
	n := len(mc.frames)
	if n == 0 {
		return
	}
	i %= n
	if i < 0 {
		i += n
	}
	mc.frame = i
	mc.acc = 0
	mc.tex = mc.frames[i]
}

// Advance moves playback forward by dt seconds. Stopped clips ignore it.
func (mc *MovieClip) Advance(dt float64) {
	n := len(mc.frames)
	if !mc.playing || n == 0 || dt <= 0 {
		return
	}
	mc.acc += dt * mc.fps
	steps := int(mc.acc)
	if steps == 0 {
		return
	}
	mc.acc -= float64(steps)
	mc.frame = (mc.frame + steps) % n
	mc.tex = mc.frames[mc.frame]
}
