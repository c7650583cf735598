// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stage

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Label draws a single line of text with its baseline at the node origin.
// Without a font face the label draws nothing, matching the gg text
// contract.
type Label struct {
	node
	text  string
	face  text.Face
	color gg.RGBA
}

// NewLabel creates a label with the given text, black, no face.
func NewLabel(s string) *Label {
	return &Label{node: newNode(), text: s, color: gg.Black}
}

// SetText replaces the label text. Setting the same text is a no-op.
func (l *Label) SetText(s string) {
	if s == l.text {
		return
	}
	l.text = s
}

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// SetFace sets the font face used for drawing.
func (l *Label) SetFace(f text.Face) { l.face = f }

// Face returns the font face, which may be nil.
func (l *Label) Face() text.Face { return l.face }

// SetColor sets the text color.
func (l *Label) SetColor(c gg.RGBA) { l.color = c }

func (l *Label) draw(c *gg.Context) error {
	if l.face == nil || l.text == "" {
		return nil
	}
	c.SetFont(l.face)
	c.SetColor(fade(l.color, l.alpha).Color())
	c.DrawString(l.text, 0, 0)
	return nil
}

func (l *Label) localBounds() (gg.Vec2, gg.Vec2, bool) {
	// Text extents need a face and a measurement pass; labels stay out of
	// debug bounds.
	return gg.Vec2{}, gg.Vec2{}, false
}
