// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stage

import (
	"testing"
)

func TestLabel_Text(t *testing.T) {
	l := NewLabel("fps")
	if l.Text() != "fps" {
		t.Errorf("Text() = %q, want %q", l.Text(), "fps")
	}

	l.SetText("ipf")
	if l.Text() != "ipf" {
		t.Errorf("Text() = %q after SetText, want %q", l.Text(), "ipf")
	}

	l.SetText("ipf")
	if l.Text() != "ipf" {
		t.Errorf("Text() = %q after same-text SetText, want %q", l.Text(), "ipf")
	}
}

func TestLabel_DrawWithoutFace(t *testing.T) {
	l := NewLabel("invisible")
	l.SetPosition(4, 8)

	st := New(16, 16)
	st.Root().AddChild(l)

	target := NewImageTarget(16, 16)
	if err := st.Flush(target); err != nil {
		t.Fatalf("Flush() = %v", err)
	}

	// No face: the frame must stay untouched background.
	img := target.Snapshot()
	for _, p := range [][2]int{{4, 8}, {8, 8}, {1, 1}} {
		r, g, b, _ := img.At(p[0], p[1]).RGBA()
		if r < 0xF000 || g < 0xF000 || b < 0xF000 {
			t.Fatalf("pixel (%d, %d) = (%x, %x, %x), want white", p[0], p[1], r, g, b)
		}
	}
}
