package texture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// manifest is the YAML form of a sprite sheet description:
//
//	image: sheet.png
//	frames:
//	  - {name: walk0, x: 0, y: 0, w: 32, h: 32}
//	  - {name: walk1, x: 32, y: 0, w: 32, h: 32}
//
// The image path is resolved relative to the manifest file.
type manifest struct {
	Image  string          `yaml:"image"`
	Frames []manifestFrame `yaml:"frames"`
}

type manifestFrame struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
}

// LoadManifest reads a sheet manifest and returns one texture per frame,
// all sharing the sheet's pixel buffer.
func LoadManifest(path string) ([]*Texture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("texture: parse manifest %s: %w", path, err)
	}
	if m.Image == "" {
		return nil, fmt.Errorf("texture: manifest %s has no image", path)
	}
	if len(m.Frames) == 0 {
		return nil, fmt.Errorf("texture: manifest %s has no frames", path)
	}

	imgPath := m.Image
	if !filepath.IsAbs(imgPath) {
		imgPath = filepath.Join(filepath.Dir(path), imgPath)
	}
	buf, err := gg.LoadImage(imgPath)
	if err != nil {
		return nil, fmt.Errorf("texture: load sheet %s: %w", imgPath, err)
	}
	sheet := New(baseName(imgPath), buf)

	frames := make([]*Texture, 0, len(m.Frames))
	for i, f := range m.Frames {
		if f.Name == "" {
			return nil, fmt.Errorf("texture: manifest %s frame %d has no name", path, i)
		}
		if f.W <= 0 || f.H <= 0 {
			return nil, fmt.Errorf("texture: manifest %s frame %q has zero size", path, f.Name)
		}
		frames = append(frames, sheet.Sub(f.Name, image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)))
	}
	return frames, nil
}

// SliceGrid cuts a sheet into row-major fixed-size frames named
// "<sheet>_0", "<sheet>_1", ... Partial cells at the right or bottom edge
// are dropped.
func SliceGrid(sheet *Texture, frameW, frameH int) []*Texture {
	if sheet == nil || frameW <= 0 || frameH <= 0 {
		return nil
	}
	w, h := sheet.Size()
	cols, rows := w/frameW, h/frameH

	var frames []*Texture
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			name := fmt.Sprintf("%s_%d", sheet.Name(), len(frames))
			r := image.Rect(col*frameW, row*frameH, (col+1)*frameW, (row+1)*frameH)
			frames = append(frames, sheet.Sub(name, r))
		}
	}
	return frames
}
