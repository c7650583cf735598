package texture

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

// loadWait runs a Load batch and waits for its completion callback.
func loadWait(t *testing.T, l *Loader, sources []string) error {
	t.Helper()
	errc := make(chan error, 1)
	if err := l.Load(sources, func(err error) { errc <- err }); err != nil {
		t.Fatalf("Load() validation failed: %v", err)
	}
	select {
	case err := <-errc:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("load batch timed out")
		return nil
	}
}

func TestLoader_LoadValidation(t *testing.T) {
	l := NewLoader()

	if err := l.Load(nil, nil); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("Load(nil) = %v, want ErrEmptyBatch", err)
	}

	err := l.Load([]string{"ok.png", "  "}, func(error) {
		t.Error("done must not run for a rejected batch")
	})
	if !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("Load with blank entry = %v, want ErrEmptyBatch", err)
	}
	if !strings.Contains(err.Error(), "index 1") {
		t.Errorf("error %q should name the blank index", err)
	}
}

func TestLoader_LoadBatch(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "ball.png", solidImage(4, 4, red))
	b := writePNG(t, dir, "box.png", solidImage(2, 6, red))

	l := NewLoader()
	if l.Loaded() {
		t.Fatal("fresh loader should not report loaded")
	}

	if err := loadWait(t, l, []string{a, b}); err != nil {
		t.Fatalf("batch completion = %v, want nil", err)
	}

	if !l.Loaded() {
		t.Error("Loaded() = false after a completed batch")
	}
	tex, ok := l.Texture("ball")
	if !ok {
		t.Fatal("texture \"ball\" not registered")
	}
	w, h := tex.Size()
	if w != 4 || h != 4 {
		t.Errorf("ball Size() = %dx%d, want 4x4", w, h)
	}

	names := l.Names()
	slices.Sort(names)
	if !slices.Equal(names, []string{"ball", "box"}) {
		t.Errorf("Names() = %v, want [ball box]", names)
	}
}

func TestLoader_LoadFailureRegistersNothing(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", solidImage(2, 2, red))
	missing := filepath.Join(dir, "missing.png")

	l := NewLoader()
	err := loadWait(t, l, []string{good, missing})
	if err == nil {
		t.Fatal("batch with a missing file should fail")
	}

	if l.Loaded() {
		t.Error("failed batch must not mark the loader loaded")
	}
	if _, ok := l.Texture("good"); ok {
		t.Error("failed batch must register nothing, even decodable sources")
	}
}

func TestLoader_LoadManifestBatch(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "sheet.png", solidImage(4, 2, red))
	manifest := "image: sheet.png\nframes:\n" +
		"  - {name: f0, x: 0, y: 0, w: 2, h: 2}\n" +
		"  - {name: f1, x: 2, y: 0, w: 2, h: 2}\n"
	mpath := filepath.Join(dir, "sheet.yml")
	if err := os.WriteFile(mpath, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	if err := loadWait(t, l, []string{mpath}); err != nil {
		t.Fatalf("manifest batch = %v, want nil", err)
	}

	for _, name := range []string{"f0", "f1"} {
		if _, ok := l.Texture(name); !ok {
			t.Errorf("frame %q not registered", name)
		}
	}
}

func TestLoader_NilDone(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "dot.png", solidImage(1, 1, red))

	l := NewLoader()
	if err := l.Load([]string{path}, nil); err != nil {
		t.Fatalf("Load() = %v", err)
	}

	// Loaded flips once the background decode finishes.
	deadline := time.Now().Add(5 * time.Second)
	for !l.Loaded() {
		if time.Now().After(deadline) {
			t.Fatal("loader never reported loaded")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLoader_Register(t *testing.T) {
	l := NewLoader()
	tex := FromImage("gen", solidImage(2, 2, color.RGBA{G: 255, A: 255}))

	l.Register(tex)
	got, ok := l.Texture("gen")
	if !ok || got != tex {
		t.Fatal("registered texture not found")
	}
	if l.Loaded() {
		t.Error("Register must not mark the loader loaded")
	}

	l.Register(nil)
	if len(l.Names()) != 1 {
		t.Error("Register(nil) should be a no-op")
	}
}
