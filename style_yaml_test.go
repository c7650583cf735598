package simview

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeStyles(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStyles(t *testing.T) {
	path := writeStyles(t, `background: "#000000"
shapes:
  circle:
    fill: "#ff0000"
    stroke: "#00ff00"
    lineWidth: 3
    angleIndicator: "#0000ff"
  convex-polygon:
    fill: "#ffffff"
    stroke: "#888888"
    lineWidth: 0.5
`)

	ss, err := LoadStyles(path)
	if err != nil {
		t.Fatalf("LoadStyles() = %v", err)
	}

	if ss.Background.R != 0 || ss.Background.G != 0 || ss.Background.B != 0 {
		t.Errorf("background = %v, want black", ss.Background)
	}

	circle := ss.Shapes[ShapeCircle]
	if circle.Fill.R < 0.99 || circle.Fill.G > 0.01 {
		t.Errorf("circle fill = %v, want red", circle.Fill)
	}
	if circle.LineWidth != 3 {
		t.Errorf("circle lineWidth = %v, want 3", circle.LineWidth)
	}
	if circle.AngleIndicator.A == 0 {
		t.Error("circle angle indicator should be set")
	}

	poly := ss.Shapes[ShapeConvexPolygon]
	if poly.AngleIndicator.A != 0 {
		t.Error("omitted angleIndicator should parse as disabled")
	}
	if math.Abs(poly.LineWidth-0.5) > 1e-10 {
		t.Errorf("polygon lineWidth = %v, want 0.5", poly.LineWidth)
	}
}

func TestLoadStyles_DefaultBackground(t *testing.T) {
	path := writeStyles(t, `shapes:
  circle: {fill: "#fff", stroke: "#000", lineWidth: 1}
  convex-polygon: {fill: "#fff", stroke: "#000", lineWidth: 1}
`)

	ss, err := LoadStyles(path)
	if err != nil {
		t.Fatalf("LoadStyles() = %v", err)
	}
	if ss.Background.R != 1 || ss.Background.G != 1 || ss.Background.B != 1 {
		t.Errorf("omitted background = %v, want white", ss.Background)
	}
}

func TestLoadStyles_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSub string
	}{
		{
			"unknown shape key",
			"shapes:\n  blob: {fill: \"#fff\"}\n",
			"unknown shape",
		},
		{
			"bad color",
			"shapes:\n  circle: {fill: \"#zzzzzz\"}\n",
			"invalid color",
		},
		{
			"wrong color length",
			"shapes:\n  circle: {fill: \"#ff00f\"}\n",
			"invalid color",
		},
		{
			"incomplete table",
			"shapes:\n  circle: {fill: \"#fff\", stroke: \"#000\", lineWidth: 1}\n",
			"missing a shape",
		},
		{
			"not yaml",
			"shapes: [",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeStyles(t, tt.body)
			_, err := LoadStyles(path)
			if err == nil {
				t.Fatal("LoadStyles() = nil error")
			}
			if tt.wantSub != "" && !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadStyles_MissingFile(t *testing.T) {
	if _, err := LoadStyles(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadStyles() = nil for a missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"#fff", false},
		{"fff", false},
		{"#ffff", false},
		{"#a1b2c3", false},
		{"#a1b2c3d4", false},
		{"", true},
		{"#ff", true},
		{"#fffff", true},
		{"#gggggg", true},
		{"red", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := parseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
