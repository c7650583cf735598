package simview

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// styleDoc is the YAML form of a StyleSet:
//
//	background: "#ffffff"
//	shapes:
//	  circle:
//	    fill: "#1d6b98"
//	    stroke: "#142b41"
//	    lineWidth: 1
//	    angleIndicator: "#d44545"
//	  convex-polygon:
//	    fill: "#364c54"
//	    stroke: "#142b41"
//	    lineWidth: 1
//
// Colors are hex strings; an omitted angleIndicator means no rotation
// mark. Shape keys must name known kinds.
type styleDoc struct {
	Background string              `yaml:"background"`
	Shapes     map[string]styleEnt `yaml:"shapes"`
}

type styleEnt struct {
	Fill           string  `yaml:"fill"`
	Stroke         string  `yaml:"stroke"`
	LineWidth      float64 `yaml:"lineWidth"`
	AngleIndicator string  `yaml:"angleIndicator"`
}

// LoadStyles reads a style table from a YAML file and validates it.
func LoadStyles(path string) (StyleSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return StyleSet{}, fmt.Errorf("simview: read styles: %w", err)
	}
	var ss StyleSet
	if err := yaml.Unmarshal(raw, &ss); err != nil {
		return StyleSet{}, err
	}
	if err := ss.Validate(); err != nil {
		return StyleSet{}, err
	}
	return ss, nil
}

// UnmarshalYAML decodes the styleDoc form into a StyleSet.
func (ss *StyleSet) UnmarshalYAML(value *yaml.Node) error {
	var doc styleDoc
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("simview: parse styles: %w", err)
	}

	out := StyleSet{
		Background: gg.White,
		Shapes:     make(map[ShapeKind]Style, len(doc.Shapes)),
	}
	if doc.Background != "" {
		c, err := parseColor(doc.Background)
		if err != nil {
			return err
		}
		out.Background = c
	}

	for name, ent := range doc.Shapes {
		kind, ok := kindByName(name)
		if !ok {
			return fmt.Errorf("simview: unknown shape %q in style table", name)
		}
		st := Style{LineWidth: ent.LineWidth}
		var err error
		if st.Fill, err = parseColorDefault(ent.Fill, gg.Transparent); err != nil {
			return err
		}
		if st.Stroke, err = parseColorDefault(ent.Stroke, gg.Transparent); err != nil {
			return err
		}
		if st.AngleIndicator, err = parseColorDefault(ent.AngleIndicator, gg.Transparent); err != nil {
			return err
		}
		out.Shapes[kind] = st
	}

	*ss = out
	return nil
}

// kindByName maps a style-table key back to its ShapeKind.
func kindByName(name string) (ShapeKind, bool) {
	for _, k := range shapeKinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// parseColor parses a hex color string, accepting the formats gg.Hex
// does ("RGB", "RGBA", "RRGGBB", "RRGGBBAA", optional '#') but rejecting
// malformed input instead of defaulting it to black.
func parseColor(s string) (gg.RGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("simview: invalid color %q", s)
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return gg.RGBA{}, fmt.Errorf("simview: invalid color %q", s)
		}
	}
	return gg.Hex(s), nil
}

// parseColorDefault parses a color, mapping the empty string to def.
func parseColorDefault(s string, def gg.RGBA) (gg.RGBA, error) {
	if s == "" {
		return def, nil
	}
	return parseColor(s)
}
