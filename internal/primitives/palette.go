package primitives

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// BuildingStyle is the YAML definition of how one building category looks.
// Size is the body footprint (x, z) and wall height; the roof sits on top.
type BuildingStyle struct {
	Body       string     `yaml:"body"`
	Roof       string     `yaml:"roof"`
	Size       [3]float32 `yaml:"size"`
	RoofHeight float32    `yaml:"roof_height"`
	Emissive   float32    `yaml:"emissive,omitempty"`
}

// PropStyle is the YAML definition of a scatter kind: its shape and one color per variant.
type PropStyle struct {
	Shape    string   `yaml:"shape"`
	Size     float32  `yaml:"size"`
	Variants []string `yaml:"variants"`
}

// PaletteDef is the on-disk palette (e.g. assets/primitives/palette.yaml).
type PaletteDef struct {
	Ground    string                   `yaml:"ground"`
	Sky       string                   `yaml:"sky"`
	Cloud     string                   `yaml:"cloud"`
	Buildings map[string]BuildingStyle `yaml:"buildings"`
	Props     map[string]PropStyle     `yaml:"props"`
}

// DefaultCategory is the building style used for unknown categories.
const DefaultCategory = "default"

// DefaultPalette returns the built-in palette used when no file is present.
func DefaultPalette() PaletteDef {
	return PaletteDef{
		Ground: "#6f9a4a",
		Sky:    "#9fcbe8",
		Cloud:  "#f4f6f8",
		Buildings: map[string]BuildingStyle{
			DefaultCategory: {Body: "#d9c7a7", Roof: "#a4493d", Size: [3]float32{8, 8, 6}, RoofHeight: 2.5},
			"shop":          {Body: "#e8d5b0", Roof: "#3d6ea4", Size: [3]float32{7, 7, 5}, RoofHeight: 2},
			"landmark":      {Body: "#c8c2b8", Roof: "#6b5b95", Size: [3]float32{6, 6, 12}, RoofHeight: 4, Emissive: 0.05},
			"home":          {Body: "#f0e6d2", Roof: "#8c3b2e", Size: [3]float32{6, 7, 5}, RoofHeight: 2.5},
		},
		Props: map[string]PropStyle{
			"tree":   {Shape: "cylinder", Size: 4, Variants: []string{"#3f7a3a", "#4d8c40", "#2f6b35"}},
			"rock":   {Shape: "sphere", Size: 1.2, Variants: []string{"#8a8a87", "#9c978f"}},
			"flower": {Shape: "sphere", Size: 0.3, Variants: []string{"#f2c94c", "#eb5757", "#bb6bd9"}},
			"grass":  {Shape: "cube", Size: 0.4, Variants: []string{"#5e9c3f", "#71ad4c"}},
		},
	}
}

// LoadPalette reads a YAML palette from path and fills anything it omits from DefaultPalette.
// A missing file returns the defaults and no error.
func LoadPalette(path string) (PaletteDef, error) {
	def := DefaultPalette()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return def, fmt.Errorf("primitives: %w", err)
	}
	var p PaletteDef
	if err := yaml.Unmarshal(data, &p); err != nil {
		return def, fmt.Errorf("primitives: parse %s: %w", path, err)
	}
	if p.Ground == "" {
		p.Ground = def.Ground
	}
	if p.Sky == "" {
		p.Sky = def.Sky
	}
	if p.Cloud == "" {
		p.Cloud = def.Cloud
	}
	if p.Buildings == nil {
		p.Buildings = map[string]BuildingStyle{}
	}
	for k, v := range def.Buildings {
		if _, ok := p.Buildings[k]; !ok {
			p.Buildings[k] = v
		}
	}
	if p.Props == nil {
		p.Props = map[string]PropStyle{}
	}
	for k, v := range def.Props {
		if _, ok := p.Props[k]; !ok {
			p.Props[k] = v
		}
	}
	return p, nil
}

// Building returns the style for category, falling back to DefaultCategory.
func (p PaletteDef) Building(category string) BuildingStyle {
	if s, ok := p.Buildings[strings.ToLower(category)]; ok {
		return s
	}
	return p.Buildings[DefaultCategory]
}

// PropColor returns the color of variant v of kind. Out-of-range variants wrap.
func (p PaletteDef) PropColor(kind string, v int) rl.Color {
	s, ok := p.Props[kind]
	if !ok || len(s.Variants) == 0 {
		return rl.Magenta
	}
	if v < 0 {
		v = -v
	}
	return ParseColor(s.Variants[v%len(s.Variants)])
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". Invalid input yields magenta so it stands out.
func ParseColor(s string) rl.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return rl.Magenta
	}
	if len(s) == 6 {
		s += "ff"
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rl.Magenta
	}
	return rl.NewColor(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n))
}
