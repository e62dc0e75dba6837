package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/movement"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrEmptyLevel = errors.New("levels: level has no ground")

// Level is a static scene in y-up world units. Rect X and Y are the
// bottom-left corner. A level without gravity gets common.Gravity.
type Level struct {
	Name    string  `json:"name"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Gravity float64 `json:"gravity"`
	Spawn   Point   `json:"spawn"`
	Ground  []Rect  `json:"ground"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Rect struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	W      float64  `json:"w"`
	H      float64  `json:"h"`
	Layers []string `json:"layers"`
}

// Load reads levels/<name>.json from disk if present, then from the
// embedded set.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, ".json")
	}
	return lvl, nil
}

func Decode(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	if lvl.Gravity == 0 {
		lvl.Gravity = common.Gravity
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: invalid size %vx%v", l.Width, l.Height)
	}
	if len(l.Ground) == 0 {
		return ErrEmptyLevel
	}
	for i, r := range l.Ground {
		if r.W <= 0 || r.H <= 0 {
			return fmt.Errorf("levels: ground %d has invalid size %vx%v", i, r.W, r.H)
		}
		if len(r.Layers) == 0 {
			return fmt.Errorf("levels: ground %d has no layers", i)
		}
	}
	return nil
}

// RectLayers resolves the layer names of r.
func RectLayers(reg *movement.LayerRegistry, r Rect) (movement.Layers, error) {
	return movement.ParseLayers(reg, r.Layers)
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	return out
}

func cleanLevelPath(name string) string {
	s := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}
