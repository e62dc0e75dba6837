package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/movement"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoGroundLayers = errors.New("prefabs: movement.ground_layers is empty")
	ErrBadCollider    = errors.New("prefabs: collider needs a positive width and height")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ActorSpec describes a controllable actor.
type ActorSpec struct {
	Name string `yaml:"name"`
	// Layers names the collision layers in bit order. Empty selects
	// movement.DefaultLayerNames.
	Layers    []string      `yaml:"layers"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Movement  MovementSpec  `yaml:"movement"`
	Render    RenderSpec    `yaml:"render"`
	Script    string        `yaml:"script"`
}

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type ColliderSpec struct {
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	Friction   float64  `yaml:"friction"`
	Elasticity float64  `yaml:"elasticity"`
	Layers     []string `yaml:"layers"`
}

// MovementSpec maps onto movement.Config. Zero speeds select the defaults.
type MovementSpec struct {
	MoveSpeed    float64  `yaml:"move_speed"`
	JumpImpulse  float64  `yaml:"jump_impulse"`
	GravityScale float64  `yaml:"gravity_scale"`
	GroundLayers []string `yaml:"ground_layers"`
}

type RenderSpec struct {
	Fill    YAMLColor `yaml:"fill"`
	Outline YAMLColor `yaml:"outline"`
}

func LoadActorSpec(name string) (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// DecodeActorSpec parses and validates an actor spec from raw YAML.
func DecodeActorSpec(data []byte) (*ActorSpec, error) {
	var spec ActorSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal actor: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *ActorSpec) Validate() error {
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		return ErrBadCollider
	}
	if len(s.Movement.GroundLayers) == 0 {
		return ErrNoGroundLayers
	}
	reg, err := s.Registry()
	if err != nil {
		return err
	}
	if _, err := movement.ParseLayers(reg, s.Movement.GroundLayers); err != nil {
		return fmt.Errorf("prefabs: ground_layers: %w", err)
	}
	if _, err := movement.ParseLayers(reg, s.Collider.Layers); err != nil {
		return fmt.Errorf("prefabs: collider.layers: %w", err)
	}
	return nil
}

func (s *ActorSpec) Registry() (*movement.LayerRegistry, error) {
	names := s.Layers
	if len(names) == 0 {
		names = movement.DefaultLayerNames
	}
	return movement.NewLayerRegistry(names...)
}

// MovementConfig resolves the layer names against reg. Unset values take
// the movement package defaults.
func (s *ActorSpec) MovementConfig(reg *movement.LayerRegistry) (movement.Config, error) {
	ground, err := movement.ParseLayers(reg, s.Movement.GroundLayers)
	if err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: ground_layers: %w", err)
	}
	cfg := movement.DefaultConfig(ground)
	if s.Movement.MoveSpeed != 0 {
		cfg.MovementSpeed = s.Movement.MoveSpeed
	}
	if s.Movement.JumpImpulse != 0 {
		cfg.JumpImpulse = s.Movement.JumpImpulse
	}
	if s.Movement.GravityScale != 0 {
		cfg.GravityScale = s.Movement.GravityScale
	}
	return cfg, nil
}

func (s *ActorSpec) ColliderLayers(reg *movement.LayerRegistry) (movement.Layers, error) {
	return movement.ParseLayers(reg, s.Collider.Layers)
}

// InitialScaleX is the transform's x scale, 1 when unset.
func (s *ActorSpec) InitialScaleX() float64 {
	if s.Transform.ScaleX == 0 {
		return 1
	}
	return s.Transform.ScaleX
}

type YAMLColor struct {
	color.Color
}

// Or returns c, or fallback when the color was not set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
