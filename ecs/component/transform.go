package component

// Scale is a per-axis scale. A negative X mirrors the entity horizontally.
type Scale struct {
	X float64
	Y float64
}

// Transform is the render-facing pose of an entity in y-up world units. It
// is the orientation sink of a movement controller.
type Transform struct {
	X        float64
	Y        float64
	Scale    Scale
	Rotation float64
}

func (t *Transform) ScaleX() float64 { return t.Scale.X }
func (t *Transform) SetScaleX(x float64) { t.Scale.X = x }

var TransformComponent = NewComponent[Transform]()
