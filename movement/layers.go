package movement

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

// MaxLayers is the number of distinct collision layers a Layers set can hold.
const MaxLayers = 32

// Layers is a set of collision categories. Bit i set means layer i is a member.
type Layers uint32

// LayerBit returns the set containing only layer i. Out of range indices
// return the empty set.
func LayerBit(i int) Layers {
	if i < 0 || i >= MaxLayers {
		return 0
	}
	return Layers(1) << uint(i)
}

// With returns l with every layer in others added.
func (l Layers) With(others ...Layers) Layers {
	for _, o := range others {
		l |= o
	}
	return l
}

// Has reports whether every layer in o is also in l.
func (l Layers) Has(o Layers) bool {
	return o != 0 && l&o == o
}

// Intersects reports whether l and o share at least one layer.
func (l Layers) Intersects(o Layers) bool {
	return l&o != 0
}

func (l Layers) Empty() bool {
	return l == 0
}

// Indices returns the layer indices in ascending order.
func (l Layers) Indices() []int {
	out := make([]int, 0, bits.OnesCount32(uint32(l)))
	for v := uint32(l); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros32(v))
	}
	return out
}

func (l Layers) String() string {
	if l == 0 {
		return "layers()"
	}
	idx := l.Indices()
	parts := make([]string, len(idx))
	for i, n := range idx {
		parts[i] = strconv.Itoa(n)
	}
	return "layers(" + strings.Join(parts, ",") + ")"
}

var ErrUnknownLayer = errors.New("movement: unknown layer")

// LayerRegistry maps layer names used in prefab and level data to layer bits.
type LayerRegistry struct {
	names map[string]int
}

// DefaultLayerNames is the registry used when prefabs don't declare their own.
var DefaultLayerNames = []string{"default", "ground", "platform", "player", "hazard"}

// NewLayerRegistry assigns consecutive layer indices to names in order.
func NewLayerRegistry(names ...string) (*LayerRegistry, error) {
	if len(names) > MaxLayers {
		return nil, fmt.Errorf("movement: %d layer names exceed the %d layer limit", len(names), MaxLayers)
	}
	r := &LayerRegistry{names: make(map[string]int, len(names))}
	for i, name := range names {
		key := normalizeLayerName(name)
		if key == "" {
			return nil, fmt.Errorf("movement: layer %d has an empty name", i)
		}
		if _, dup := r.names[key]; dup {
			return nil, fmt.Errorf("movement: duplicate layer name %q", name)
		}
		r.names[key] = i
	}
	return r, nil
}

// Lookup returns the single-layer set registered under name.
func (r *LayerRegistry) Lookup(name string) (Layers, bool) {
	if r == nil {
		return 0, false
	}
	i, ok := r.names[normalizeLayerName(name)]
	if !ok {
		return 0, false
	}
	return LayerBit(i), true
}

// Names returns the registered names of every layer in l, sorted by index.
func (r *LayerRegistry) Names(l Layers) []string {
	if r == nil {
		return nil
	}
	type entry struct {
		name string
		idx  int
	}
	var found []entry
	for name, idx := range r.names {
		if l.Has(LayerBit(idx)) {
			found = append(found, entry{name, idx})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].idx < found[j].idx })
	out := make([]string, len(found))
	for i, e := range found {
		out[i] = e.name
	}
	return out
}

// ParseLayers resolves names into a layer set. Unknown names are an error.
func ParseLayers(r *LayerRegistry, names []string) (Layers, error) {
	var l Layers
	for _, name := range names {
		bit, ok := r.Lookup(name)
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownLayer, name)
		}
		l |= bit
	}
	return l, nil
}

func normalizeLayerName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
