package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			dead := ents[c.destroyIndex]
			if !DestroyEntity(w, dead) {
				t.Fatalf("DestroyEntity should return true for a live entity")
			}
			if IsAlive(w, dead) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, dead) {
				t.Fatalf("second DestroyEntity should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old || reused.generation() == old.generation() {
		t.Fatalf("reused handle must differ from the stale one")
	}
	if Has(w, reused, kind) {
		t.Fatalf("components must not survive destruction")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("Add on stale handle: err = %v", err)
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("Get on stale handle should fail")
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()

	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_int",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				*v = 11
				if v2, _ := Get(w, e1, ints.Kind()); *v2 != 11 {
					t.Fatalf("Get should return the stored pointer")
				}
			},
		},
		{
			name: "add_string_to_both",
			setup: func() error {
				a, b := "a", "b"
				if err := Add(w, e1, strs.Kind(), &a); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), &b)
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have the string component")
				}
				if Has(w, e2, ints.Kind()) {
					t.Fatalf("e2 has no int component")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
		})
	}

	if err := Add(w, e1, ints.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("nil component: err = %v", err)
	}
	if err := Add(w, e1, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("zero kind: err = %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e3, kind, intPtr(3)); err != nil {
		t.Fatal(err)
	}

	var ents []Entity
	sum := 0
	ForEach(w, kind, func(e Entity, v *int) {
		ents = append(ents, e)
		sum += *v
	})
	set := toSet(ents)
	if _, ok := set[e2]; ok || len(set) != 2 || sum != 4 {
		t.Fatalf("unexpected ForEach result %v sum=%d", ents, sum)
	}

	DestroyEntity(w, e1)
	sum = 0
	ForEach(w, kind, func(e Entity, v *int) {
		if e != e3 {
			t.Fatalf("visited %v after destroying e1", e)
		}
		sum += *v
	})
	if sum != 3 {
		t.Fatalf("sum after destroy = %d, want 3", sum)
	}
	if v, ok := Get(w, e3, kind); !ok || *v != 3 {
		t.Fatalf("e3 lost its value after the swap: %v ok=%v", v, ok)
	}
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	add := func(e Entity, k component.ComponentKind[int], v int) {
		t.Helper()
		if err := Add(w, e, k, intPtr(v)); err != nil {
			t.Fatal(err)
		}
	}
	add(e1, ka, 1)
	add(e2, ka, 2)
	add(e2, kb, 3)
	add(e2, kc, 4)
	add(e2, kd, 5)
	add(e3, kb, 6)
	add(e3, kc, 7)

	tests := []struct {
		name string
		run  func() []Entity
		want []Entity
	}{
		{
			name: "two",
			run: func() (res []Entity) {
				ForEach2(w, kb, kc, func(e Entity, _, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{e2, e3},
		},
		{
			name: "three",
			run: func() (res []Entity) {
				ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{e2},
		},
		{
			name: "four",
			run: func() (res []Entity) {
				ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{e2},
		},
		{
			name: "missing_store",
			run: func() (res []Entity) {
				ForEach3(w, ka, kb, component.NewComponentKind[int](), func(e Entity, _, _, _ *int) { res = append(res, e) })
				return res
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := toSet(tc.run())
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for _, e := range tc.want {
				if _, ok := got[e]; !ok {
					t.Fatalf("missing %v in %v", e, got)
				}
			}
		})
	}

	DestroyEntity(w, e2)
	var res []Entity
	ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { res = append(res, e) })
	if len(res) != 0 {
		t.Fatalf("expected empty result after destroy, got %v", res)
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	w.Events().Push(Event{Kind: EventKind(s.name)})
}

func TestSchedulerOrderAndEvents(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"a", &log}, nil, recordSystem{"b", &log})
	s.Add(recordSystem{"c", &log})

	w := NewWorld()
	s.Update(w)
	if got := len(log); got != 3 || log[0] != "a" || log[2] != "c" {
		t.Fatalf("run order = %v", log)
	}

	if w.Events().Len() != 3 {
		t.Fatalf("expected 3 queued events, got %d", w.Events().Len())
	}
	evs := w.Events().Drain()
	if evs[1].Kind != "b" {
		t.Fatalf("events out of order: %v", evs)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("Drain should clear the queue")
	}
}
