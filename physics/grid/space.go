// Package grid is a kinematic AABB backend for movement.Body built on a
// resolv spatial grid. It integrates gravity itself and stops bodies on
// contact with solids; there is no rotation.
//
// The public API uses y-up world units like package physics. Internally
// objects live in resolv's y-down pixel space whose origin is the top-left
// corner of the world.
package grid

import (
	"math"

	"github.com/milk9111/platformer/movement"
	"github.com/solarlune/resolv"
)

const (
	tagSolid = "solid"
	tagBody  = "body"

	// PixelsPerUnit is the resolution of the internal grid space.
	PixelsPerUnit = 32.0
	cellSize      = 16

	// contactProbe is how far TouchingLayers looks past each edge, in pixels.
	contactProbe = 0.5
)

// Space is a resolv space plus the bodies it integrates.
type Space struct {
	space   *resolv.Space
	height  float64
	gravity float64

	bodies []*Body
}

type solid struct {
	layers movement.Layers
}

// NewSpace creates a world of the given size in units, with vertical gravity
// in units/s².
func NewSpace(width, height, gravity float64) *Space {
	pxW := int(math.Ceil(width * PixelsPerUnit))
	pxH := int(math.Ceil(height * PixelsPerUnit))
	return &Space{
		space:   resolv.NewSpace(pxW, pxH, cellSize, cellSize),
		height:  height,
		gravity: gravity,
	}
}

// AddSolid adds a static rectangle whose bottom-left corner is (x, y).
func (s *Space) AddSolid(x, y, w, h float64, layers movement.Layers) *resolv.Object {
	if s == nil || w <= 0 || h <= 0 {
		return nil
	}
	obj := resolv.NewObject(x*PixelsPerUnit, s.toGridY(y, h), w*PixelsPerUnit, h*PixelsPerUnit, tagSolid)
	obj.Data = &solid{layers: layers}
	s.space.Add(obj)
	return obj
}

// Step integrates every body by dt seconds.
func (s *Space) Step(dt float64) {
	if s == nil || dt <= 0 {
		return
	}
	for _, b := range s.bodies {
		b.step(s.gravity, dt)
	}
}

// RemoveBody detaches b from the space.
func (s *Space) RemoveBody(b *Body) {
	if s == nil || b == nil {
		return
	}
	for i, other := range s.bodies {
		if other == b {
			s.space.Remove(b.obj)
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			return
		}
	}
}

// toGridY converts the bottom edge y of a rectangle of height h, both in
// world units, into the top edge in grid pixels.
func (s *Space) toGridY(y, h float64) float64 {
	return (s.height - (y + h)) * PixelsPerUnit
}

// overlapping returns the solids hit by obj if it moved by (dx, dy) pixels.
// Only solids whose layers intersect mask are returned; an empty mask
// matches every solid. Touching edges do not count as overlap.
func (s *Space) overlapping(obj *resolv.Object, dx, dy float64, mask movement.Layers) []*resolv.Object {
	left, top := obj.X+dx, obj.Y+dy
	right, bottom := left+obj.W, top+obj.H

	var out []*resolv.Object
	for _, o := range s.candidates(left, top, right, bottom) {
		sd, ok := o.Data.(*solid)
		if !ok {
			continue
		}
		if !mask.Empty() && !sd.layers.Intersects(mask) {
			continue
		}
		if left < o.X+o.W && right > o.X && top < o.Y+o.H && bottom > o.Y {
			out = append(out, o)
		}
	}
	return out
}

// candidates gathers the objects registered in every cell the rectangle
// covers, edges included.
func (s *Space) candidates(left, top, right, bottom float64) []*resolv.Object {
	cx, cy := s.space.WorldToSpace(left, top)
	ex, ey := s.space.WorldToSpace(right, bottom)

	seen := make(map[*resolv.Object]struct{})
	var out []*resolv.Object
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := s.space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if _, dup := seen[o]; dup {
					continue
				}
				seen[o] = struct{}{}
				out = append(out, o)
			}
		}
	}
	return out
}
