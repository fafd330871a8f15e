package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxAt returns the box of the given size whose bottom face is centred on
// base.
func BoxAt(base, size mgl64.Vec3) AABB {
	half := mgl64.Vec3{size.X() / 2, 0, size.Z() / 2}
	return AABB{
		Min: base.Sub(half),
		Max: base.Add(half).Add(mgl64.Vec3{0, size.Y(), 0}),
	}
}

func (b AABB) Offset(d mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{math.Min(b.Min.X(), o.Min.X()), math.Min(b.Min.Y(), o.Min.Y()), math.Min(b.Min.Z(), o.Min.Z())},
		Max: mgl64.Vec3{math.Max(b.Max.X(), o.Max.X()), math.Max(b.Max.Y(), o.Max.Y()), math.Max(b.Max.Z(), o.Max.Z())},
	}
}

func (b AABB) Grow(d float64) AABB {
	g := mgl64.Vec3{d, d, d}
	return AABB{Min: b.Min.Sub(g), Max: b.Max.Add(g)}
}

func intersects(a, b AABB) bool {
	for axis := axisX; axis <= axisZ; axis++ {
		if !overlapsOn(a, b, axis) {
			return false
		}
	}
	return true
}

// overlapsOn reports an open-interval overlap on one axis. Touching faces do
// not overlap.
func overlapsOn(a, b AABB, axis int) bool {
	return a.Min[axis] < b.Max[axis]-CollisionAxisTolerance &&
		a.Max[axis] > b.Min[axis]+CollisionAxisTolerance
}

func crossesOtherAxes(a, b AABB, axis int) bool {
	for other := axisX; other <= axisZ; other++ {
		if other != axis && !overlapsOn(a, b, other) {
			return false
		}
	}
	return true
}

// CollidesWithSolid reports whether box overlaps any solid other than skip.
func CollidesWithSolid(box AABB, solids []*Solid, skip *Solid) bool {
	for _, s := range solids {
		if s != skip && intersects(box, s.bounds) {
			return true
		}
	}
	return false
}

// sweepAxis moves box by delta along one axis and returns how far it may go
// together with the solid that stopped it. Solids the box already overlaps
// are ignored so a penetrating box can always get out.
func sweepAxis(box AABB, axis int, delta float64, solids []*Solid, skip *Solid) (float64, *Solid) {
	if nearlyZero(delta) {
		return delta, nil
	}

	allowed := delta
	var hit *Solid
	for _, s := range solids {
		if s == skip || !crossesOtherAxes(box, s.bounds, axis) {
			continue
		}
		b := s.bounds
		if delta > 0 {
			if box.Max[axis] > b.Min[axis]+CollisionAxisTolerance {
				continue
			}
			if candidate := math.Max(b.Min[axis]-box.Max[axis], 0); candidate < allowed {
				allowed = candidate
				hit = s
			}
		} else {
			if box.Min[axis] < b.Max[axis]-CollisionAxisTolerance {
				continue
			}
			if candidate := math.Min(b.Max[axis]-box.Min[axis], 0); candidate > allowed {
				allowed = candidate
				hit = s
			}
		}
	}
	return allowed, hit
}

// ResolveMovement moves box by delta one axis at a time in Y, X, Z order.
// It returns the displacement actually made and, per axis, the solid that
// blocked it.
func ResolveMovement(box AABB, delta mgl64.Vec3, solids []*Solid, skip *Solid) (mgl64.Vec3, [3]*Solid) {
	var moved mgl64.Vec3
	var hits [3]*Solid
	for _, axis := range [3]int{axisY, axisX, axisZ} {
		allowed, hit := sweepAxis(box, axis, delta[axis], solids, skip)
		moved[axis] = allowed
		hits[axis] = hit
		box = box.Offset(axisVector(axis, allowed))
	}
	return moved, hits
}

func axisVector(axis int, v float64) mgl64.Vec3 {
	var out mgl64.Vec3
	out[axis] = v
	return out
}

func nearlyZero(v float64) bool {
	return math.Abs(v) <= CollisionAxisTolerance
}

func finiteVec(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
