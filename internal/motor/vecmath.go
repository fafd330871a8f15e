package motor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	up      = mgl64.Vec3{0, 1, 0}
	forward = mgl64.Vec3{0, 0, 1}
)

const vecEpsilon = 1e-12

// normalizeOrZero returns v scaled to unit length, or zero for a
// (near) zero vector.
func normalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < vecEpsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

func horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

func withY(v mgl64.Vec3, y float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), y, v.Z()}
}

func lenSqr(v mgl64.Vec3) float64 {
	return v.Dot(v)
}

// clampLength limits the length of v to maxLen.
func clampLength(v mgl64.Vec3, maxLen float64) mgl64.Vec3 {
	if maxLen <= 0 {
		return mgl64.Vec3{}
	}
	if lenSqr(v) > maxLen*maxLen {
		return normalizeOrZero(v).Mul(maxLen)
	}
	return v
}

// project returns the component of v along dir.
func project(v, dir mgl64.Vec3) mgl64.Vec3 {
	d := lenSqr(dir)
	if d < vecEpsilon {
		return mgl64.Vec3{}
	}
	return dir.Mul(v.Dot(dir) / d)
}

// asinDeg is asin in degrees with its input clamped to [-1,1].
func asinDeg(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return mgl64.RadToDeg(math.Asin(mgl64.Clamp(x, -1, 1)))
}

// slerpDirection rotates from toward to by fraction t of the angle between
// them. Both inputs are expected to be unit length.
func slerpDirection(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	to = normalizeOrZero(to)
	if to == (mgl64.Vec3{}) {
		return from
	}
	t = mgl64.Clamp(t, 0, 1)
	full := mgl64.QuatBetweenVectors(from, to)
	partial := mgl64.QuatSlerp(mgl64.QuatIdent(), full, t)
	return normalizeOrZero(partial.Rotate(from))
}

// yawOf returns the rotation of q about the up axis in radians.
func yawOf(q mgl64.Quat) float64 {
	f := horizontal(q.Rotate(forward))
	if lenSqr(f) < vecEpsilon {
		return 0
	}
	return math.Atan2(f.X(), f.Z())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
