package motor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a rigid placement with optional non-uniform scale.
// A zero Scale is treated as unit scale.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

func NewTransform(position mgl64.Vec3, rotation mgl64.Quat) Transform {
	return Transform{Position: position, Rotation: rotation, Scale: mgl64.Vec3{1, 1, 1}}
}

// Matrix returns the local-to-world matrix T*R*S.
func (t Transform) Matrix() mgl64.Mat4 {
	scale := t.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	rot := t.rotation()
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(rot.Mat4()).
		Mul4(mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

func (t Transform) rotation() mgl64.Quat {
	if t.Rotation == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}
	return t.Rotation.Normalize()
}

func (t Transform) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return transformPoint(t.Matrix(), p)
}

func (t Transform) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return transformPoint(t.Matrix().Inv(), p)
}

func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
