package physics

import (
	"math"

	"github.com/Versifine/stride/internal/motor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Solid is a box in a Space. It doubles as the motor.Surface handed to the
// character controller; it stays valid until removed from its space.
type Solid struct {
	bounds   AABB
	rotation mgl64.Quat
	material motor.Material
	body     motor.Rigidbody

	space    *Space
	obj      *resolv.Object
	overflow bool
}

func NewSolid(bounds AABB, material motor.Material) *Solid {
	if material.Name == "" {
		material = motor.DefaultMaterial
	}
	return &Solid{bounds: bounds, rotation: mgl64.QuatIdent(), material: material}
}

func (s *Solid) Bounds() AABB {
	return s.bounds
}

func (s *Solid) Valid() bool {
	return s.space != nil
}

// Transform places the surface at the box centre. The rotation is only
// reported to riders; collision stays axis aligned.
func (s *Solid) Transform() motor.Transform {
	return motor.NewTransform(s.bounds.Center(), s.rotation)
}

func (s *Solid) SetRotation(q mgl64.Quat) {
	s.rotation = q
}

func (s *Solid) Material() motor.Material {
	return s.material
}

// Body is the simulated body behind the box, or nil for static geometry.
func (s *Solid) Body() motor.Rigidbody {
	return s.body
}

type SpaceConfig struct {
	// MinX and MinZ are the world coordinates of the grid corner.
	MinX     float64
	MinZ     float64
	Width    float64
	Depth    float64
	CellSize int
}

func DefaultSpaceConfig() SpaceConfig {
	return SpaceConfig{
		MinX:     -DefaultSpaceSize / 2,
		MinZ:     -DefaultSpaceSize / 2,
		Width:    DefaultSpaceSize,
		Depth:    DefaultSpaceSize,
		CellSize: DefaultCellSize,
	}
}

// gridScale is the number of resolv units per metre. resolv maps bounds to
// cells in whole units, so rectangles are also padded by gridPad units to
// keep the broadphase a superset of the real overlaps.
const (
	gridScale = 100.0
	gridPad   = 2.0
)

// Space indexes solids on the XZ plane with a resolv grid. Solids that reach
// outside the grid are kept in an overflow set and returned by every query.
type Space struct {
	cfg      SpaceConfig
	grid     *resolv.Space
	solids   map[*Solid]struct{}
	overflow map[*Solid]struct{}
}

func NewSpace(cfg SpaceConfig) *Space {
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultCellSize
	}
	width := max(int(math.Ceil(cfg.Width)), cfg.CellSize)
	depth := max(int(math.Ceil(cfg.Depth)), cfg.CellSize)
	cfg.Width, cfg.Depth = float64(width), float64(depth)
	cell := int(float64(cfg.CellSize) * gridScale)
	return &Space{
		cfg:      cfg,
		grid:     resolv.NewSpace(int(cfg.Width*gridScale), int(cfg.Depth*gridScale), cell, cell),
		solids:   make(map[*Solid]struct{}),
		overflow: make(map[*Solid]struct{}),
	}
}

func (sp *Space) Len() int {
	return len(sp.solids)
}

func (sp *Space) Add(s *Solid) {
	if s == nil || s.space == sp {
		return
	}
	if s.space != nil {
		s.space.Remove(s)
	}
	s.space = sp
	sp.solids[s] = struct{}{}
	sp.index(s)
}

// Remove takes s out of the space. Riders see it as destroyed afterwards.
func (sp *Space) Remove(s *Solid) {
	if s == nil || s.space != sp {
		return
	}
	sp.unindex(s)
	delete(sp.solids, s)
	s.space = nil
}

// SetBounds moves s to bounds and updates the grid.
func (sp *Space) SetBounds(s *Solid, bounds AABB) {
	s.bounds = bounds
	if s.space != sp {
		return
	}
	if sp.inside(bounds) && s.obj != nil {
		s.obj.X, s.obj.Y, s.obj.W, s.obj.H = sp.gridRect(bounds)
		s.obj.Update()
		return
	}
	sp.unindex(s)
	sp.index(s)
}

// Query returns the solids whose XZ footprint may overlap area. The vertical
// extent is not filtered.
func (sp *Space) Query(area AABB) []*Solid {
	out := make([]*Solid, 0, len(sp.overflow)+4)
	for s := range sp.overflow {
		out = append(out, s)
	}

	probe := resolv.NewObject(sp.gridRect(area))
	sp.grid.Add(probe)
	defer sp.grid.Remove(probe)

	if check := probe.Check(0, 0); check != nil {
		for _, obj := range check.Objects {
			if s, ok := obj.Data.(*Solid); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func (sp *Space) index(s *Solid) {
	if !sp.inside(s.bounds) {
		s.overflow = true
		sp.overflow[s] = struct{}{}
		return
	}
	s.obj = resolv.NewObject(sp.gridRect(s.bounds))
	s.obj.Data = s
	sp.grid.Add(s.obj)
}

func (sp *Space) unindex(s *Solid) {
	if s.overflow {
		delete(sp.overflow, s)
		s.overflow = false
	}
	if s.obj != nil {
		sp.grid.Remove(s.obj)
		s.obj = nil
	}
}

// gridRect converts the XZ footprint of b to padded resolv units.
func (sp *Space) gridRect(b AABB) (x, y, w, h float64) {
	x = (b.Min.X()-sp.cfg.MinX)*gridScale - gridPad
	y = (b.Min.Z()-sp.cfg.MinZ)*gridScale - gridPad
	w = math.Max(b.Size().X(), 0)*gridScale + 2*gridPad
	h = math.Max(b.Size().Z(), 0)*gridScale + 2*gridPad
	return x, y, w, h
}

func (sp *Space) inside(b AABB) bool {
	x, z := b.Min.X()-sp.cfg.MinX, b.Min.Z()-sp.cfg.MinZ
	size := b.Size()
	return x >= 0 && z >= 0 && x+size.X() <= sp.cfg.Width && z+size.Z() <= sp.cfg.Depth
}
