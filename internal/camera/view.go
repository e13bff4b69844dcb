package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// View is the camera pose produced each frame by the active controller. Picking and label
// projection read the same View within a frame.
type View struct {
	Eye    rl.Vector3
	Target rl.Vector3
	Up     rl.Vector3
}

// Lens is the perspective projection. FovY is the vertical field of view in degrees.
type Lens struct {
	FovY float32 `mapstructure:"fovY"`
	Near float32 `mapstructure:"near"`
	Far  float32 `mapstructure:"far"`
}

// DefaultLens returns a 60 degree lens with a 0.1..1000 depth range.
func DefaultLens() Lens {
	return Lens{FovY: 60, Near: 0.1, Far: 1000}
}

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  float32
	Height float32
}

// Center returns the middle of the viewport, where the crosshair sits.
func (v Viewport) Center() (x, y float32) {
	return v.Width / 2, v.Height / 2
}

func (v Viewport) aspect() float32 {
	if v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// ViewMatrix returns the world-to-view matrix.
func (v View) ViewMatrix() rl.Matrix {
	up := v.Up
	if up == (rl.Vector3{}) {
		up = rl.NewVector3(0, 1, 0)
	}
	return rl.MatrixLookAt(v.Eye, v.Target, up)
}

// Projection returns the view-to-clip matrix for vp.
func (l Lens) Projection(vp Viewport) rl.Matrix {
	return rl.MatrixPerspective(l.FovY*rl.Deg2rad, vp.aspect(), l.Near, l.Far)
}

// Camera3D converts the pose to a raylib camera for drawing.
func (v View) Camera3D(l Lens) rl.Camera3D {
	up := v.Up
	if up == (rl.Vector3{}) {
		up = rl.NewVector3(0, 1, 0)
	}
	return rl.Camera3D{Position: v.Eye, Target: v.Target, Up: up, Fovy: l.FovY, Projection: rl.CameraPerspective}
}

// Projected is a world point mapped to the viewport.
type Projected struct {
	X, Y float32
	// Depth is the clip-space w: the distance in front of the camera along the view axis.
	// Zero or negative means the point is at or behind the eye.
	Depth float32
	// NDCZ is the normalized device depth; values above 1 are beyond the far plane.
	NDCZ float32
}

// Behind reports whether the point is behind the camera or beyond the far plane.
func (p Projected) Behind() bool {
	return p.Depth <= 0 || p.NDCZ > 1
}

// WorldToScreen projects a world point to pixel coordinates (origin top-left, y down).
func WorldToScreen(point rl.Vector3, v View, l Lens, vp Viewport) Projected {
	x, y, z, w := mulVec4(v.ViewMatrix(), point.X, point.Y, point.Z, 1)
	x, y, z, w = mulVec4(l.Projection(vp), x, y, z, w)
	if w == 0 {
		return Projected{Depth: 0}
	}
	nx, ny, nz := x/w, y/w, z/w
	return Projected{
		X:     (nx + 1) / 2 * vp.Width,
		Y:     (1 - ny) / 2 * vp.Height,
		Depth: w,
		NDCZ:  nz,
	}
}

// ScreenRay returns the ray from the eye through pixel (sx, sy).
func ScreenRay(sx, sy float32, v View, l Lens, vp Viewport) rl.Ray {
	nx := 2*sx/vp.Width - 1
	ny := 1 - 2*sy/vp.Height
	inv := rl.MatrixInvert(rl.MatrixMultiply(v.ViewMatrix(), l.Projection(vp)))
	near := unproject(inv, nx, ny, 0)
	far := unproject(inv, nx, ny, 1)
	return rl.NewRay(v.Eye, rl.Vector3Normalize(rl.Vector3Subtract(far, near)))
}

func unproject(inv rl.Matrix, x, y, z float32) rl.Vector3 {
	px, py, pz, pw := mulVec4(inv, x, y, z, 1)
	if pw == 0 {
		return rl.NewVector3(px, py, pz)
	}
	return rl.NewVector3(px/pw, py/pw, pz/pw)
}

// mulVec4 returns m * (x, y, z, w) in raylib's column layout.
func mulVec4(m rl.Matrix, x, y, z, w float32) (float32, float32, float32, float32) {
	return m.M0*x + m.M4*y + m.M8*z + m.M12*w,
		m.M1*x + m.M5*y + m.M9*z + m.M13*w,
		m.M2*x + m.M6*y + m.M10*z + m.M14*w,
		m.M3*x + m.M7*y + m.M11*z + m.M15*w
}

// direction returns the unit look vector for yaw/pitch. Yaw 0 looks down -Z; positive yaw turns left.
func direction(yaw, pitch float32) rl.Vector3 {
	cp := math32.Cos(pitch)
	return rl.NewVector3(-math32.Sin(yaw)*cp, math32.Sin(pitch), -math32.Cos(yaw)*cp)
}
