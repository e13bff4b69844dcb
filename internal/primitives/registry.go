package primitives

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape names one of the unit meshes the renderer knows how to draw.
type Shape string

const (
	Cube     Shape = "cube"
	Sphere   Shape = "sphere"
	Cylinder Shape = "cylinder"
	Cone     Shape = "cone"
	Plane    Shape = "plane"
)

// ParseShape maps a palette shape name to a Shape.
func ParseShape(s string) (Shape, error) {
	switch sh := Shape(s); sh {
	case Cube, Sphere, Cylinder, Cone, Plane:
		return sh, nil
	}
	return "", fmt.Errorf("primitives: unknown shape %q", s)
}

// centerOffset shifts meshes whose origin is not their center. raylib cylinders
// and cones have their base at y=0.
func (s Shape) centerOffset() float32 {
	if s == Cylinder || s == Cone {
		return -0.5
	}
	return 0
}

// LocalBounds is the unit-mesh box of s in model space, centered on the origin.
func (s Shape) LocalBounds() rl.BoundingBox {
	if s == Plane {
		return rl.NewBoundingBox(rl.NewVector3(-0.5, 0, -0.5), rl.NewVector3(0.5, 0, 0.5))
	}
	return rl.NewBoundingBox(rl.NewVector3(-0.5, -0.5, -0.5), rl.NewVector3(0.5, 0.5, 0.5))
}

// Transform builds the model matrix for a unit mesh of s centered at center,
// stretched by size and turned yaw radians about +Y.
func Transform(s Shape, center, size rl.Vector3, yaw float32) rl.Matrix {
	if size.X == 0 {
		size.X = 1
	}
	if size.Y == 0 {
		size.Y = 1
	}
	if size.Z == 0 {
		size.Z = 1
	}
	m := rl.MatrixScale(size.X, size.Y, size.Z)
	if off := s.centerOffset(); off != 0 {
		m = rl.MatrixMultiply(rl.MatrixTranslate(0, off, 0), m)
	}
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(yaw))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(center.X, center.Y, center.Z))
}

type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry owns one mesh per Shape and a shared lit material. Meshes are created
// on first Draw so GPU resources are only touched once the window exists.
type Registry struct {
	cache    map[Shape]cached
	shader   rl.Shader
	loaded   bool
	viewPos  [3]float32
	lightDir [3]float32
}

// NewRegistry returns an empty registry lit from above-right.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[Shape]cached),
		lightDir: [3]float32{0.5, 1, 0.3},
	}
}

// SetView sets the eye position and direction-to-light for this frame.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

func (r *Registry) ensure(s Shape) (cached, bool) {
	if c, ok := r.cache[s]; ok {
		return c, true
	}
	if !r.loaded {
		r.shader = rl.LoadShaderFromMemory(litVS, litFS)
		r.loaded = true
	}
	var mesh rl.Mesh
	switch s {
	case Cube:
		mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		mesh = rl.GenMeshSphere(0.5, 12, 12)
	case Cylinder:
		mesh = rl.GenMeshCylinder(0.5, 1, 12)
	case Cone:
		mesh = rl.GenMeshCone(0.5, 1, 12)
	case Plane:
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	r.cache[s] = c
	return c, true
}

// Draw renders shape s with the given model matrix, albedo and emissive boost.
// Must be called between BeginMode3D and EndMode3D. Unknown shapes are skipped.
func (r *Registry) Draw(s Shape, transform rl.Matrix, color rl.Color, emissive float32) {
	c, ok := r.ensure(s)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setUniforms(c.mtl.Shader, emissive)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// Unload releases every cached mesh and the shared shader.
func (r *Registry) Unload() {
	for s, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, s)
	}
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}

var (
	ambient    = [4]float32{0.32, 0.34, 0.38, 1.0}
	lightColor = [3]float32{1.0, 0.97, 0.92}
)

const (
	lightIntensity   = float32(0.8)
	specularPower    = float32(32.0)
	specularStrength = float32(0.15)
)

// setUniforms pushes per-draw lighting values. Arrays are copied locally for cgo.
func (r *Registry) setUniforms(shader rl.Shader, emissive float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	vp := r.viewPos
	ld := r.lightDir
	amb := ambient
	lc := lightColor
	vec3 := func(name string, v []float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, 1)
		}
	}
	scalar := func(name string, v float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	vec3("viewPos", vp[:])
	vec3("lightDir", ld[:])
	vec3("lightColor", lc[:])
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	scalar("lightIntensity", lightIntensity)
	scalar("specularPower", specularPower)
	scalar("specularStrength", specularStrength)
	scalar("emissive", emissive)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 world = matModel * vec4(vertexPosition, 1.0);
  fragPosition = world.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * world;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform float emissive;
out vec4 finalColor;
void main() {
  vec3 n = normalize(fragNormal);
  vec3 l = normalize(lightDir);
  vec3 v = normalize(viewPos - fragPosition);
  float lambert = max(dot(n, l), 0.0);
  vec3 base = colDiffuse.rgb;
  vec3 lit = ambient.rgb * base + base * lambert * lightColor * lightIntensity;
  float spec = lambert > 0.0 ? pow(max(dot(n, normalize(l + v)), 0.0), specularPower) * specularStrength : 0.0;
  vec3 glow = base * emissive + vec3(emissive * 0.5);
  finalColor = vec4(lit + lightColor * spec + glow, colDiffuse.a);
}
`
)
