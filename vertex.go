package quad

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"golang.org/x/image/math/f32"
)

// Vertex is one corner of the quad: a position in clip space and an RGB
// color with components in [0,1]. The GPU-side buffer layout matches this
// struct exactly: two tightly packed vec3<f32> attributes.
type Vertex struct {
	Position f32.Vec3
	Color    f32.Vec3
}

// vertexStride is the byte size of one Vertex in the vertex buffer.
const vertexStride = unsafe.Sizeof(Vertex{})

// QuadVertices is the static geometry: two counter-clockwise triangles
// forming a centered quad, one color per corner. It is the only geometry
// the program ever draws.
var QuadVertices = [6]Vertex{
	{Position: f32.Vec3{-0.5, 0.5, 0.0}, Color: f32.Vec3{1, 0, 0}},  // top-left
	{Position: f32.Vec3{-0.5, -0.5, 0.0}, Color: f32.Vec3{0, 1, 0}}, // bottom-left
	{Position: f32.Vec3{0.5, -0.5, 0.0}, Color: f32.Vec3{0, 0, 1}},  // bottom-right
	{Position: f32.Vec3{0.5, -0.5, 0.0}, Color: f32.Vec3{0, 0, 1}},  // bottom-right
	{Position: f32.Vec3{0.5, 0.5, 0.0}, Color: f32.Vec3{1, 1, 0}},   // top-right
	{Position: f32.Vec3{-0.5, 0.5, 0.0}, Color: f32.Vec3{1, 0, 0}},  // top-left
}

// VertexCount is the number of vertices drawn per frame.
const VertexCount = len(QuadVertices)

// vertexBytes returns the vertex buffer contents as raw bytes, in the
// exact memory layout the pipeline's vertex state declares.
func vertexBytes() []byte {
	return wgpu.ToBytes(QuadVertices[:])
}

// vertexLayout describes QuadVertices to the render pipeline: one buffer,
// per-vertex stepping, position at shader location 0 and color at 1.
func vertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(vertexStride),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
				ShaderLocation: 1,
			},
		},
	}
}
