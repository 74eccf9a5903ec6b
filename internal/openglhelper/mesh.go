package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Floats per vertex: position (3), normal (3), texture coordinates (2)
const floatsPerVertex = 8

// Mesh is an indexed triangle list living on the GPU
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved vertices and their indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	stride := int32(floatsPerVertex * 4)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)
	vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, stride, 6*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw issues the draw call. The caller binds the shader and sets uniforms.
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// NewCube creates a unit cube centered on the origin
func NewCube() *Mesh {
	vertices, indices := CubeGeometry()
	return NewMesh(vertices, indices)
}

// CubeGeometry returns the interleaved vertices and indices of a unit cube.
// Every face has its own four vertices so normals stay flat.
func CubeGeometry() ([]float32, []uint32) {
	vertices := []float32{
		// Front face (+Z)
		-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,

		// Back face (-Z)
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
		0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,

		// Top face (+Y)
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,

		// Bottom face (-Y)
		-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
		0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
		0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 1.0,

		// Right face (+X)
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,

		// Left face (-X)
		-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
		-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	}

	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return vertices, indices
}
