// Package openglhelper wraps the go-gl calls the demo needs: a window with
// an OpenGL context, shader programs, buffers and simple meshes.
package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferObject represents an OpenGL buffer object (VBO, EBO)
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER
	Size  int    // Size of the buffer in bytes
	Usage uint32 // GL_STATIC_DRAW
}

// BufferUsage is the usage hint passed to glBufferData
type BufferUsage uint32

// StaticDraw: uploaded once, drawn many times
const StaticDraw BufferUsage = gl.STATIC_DRAW

// VertexArrayObject stores vertex attribute configuration
type VertexArrayObject struct {
	ID uint32
}

// newBufferObject creates a buffer, binds it and uploads data
func newBufferObject(bufferType uint32, sizeInBytes int, data any, usage BufferUsage) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:    bufferID,
		Type:  bufferType,
		Size:  sizeInBytes,
		Usage: uint32(usage),
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, gl.Ptr(data), uint32(usage))

	return buffer
}

// NewVBO uploads interleaved float vertex data into an array buffer
func NewVBO(vertices []float32, usage BufferUsage) *BufferObject {
	return newBufferObject(gl.ARRAY_BUFFER, len(vertices)*4, vertices, usage)
}

// NewEBO uploads indices into an element array buffer.
// The VAO it belongs to must be bound first.
func NewEBO(indices []uint32, usage BufferUsage) *BufferObject {
	return newBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, indices, usage)
}

// Bind binds the buffer object to its type target
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Delete releases the buffer object
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// NewVAO creates a new vertex array object
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)

	return &VertexArrayObject{
		ID: vaoID,
	}
}

// Bind binds the vertex array object
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer describes one attribute of the bound array buffer
// and enables it. stride and offset are in bytes.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}
