// Package mesh holds the fixed cube geometry drawn for every model.
package mesh

// Vertex layout: position (x, y, z) followed by texture coordinate (u, v).
const (
	PositionSize   = 3
	UVSize         = 2
	VertexStride   = PositionSize + UVSize // floats per vertex
	VertexCount    = 24
	IndexCount     = 36
	FaceCount      = 6
	IndicesPerFace = IndexCount / FaceCount
)

// Face order within the index buffer.
const (
	FaceFront = iota
	FaceBack
	FaceTop
	FaceBottom
	FaceRight
	FaceLeft
)

// cubeVertices is a unit cube centered on the origin, four vertices per face
// so every face carries its own full 0..1 UV square.
var cubeVertices = [VertexCount * VertexStride]float32{
	// Front
	-0.5, -0.5, 0.5, 0, 0,
	0.5, -0.5, 0.5, 1, 0,
	0.5, 0.5, 0.5, 1, 1,
	-0.5, 0.5, 0.5, 0, 1,

	// Back
	-0.5, -0.5, -0.5, 0, 0,
	-0.5, 0.5, -0.5, 1, 0,
	0.5, 0.5, -0.5, 1, 1,
	0.5, -0.5, -0.5, 0, 1,

	// Top
	-0.5, 0.5, -0.5, 0, 0,
	-0.5, 0.5, 0.5, 1, 0,
	0.5, 0.5, 0.5, 1, 1,
	0.5, 0.5, -0.5, 0, 1,

	// Bottom
	-0.5, -0.5, -0.5, 0, 0,
	0.5, -0.5, -0.5, 1, 0,
	0.5, -0.5, 0.5, 1, 1,
	-0.5, -0.5, 0.5, 0, 1,

	// Right
	0.5, -0.5, -0.5, 0, 0,
	0.5, 0.5, -0.5, 1, 0,
	0.5, 0.5, 0.5, 1, 1,
	0.5, -0.5, 0.5, 0, 1,

	// Left
	-0.5, -0.5, -0.5, 0, 0,
	-0.5, -0.5, 0.5, 1, 0,
	-0.5, 0.5, 0.5, 1, 1,
	-0.5, 0.5, -0.5, 0, 1,
}

var cubeIndices = [IndexCount]uint16{
	0, 1, 2, 0, 2, 3, // front
	4, 5, 6, 4, 6, 7, // back
	8, 9, 10, 8, 10, 11, // top
	12, 13, 14, 12, 14, 15, // bottom
	16, 17, 18, 16, 18, 19, // right
	20, 21, 22, 20, 22, 23, // left
}

// CubeVertices returns a copy of the interleaved cube vertex data.
func CubeVertices() []float32 {
	v := cubeVertices
	return v[:]
}

// CubeIndices returns a copy of the cube triangle indices.
func CubeIndices() []uint16 {
	i := cubeIndices
	return i[:]
}

// FaceOffset returns the byte offset of a face's first index in the index buffer.
func FaceOffset(face int) int {
	return face * IndicesPerFace * 2
}
