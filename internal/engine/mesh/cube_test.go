package mesh

import "testing"

func TestCubeTopology(t *testing.T) {
	verts := CubeVertices()
	idx := CubeIndices()

	if got := len(verts) / VertexStride; got != 24 {
		t.Errorf("vertex count = %d, want 24", got)
	}
	if len(idx) != 36 {
		t.Errorf("index count = %d, want 36", len(idx))
	}

	for face := 0; face < FaceCount; face++ {
		lo, hi := uint16(face*4), uint16(face*4+3)
		for _, i := range idx[face*IndicesPerFace : (face+1)*IndicesPerFace] {
			if i < lo || i > hi {
				t.Errorf("face %d references vertex %d outside [%d, %d]", face, i, lo, hi)
			}
		}
	}
}

func TestCubeVertexValues(t *testing.T) {
	verts := CubeVertices()
	for v := 0; v < VertexCount; v++ {
		base := v * VertexStride
		for a := 0; a < PositionSize; a++ {
			if p := verts[base+a]; p != 0.5 && p != -0.5 {
				t.Errorf("vertex %d axis %d = %v, want +-0.5", v, a, p)
			}
		}
		for a := 0; a < UVSize; a++ {
			if uv := verts[base+PositionSize+a]; uv != 0 && uv != 1 {
				t.Errorf("vertex %d uv %d = %v, want 0 or 1", v, a, uv)
			}
		}
	}
}

func TestFacesAreFlat(t *testing.T) {
	verts := CubeVertices()
	for face := 0; face < FaceCount; face++ {
		// One axis must be constant across the face's four vertices.
		flat := false
		for a := 0; a < PositionSize; a++ {
			first := verts[face*4*VertexStride+a]
			same := true
			for v := 1; v < 4; v++ {
				if verts[(face*4+v)*VertexStride+a] != first {
					same = false
				}
			}
			flat = flat || same
		}
		if !flat {
			t.Errorf("face %d is not axis aligned", face)
		}
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	v := CubeVertices()
	v[0] = 42
	if CubeVertices()[0] == 42 {
		t.Error("CubeVertices returned shared storage")
	}
}

func TestFaceOffset(t *testing.T) {
	if got := FaceOffset(FaceLeft); got != 5*6*2 {
		t.Errorf("FaceOffset(FaceLeft) = %d, want %d", got, 5*6*2)
	}
}
