package shaders

import (
	"strings"
	"testing"
)

func TestCubeShaderUniforms(t *testing.T) {
	for _, tc := range []struct {
		name, src string
		want      []string
	}{
		{"vertex", CubeVertexShader, []string{"#version 410 core", "u_matrix", "a_position", "a_texcoord"}},
		{"fragment", CubeFragmentShader, []string{"#version 410 core", "u_texture", "u_useColor", "u_color"}},
	} {
		for _, w := range tc.want {
			if !strings.Contains(tc.src, w) {
				t.Errorf("%s shader missing %q", tc.name, w)
			}
		}
	}
}
