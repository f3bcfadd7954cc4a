// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader transforms cube vertices by the per-model MVP matrix.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader samples the face texture, or emits a flat color when
// u_useColor is set.
//
//go:embed cube.frag
var CubeFragmentShader string
