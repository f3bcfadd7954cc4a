// Package renderer draws composed cube frames with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubemerge/internal/engine/mesh"
	"github.com/Faultbox/cubemerge/internal/engine/renderer/shaders"
	"github.com/Faultbox/cubemerge/internal/engine/shader"
	"github.com/Faultbox/cubemerge/internal/engine/texture"
	"github.com/Faultbox/cubemerge/internal/scene"
)

// Uniform names used by the cube program.
const (
	uniformMatrix   = "u_matrix"
	uniformTexture  = "u_texture"
	uniformUseColor = "u_useColor"
	uniformColor    = "u_color"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GPU resources for the cube scene.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	vao, vbo, ebo uint32
	textures      []uint32
}

// New creates a renderer and uploads the cube mesh and texture set.
// Must be called after the OpenGL context is created.
func New(cfg Config, images []*texture.Image, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{config: cfg, log: log}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(shaders.CubeVertexShader, shaders.CubeFragmentShader,
		uniformMatrix, uniformTexture, uniformUseColor, uniformColor)
	if err != nil {
		return nil, fmt.Errorf("cube program: %w", err)
	}

	r.createCube()

	for i, img := range images {
		r.textures = append(r.textures, uploadTexture(img))
		log.Debug("texture uploaded",
			zap.Int("index", i),
			zap.String("name", img.Name),
			zap.Bool("placeholder", img.Placeholder),
		)
	}

	return r, nil
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears to the frame background and draws every record, one draw call
// per cube face.
func (r *Renderer) Draw(frame scene.Frame) {
	bg := frame.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.program.Uniform(uniformTexture), 0)

	for i := range frame.Draws {
		d := &frame.Draws[i]
		gl.UniformMatrix4fv(r.program.Uniform(uniformMatrix), 1, false, d.MVP.Ptr())
		if d.Flat {
			gl.Uniform1i(r.program.Uniform(uniformUseColor), 1)
			gl.Uniform4f(r.program.Uniform(uniformColor), d.Color[0], d.Color[1], d.Color[2], d.Color[3])
		} else {
			gl.Uniform1i(r.program.Uniform(uniformUseColor), 0)
			gl.BindTexture(gl.TEXTURE_2D, r.texture(d.Texture))
		}
		for face := 0; face < mesh.FaceCount; face++ {
			gl.DrawElements(gl.TRIANGLES, mesh.IndicesPerFace, gl.UNSIGNED_SHORT, unsafe.Pointer(uintptr(mesh.FaceOffset(face))))
		}
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) texture(index int) uint32 {
	if index < 0 || index >= len(r.textures) {
		return 0
	}
	return r.textures[index]
}

func (r *Renderer) createCube() {
	vertices := mesh.CubeVertices()
	indices := mesh.CubeIndices()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	stride := int32(mesh.VertexStride * 4)

	// Position (location = 0)
	gl.VertexAttribPointer(0, mesh.PositionSize, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Texture coordinate (location = 1)
	gl.VertexAttribPointer(1, mesh.UVSize, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(mesh.PositionSize*4)))
	gl.EnableVertexAttribArray(1)

	// The element buffer binding stays with the VAO.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("cube uploaded",
		zap.Uint32("vao", r.vao),
		zap.Int("vertices", mesh.VertexCount),
		zap.Int("indices", mesh.IndexCount),
	)
}

func uploadTexture(img *texture.Image) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	w, h := int32(img.Width()), int32(img.Height())
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.RGBA.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}
