package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"pong/internal/pong"
)

// Floats per quad vertex: x, y, r, g, b, a.
const quadStride = 6

// maxQuads bounds the streaming buffer: walls, paddles, ball and score markers.
const maxQuads = pong.MaxFieldQuads

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	quadProg    uint32
	quadVAO     uint32
	quadVBO     uint32
	uProjection int32

	// Text rendering.
	textProg        uint32
	textVAO         uint32
	textVBO         uint32
	textUProjection int32
	textUTex        int32
	textUColor      int32
	textCache       map[string]*textTexture

	projection mgl32.Mat4

	// Reusable per-frame buffers.
	quads     []pong.Quad
	quadVerts []float32
}

func NewRenderer() (*Renderer, error) {
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	r := &Renderer{
		quadProg:   quadProg,
		projection: FieldProjection(0, 0),
		quads:      make([]pong.Quad, 0, maxQuads),
		quadVerts:  make([]float32, 0, maxQuads*6*quadStride),
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(quadStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuads*6*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.quadVAO = vao
	r.quadVBO = vbo

	gl.UseProgram(quadProg)
	r.uProjection = gl.GetUniformLocation(quadProg, gl.Str("uProjection\x00"))

	gl.BindVertexArray(0)

	if err := r.initText(); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("text: %w", err)
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.quadProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	r.clearTextCache()
}

// BeginFrame clears the framebuffer and fixes the projection for the frame.
func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := pong.Palette.Background
	gl.ClearColor(float32(bg.R)/255.0, float32(bg.G)/255.0, float32(bg.B)/255.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.projection = cam.Projection()
}

// DrawMatch draws walls, paddles, ball and score markers.
func (r *Renderer) DrawMatch(m *pong.Match) {
	r.quads = pong.AppendField(r.quads[:0], m)
	r.DrawQuads(r.quads)
}

func (r *Renderer) DrawQuads(quads []pong.Quad) {
	if len(quads) == 0 {
		return
	}
	if len(quads) > maxQuads {
		quads = quads[:maxQuads]
	}
	r.quadVerts = r.quadVerts[:0]
	for _, q := range quads {
		r.quadVerts = appendQuadVertices(r.quadVerts, q)
	}

	gl.UseProgram(r.quadProg)
	gl.UniformMatrix4fv(r.uProjection, 1, false, &r.projection[0])
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.quadVerts)*4, gl.Ptr(r.quadVerts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.quadVerts)/quadStride))
	gl.BindVertexArray(0)
}

// appendQuadVertices appends two triangles (TL, TR, BR and TL, BR, BL)
// covering q.Rect.
func appendQuadVertices(buf []float32, q pong.Quad) []float32 {
	x0, y0 := float32(q.Rect.Min.X), float32(q.Rect.Min.Y)
	x1, y1 := float32(q.Rect.Max.X), float32(q.Rect.Max.Y)
	cr := float32(q.Color.R) / 255.0
	cg := float32(q.Color.G) / 255.0
	cb := float32(q.Color.B) / 255.0
	return append(buf,
		x0, y0, cr, cg, cb, 1,
		x1, y0, cr, cg, cb, 1,
		x1, y1, cr, cg, cb, 1,
		x0, y0, cr, cg, cb, 1,
		x1, y1, cr, cg, cb, 1,
		x0, y1, cr, cg, cb, 1,
	)
}
