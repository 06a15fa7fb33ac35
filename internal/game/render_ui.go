package game

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"pong/internal/pong"
)

// textTexture is one rasterised line of text uploaded to the GPU.
type textTexture struct {
	tex  uint32
	size image.Point
}

// RasterizeText draws text in white on a transparent background using the
// 7x13 fixed font. The image is exactly one line tall.
func RasterizeText(text string) *image.RGBA {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	d := &font.Drawer{Face: face, Src: image.White}
	w := d.MeasureString(text).Ceil()
	h := metrics.Height.Ceil()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = img
	d.Dot = fixed.P(0, metrics.Ascent.Ceil())
	d.DrawString(text)
	return img
}

// textRect places a line of the given texture size on the field: centred
// horizontally, top at line.Y, scaled by line.Scale.
func textRect(line pong.TextLine, size image.Point) image.Rectangle {
	scale := line.Scale
	if scale < 1 {
		scale = 1
	}
	w, h := size.X*scale, size.Y*scale
	x := (pong.ScreenWidth - w) / 2
	return image.Rect(x, line.Y, x+w, line.Y+h)
}

func (r *Renderer) initText() error {
	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textUProjection = gl.GetUniformLocation(prog, gl.Str("uProjection\x00"))
	r.textUColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.textUTex = gl.GetUniformLocation(prog, gl.Str("uTextTex\x00"))
	gl.Uniform1i(r.textUTex, 0)

	// Per-vertex pos(2) + uv(2).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(4 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))

	r.textVAO = vao
	r.textVBO = vbo
	r.textCache = make(map[string]*textTexture)
	gl.BindVertexArray(0)
	return nil
}

// lineTexture returns the cached texture for text, rasterising it on first use.
func (r *Renderer) lineTexture(text string) *textTexture {
	if tt, ok := r.textCache[text]; ok {
		return tt
	}
	img := RasterizeText(text)
	b := img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	tt := &textTexture{tex: tex, size: b.Size()}
	r.textCache[text] = tt
	return tt
}

func (r *Renderer) clearTextCache() {
	for text, tt := range r.textCache {
		gl.DeleteTextures(1, &tt.tex)
		delete(r.textCache, text)
	}
}

// DrawText draws overlay lines on top of the field.
func (r *Renderer) DrawText(lines []pong.TextLine) {
	if len(lines) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.UniformMatrix4fv(r.textUProjection, 1, false, &r.projection[0])
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	for _, line := range lines {
		if line.Text == "" {
			continue
		}
		tt := r.lineTexture(line.Text)
		rect := textRect(line, tt.size)
		x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
		x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)
		verts := [24]float32{
			x0, y0, 0, 0,
			x1, y0, 1, 0,
			x1, y1, 1, 1,
			x0, y0, 0, 0,
			x1, y1, 1, 1,
			x0, y1, 0, 1,
		}
		gl.BindTexture(gl.TEXTURE_2D, tt.tex)
		gl.Uniform3f(r.textUColor,
			float32(line.Color.R)/255.0,
			float32(line.Color.G)/255.0,
			float32(line.Color.B)/255.0)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
