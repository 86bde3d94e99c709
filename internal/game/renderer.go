package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Backdrop program.
	bgProg uint32
	bgVAO  uint32
	bgVBO  uint32

	bgUTop    int32
	bgUBottom int32
	bgUTime   int32

	// Round sprite program (droplets, motes).
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Bubble body program — uses spriteVAO.
	bubbleProg        uint32
	bubbleUCamera     int32
	bubbleUZoom       int32
	bubbleUResolution int32

	// Glow (radial light) program — uses spriteVAO, additive blend only.
	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32

	// Pixel text program — solid squares, uses spriteVAO.
	pixelProg        uint32
	pixelUCamera     int32
	pixelUZoom       int32
	pixelUResolution int32

	// Buffered glyph sprites, flushed once per frame.
	textBuf []float32
}

func NewRenderer() (*Renderer, error) {
	bgProg, err := linkProgram(backdropVertSrc, backdropFragSrc)
	if err != nil {
		return nil, fmt.Errorf("backdrop program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	bubbleProg, err := linkProgram(spriteVertSrc, bubbleFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("bubble program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(bubbleProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	pixelProg, err := linkProgram(spriteVertSrc, pixelFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(bubbleProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("pixel program: %w", err)
	}

	r := &Renderer{
		bgProg:     bgProg,
		spriteProg: spriteProg,
		bubbleProg: bubbleProg,
		glowProg:   glowProg,
		pixelProg:  pixelProg,
	}

	// Backdrop VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var bVAO, bVBO uint32
	gl.GenVertexArrays(1, &bVAO)
	gl.GenBuffers(1, &bVBO)
	gl.BindVertexArray(bVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, bVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.bgVAO = bVAO
	r.bgVBO = bVBO

	gl.UseProgram(bgProg)
	r.bgUTop = gl.GetUniformLocation(bgProg, gl.Str("uTop\x00"))
	r.bgUBottom = gl.GetUniformLocation(bgProg, gl.Str("uBottom\x00"))
	r.bgUTime = gl.GetUniformLocation(bgProg, gl.Str("uTime\x00"))

	// Sprite VAO/VBO: streaming buffer shared by all point-sprite programs.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.UseProgram(bubbleProg)
	r.bubbleUCamera = gl.GetUniformLocation(bubbleProg, gl.Str("uCamera\x00"))
	r.bubbleUZoom = gl.GetUniformLocation(bubbleProg, gl.Str("uZoom\x00"))
	r.bubbleUResolution = gl.GetUniformLocation(bubbleProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.UseProgram(pixelProg)
	r.pixelUCamera = gl.GetUniformLocation(pixelProg, gl.Str("uCamera\x00"))
	r.pixelUZoom = gl.GetUniformLocation(pixelProg, gl.Str("uZoom\x00"))
	r.pixelUResolution = gl.GetUniformLocation(pixelProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.bgVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.bgVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.bgProg, r.spriteProg, r.bubbleProg, r.glowProg, r.pixelProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
