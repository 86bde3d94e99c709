package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawBackground fills the frame with the water gradient for elapsed time t.
func (r *Renderer) DrawBackground(top, bottom RGB, t float64) {
	gl.UseProgram(r.bgProg)
	gl.BindVertexArray(r.bgVAO)

	gl.Uniform3f(r.bgUTop, float32(top.R)/255.0, float32(top.G)/255.0, float32(top.B)/255.0)
	gl.Uniform3f(r.bgUBottom, float32(bottom.R)/255.0, float32(bottom.G)/255.0, float32(bottom.B)/255.0)
	gl.Uniform1f(r.bgUTime, float32(t))

	gl.Disable(gl.BLEND)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawSprites renders round alpha-blended point sprites (droplets, motes).
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawBubbleSprites renders bubble bodies with the shell/rim shader.
// buf format: same as DrawSprites; rotation carries the wobble phase.
func (r *Renderer) DrawBubbleSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(r.bubbleProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.bubbleUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.bubbleUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.bubbleUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
// buf format: same as DrawSprites — RGB pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.glowUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.glowUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawPixelSprites renders solid square sprites; the text path feeds it.
// buf format: same as DrawSprites.
func (r *Renderer) DrawPixelSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(r.pixelProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.pixelUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.pixelUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.pixelUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
