package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backdrop vertex shader: fullscreen quad in NDC.
const backdropVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

out vec2 vUV;

void main() {
    vUV = aPos;
    vec2 ndc = aPos * 2.0 - 1.0;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// Backdrop fragment shader: vertical water gradient with drifting light
// bands and a brightening towards the surface. vUV.y runs 0 at the bottom.
const backdropFragSrc = `#version 410 core

uniform vec3 uTop;
uniform vec3 uBottom;
uniform float uTime;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec3 col = mix(uBottom, uTop, vUV.y);
    float band = sin(vUV.x * 9.0 + uTime * 0.22) * sin(vUV.y * 5.0 - uTime * 0.13);
    col += vec3(0.015) * band;
    col += vec3(0.05, 0.07, 0.08) * pow(vUV.y, 3.0);
    FragColor = vec4(col, 1.0);
}
` + "\x00"

// Sprite vertex shader: point sprites with per-vertex pos/size/color/rotation.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aWorldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;
out float vRotation;

void main() {
    vec2 screenPos = (aWorldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    float ps = floor(aSize * uZoom + 0.5);
    gl_PointSize = max(1.0, ps);
    vColor = aColor;
    vRotation = aRotation;
}
` + "\x00"

// Round sprite fragment shader: soft-edged disc for droplets and motes.
const spriteFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    if (dist > 1.0) discard;
    float a = vColor.a * smoothstep(1.0, 0.72, dist);
    FragColor = vec4(vColor.rgb, a);
}
` + "\x00"

// Pixel sprite fragment shader: solid square, used by the bitmap text path.
const pixelFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Bubble fragment shader: thin translucent shell with a bright rim and a
// specular dot. The wobble phase arrives in vRotation and nudges the
// highlight so bubbles do not all gleam identically.
const bubbleFragSrc = `#version 410 core

in vec4 vColor;
in float vRotation;
out vec4 FragColor;

void main() {
    vec2 uv = gl_PointCoord - vec2(0.5);
    float dist = length(uv) * 2.0; // 0=center, 1=edge
    if (dist > 1.0) discard;

    // Faint centre, denser towards the rim.
    float shell = 0.30 + 0.70 * smoothstep(0.45, 0.95, dist);

    // Bright rim line just inside the edge.
    float rim = smoothstep(0.80, 0.96, dist) * (1.0 - smoothstep(0.96, 1.0, dist));

    // Specular dot upper-left, nudged by the wobble phase.
    vec2 hi = uv - vec2(-0.18 + 0.03 * cos(vRotation), -0.20 + 0.03 * sin(vRotation));
    float spec = exp(-dot(hi, hi) * 38.0);

    vec3 col = vColor.rgb * shell + vec3(1.0) * (rim * 0.45 + spec * 0.85);
    float a = vColor.a * (shell * 0.55 + rim * 0.45 + spec * 0.5);
    a *= 1.0 - smoothstep(0.94, 1.0, dist); // soft edge
    FragColor = vec4(col, clamp(a, 0.0, 1.0));
}
` + "\x00"

// Glow fragment shader: additive radial falloff for light sprites.
// vColor.rgb should be pre-multiplied by desired brightness.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff; // quadratic: natural light falloff
    FragColor = vec4(vColor.rgb * falloff, 1.0);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
