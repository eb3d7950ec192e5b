package shader

// The vertex stage is a plain passthrough written directly in desktop GLSL.
// The quad already lives in clip space, so the position goes out unchanged.
const vertexShaderSource = `#version 410 core
in vec4 aVertexPosition;
void main() {
    gl_Position = aVertexPosition;
}
`

// fractalFragmentSource is the fractal coloring program in its original
// WebGL2 form. It is translated to desktop GLSL at startup; the host never
// interprets it beyond handing it to the compiler.
//
// Per pixel: center and aspect-correct the coordinate, then four folding
// iterations. Each iteration rescales into the fractional cell, measures the
// distance field, rings it with a time-driven sine, sharpens with a power
// falloff, and tints with a cosine palette keyed on the unfolded radius plus
// per-step and global time offsets. Contributions accumulate additively and
// are written opaque.
const fractalFragmentSource = `#version 300 es
precision highp float;

uniform vec2 uResolution;
uniform float uTime;

out vec4 fragColor;

vec3 palette(float t) {
    vec3 a = vec3(0.5, 0.5, 0.5);
    vec3 b = vec3(0.5, 0.5, 0.5);
    vec3 c = vec3(1.0, 1.0, 1.0);
    vec3 d = vec3(0.263, 0.416, 0.557);
    return a + b * cos(6.28318 * (c * t + d));
}

void main() {
    vec2 uv = (gl_FragCoord.xy * 2.0 - uResolution) / min(uResolution.x, uResolution.y);
    vec2 uv0 = uv;
    vec3 finalColor = vec3(0.0);

    for (float i = 0.0; i < 4.0; i++) {
        uv = fract(uv * 1.5) - 0.5;

        float d = length(uv) * exp(-length(uv0));

        vec3 col = palette(length(uv0) + i * 0.4 + uTime * 0.4);

        d = sin(d * 8.0 + uTime) / 8.0;
        d = abs(d);
        d = pow(0.005 / d, 1.2);

        finalColor += col * d;
    }

    fragColor = vec4(finalColor, 1.0);
}
`

// VertexSource returns the passthrough vertex shader in desktop GLSL.
func VertexSource() string {
	return vertexShaderSource
}

// FragmentSource returns the fractal fragment shader in its WebGL2 source
// form, ready for translation.
func FragmentSource() string {
	return fractalFragmentSource
}
