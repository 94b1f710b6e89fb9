package renderer

// Point sprites sized in world units and attenuated by view depth, drawn as
// soft discs.
const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform float uPointSize;
uniform float uViewportHeight;

out vec3 vColor;

void main() {
	vec4 viewPos = uView * uModel * vec4(aPos, 1.0);
	gl_Position = uProjection * viewPos;
	gl_PointSize = max(1.0, uPointSize * uProjection[1][1] * uViewportHeight * 0.5 / -viewPos.z);
	vColor = aColor;
}
`

const fragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
	vec2 c = gl_PointCoord * 2.0 - 1.0;
	float d = dot(c, c);
	if (d > 1.0) {
		discard;
	}
	FragColor = vec4(vColor, 1.0 - d * 0.5);
}
`
