package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"glb-viewer/internal/scene"
)

// Phong-style material: one directional light plus ambient, with a small
// specular highlight.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec3 ambient;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor;
  vec3 amb = ambient * colDiffuse.rgb;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, colDiffuse.a);
}
`
)

const (
	specularPower    = float32(30)
	specularStrength = float32(0.25)
)

// litShader owns the lit program and its uniform locations.
type litShader struct {
	shader rl.Shader

	viewPos, lightDir, lightColor, ambient int32
	specularPowerLoc, specularStrengthLoc  int32
}

// loadLitShader compiles the program. It returns false when the driver
// rejects it; callers then fall back to raylib's default material.
func loadLitShader() (*litShader, bool) {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(sh) {
		return nil, false
	}
	return &litShader{
		shader:              sh,
		viewPos:             rl.GetShaderLocation(sh, "viewPos"),
		lightDir:            rl.GetShaderLocation(sh, "lightDir"),
		lightColor:          rl.GetShaderLocation(sh, "lightColor"),
		ambient:             rl.GetShaderLocation(sh, "ambient"),
		specularPowerLoc:    rl.GetShaderLocation(sh, "specularPower"),
		specularStrengthLoc: rl.GetShaderLocation(sh, "specularStrength"),
	}, true
}

// apply uploads the frame's lighting. Values are copied into local arrays
// before crossing into C.
func (s *litShader) apply(l scene.Lighting, viewPos [3]float32) {
	set3 := func(loc int32, v [3]float32) {
		if loc >= 0 {
			rl.SetShaderValueV(s.shader, loc, v[:], rl.ShaderUniformVec3, 1)
		}
	}
	set3(s.viewPos, viewPos)
	set3(s.lightDir, l.Direction)
	set3(s.lightColor, l.Diffuse)
	set3(s.ambient, l.Ambient)
	if s.specularPowerLoc >= 0 {
		rl.SetShaderValue(s.shader, s.specularPowerLoc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if s.specularStrengthLoc >= 0 {
		rl.SetShaderValue(s.shader, s.specularStrengthLoc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
}

func (s *litShader) unload() {
	rl.UnloadShader(s.shader)
}
