package quad

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// shaderWGSL is the fixed shader pair: a vertex stage that lifts the 3D
// position into clip space with w=1 and passes the color through, and a
// fragment stage that emits the interpolated color at full opacity.
//
//go:embed quad.wgsl
var shaderWGSL string

// Shader entry point names, matching quad.wgsl.
const (
	vertexEntry   = "vs_main"
	fragmentEntry = "fs_main"
)

// validateShader compiles the embedded WGSL with naga before the device
// ever sees it, so a broken shader fails at pipeline build with a real
// compiler diagnostic instead of an opaque device error.
func validateShader() error {
	if _, err := naga.Compile(shaderWGSL); err != nil {
		return fmt.Errorf("quad: shader validation failed: %w", err)
	}
	return nil
}
