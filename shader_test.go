package quad

import (
	"strings"
	"testing"
)

func TestShaderEmbedded(t *testing.T) {
	if shaderWGSL == "" {
		t.Fatal("embedded shader source is empty")
	}
	for _, entry := range []string{vertexEntry, fragmentEntry} {
		if !strings.Contains(shaderWGSL, "fn "+entry) {
			t.Errorf("shader source missing entry point %q", entry)
		}
	}
}

func TestValidateShader(t *testing.T) {
	// naga compiles the WGSL entirely in Go, so this runs without a GPU.
	if err := validateShader(); err != nil {
		t.Fatalf("validateShader() = %v", err)
	}
}
