package quad

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.title != "quad" {
		t.Errorf("title = %q, want %q", o.title, "quad")
	}
	if o.width != 800 || o.height != 600 {
		t.Errorf("size = %dx%d, want 800x600", o.width, o.height)
	}
	if o.power != wgpu.PowerPreferenceLowPower {
		t.Errorf("power = %v, want low power", o.power)
	}
	if o.trace {
		t.Error("trace should default to off")
	}
}

func TestWithTitle(t *testing.T) {
	o := applyOptions([]Option{WithTitle("demo")})
	if o.title != "demo" {
		t.Errorf("title = %q, want %q", o.title, "demo")
	}
}

func TestWithSize(t *testing.T) {
	o := applyOptions([]Option{WithSize(1280, 720)})
	if o.width != 1280 || o.height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", o.width, o.height)
	}
}

func TestWithSizeRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := applyOptions([]Option{WithSize(tt.width, tt.height)})
			if o.width != 800 || o.height != 600 {
				t.Errorf("size = %dx%d, want 800x600 fallback", o.width, o.height)
			}
		})
	}
}

func TestWithPowerPreference(t *testing.T) {
	o := applyOptions([]Option{WithPowerPreference(wgpu.PowerPreferenceHighPerformance)})
	if o.power != wgpu.PowerPreferenceHighPerformance {
		t.Errorf("power = %v, want high performance", o.power)
	}
}

func TestWithFrameTrace(t *testing.T) {
	o := applyOptions([]Option{WithFrameTrace()})
	if !o.trace {
		t.Error("trace should be on")
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	o := applyOptions([]Option{WithTitle("first"), WithTitle("second")})
	if o.title != "second" {
		t.Errorf("title = %q, want %q", o.title, "second")
	}
}
