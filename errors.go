package quad

import (
	"errors"
	"fmt"
	"strings"
)

// Package errors. Render errors returned by [FrameRenderer.RenderFrame]
// are classified into exactly three outcomes: ErrSurfaceLost is recoverable
// by reconfiguring the surface, ErrOutOfMemory terminates the program, and
// anything else is logged and the frame dropped.
var (
	// ErrNoAdapter is returned when no GPU adapter is available at all,
	// even after falling back from the power-preference request.
	ErrNoAdapter = errors.New("quad: no GPU adapter available")

	// ErrSurfaceLost is returned when the surface became invalid and must
	// be reconfigured before the next frame.
	ErrSurfaceLost = errors.New("quad: surface lost")

	// ErrOutOfMemory is returned when the GPU is out of memory.
	// There is no recovery; the caller must terminate.
	ErrOutOfMemory = errors.New("quad: out of GPU memory")
)

// classifySurfaceError maps a surface texture acquisition error from the
// WebGPU binding onto the package error taxonomy. The binding reports the
// wgpu-native surface status as an opaque error, so the status text is the
// only portable handle. An outdated surface needs the same recovery as a
// lost one (reconfigure with the current size), so both classify as
// [ErrSurfaceLost]. Unrecognized errors pass through unchanged and are
// treated as transient by the caller.
func classifySurfaceError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	case strings.Contains(msg, "lost") || strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %w", ErrSurfaceLost, err)
	default:
		return err
	}
}
