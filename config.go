package quad

import "github.com/cogentcore/webgpu/wgpu"

// pickSurfaceFormat selects the texture format for the surface from the
// formats it supports, in preference order: preferring an sRGB format so
// colors are gamma-correct without shader-side conversion, else the first
// supported format. The capabilities list is never empty for a valid
// surface; an empty list falls back to BGRA8 sRGB, the most widely
// supported surface format.
func pickSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if isSRGBFormat(f) {
			return f
		}
	}
	if len(formats) > 0 {
		return formats[0]
	}
	return wgpu.TextureFormatBGRA8UnormSrgb
}

// isSRGBFormat reports whether f is an sRGB color format. Only the two
// 8-bit formats occur as surface formats.
func isSRGBFormat(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// newSurfaceConfiguration builds the initial surface configuration from
// the surface capabilities and the window's framebuffer pixel size:
// render-attachment usage, vsync (FIFO) presentation, and the first
// supported alpha mode.
func newSurfaceConfiguration(caps wgpu.SurfaceCapabilities, width, height uint32) wgpu.SurfaceConfiguration {
	alpha := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alpha = caps.AlphaModes[0]
	}
	return wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      pickSurfaceFormat(caps.Formats),
		Width:       width,
		Height:      height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   alpha,
	}
}

// applyResize updates the stored configuration for a new framebuffer
// size. It reports false, leaving the configuration untouched, when
// either dimension is zero: minimized windows deliver transient zero
// sizes that would produce an invalid surface configuration.
func applyResize(cfg *wgpu.SurfaceConfiguration, width, height uint32) bool {
	if width == 0 || height == 0 {
		return false
	}
	cfg.Width = width
	cfg.Height = height
	return true
}
