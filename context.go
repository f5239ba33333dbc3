package quad

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsContext owns the GPU-facing state of a window: the WebGPU
// instance, the platform surface, the selected adapter, the logical
// device with its queue, and the current surface configuration. It is
// not safe for concurrent use; the run loop drives it from one thread.
type GraphicsContext struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	config   wgpu.SurfaceConfiguration
}

// NewGraphicsContext creates the GPU context for win and configures the
// surface at the window's current framebuffer size. Adapter selection
// prefers power as a hint; if no adapter satisfies it, a second request
// with default options runs before giving up with [ErrNoAdapter].
func NewGraphicsContext(win *Window, power wgpu.PowerPreference) (*GraphicsContext, error) {
	gc := &GraphicsContext{}
	gc.instance = wgpu.CreateInstance(nil)
	gc.surface = gc.instance.CreateSurface(win.SurfaceDescriptor())

	adapter, err := gc.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:   power,
		CompatibleSurface: gc.surface,
	})
	if err != nil {
		Logger().Info("quad: preferred adapter unavailable, retrying with defaults",
			"power", power, "err", err)
		adapter, err = gc.instance.RequestAdapter(&wgpu.RequestAdapterOptions{})
		if err != nil {
			gc.Release()
			return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
		}
	}
	gc.adapter = adapter

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		gc.Release()
		return nil, fmt.Errorf("quad: device request failed: %w", err)
	}
	gc.device = device
	gc.queue = device.GetQueue()

	caps := gc.surface.GetCapabilities(adapter)
	width, height := win.FramebufferSize()
	gc.config = newSurfaceConfiguration(caps, width, height)
	gc.surface.Configure(gc.adapter, gc.device, &gc.config)

	Logger().Info("quad: surface configured",
		"format", gc.config.Format,
		"width", gc.config.Width,
		"height", gc.config.Height)
	return gc, nil
}

// Size returns the configured surface size in physical pixels.
func (gc *GraphicsContext) Size() (width, height uint32) {
	return gc.config.Width, gc.config.Height
}

// Format returns the negotiated surface texture format.
func (gc *GraphicsContext) Format() wgpu.TextureFormat {
	return gc.config.Format
}

// Resize updates the surface configuration to the new framebuffer size
// and reapplies it. A zero dimension on either axis rejects the whole
// request and leaves the configuration untouched.
func (gc *GraphicsContext) Resize(width, height uint32) {
	if !applyResize(&gc.config, width, height) {
		Logger().Debug("quad: ignoring zero-sized resize", "width", width, "height", height)
		return
	}
	gc.surface.Configure(gc.adapter, gc.device, &gc.config)
	Logger().Debug("quad: surface resized", "width", width, "height", height)
}

// Reconfigure reapplies the current surface configuration at its current
// size. This is the recovery path for a lost surface.
func (gc *GraphicsContext) Reconfigure() {
	gc.surface.Configure(gc.adapter, gc.device, &gc.config)
}

// acquireView acquires the next surface texture and returns a default
// view of it. Failures come back classified: [ErrSurfaceLost],
// [ErrOutOfMemory], or the underlying error unchanged.
func (gc *GraphicsContext) acquireView() (*wgpu.TextureView, error) {
	texture, err := gc.surface.GetCurrentTexture()
	if err != nil {
		return nil, classifySurfaceError(err)
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, classifySurfaceError(err)
	}
	return view, nil
}

// Release frees all GPU resources in reverse creation order. The context
// must not be used afterwards.
func (gc *GraphicsContext) Release() {
	if gc.queue != nil {
		gc.queue.Release()
		gc.queue = nil
	}
	if gc.device != nil {
		gc.device.Release()
		gc.device = nil
	}
	if gc.adapter != nil {
		gc.adapter.Release()
		gc.adapter = nil
	}
	if gc.surface != nil {
		gc.surface.Release()
		gc.surface = nil
	}
	if gc.instance != nil {
		gc.instance.Release()
		gc.instance = nil
	}
}
