// Package quad opens a native window and renders a single static colored
// quad with WebGPU, clearing to white and redrawing only when the platform
// asks for a frame.
//
// # Overview
//
// quad is deliberately small: it is the device/surface/pipeline bootstrap
// that every WebGPU program starts from, packaged as a library with a
// runnable command. There is no scene graph, no asset loading, and no
// animation: the whole program is initialization plus one render pass of
// six hard-coded vertices through a pass-through shader pair.
//
// # Quick Start
//
//	import "github.com/gogpu/quad"
//
//	func main() {
//	    runtime.LockOSThread()
//	    if err := quad.Run(quad.WithTitle("quad")); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Architecture
//
// Two components do all the work:
//
//   - GraphicsContext owns the surface, device, queue, and surface
//     configuration, and reconfigures the surface on resize or loss.
//   - FrameRenderer owns the fixed pipeline and the static vertex buffer,
//     and encodes exactly one clear-then-draw pass per redraw request.
//
// A GLFW event loop dispatches resize, close, key, and redraw events to
// them one at a time; there is no other concurrency.
//
// # Rendering model
//
// Frames are event-driven: a frame is rendered on startup and whenever the
// platform delivers a refresh event, which it also does during interactive
// resizes. The loop blocks between events and the program idles at zero
// CPU while nothing changes.
//
// # Logging
//
// quad produces no log output by default. Call [SetLogger] to enable it.
package quad
