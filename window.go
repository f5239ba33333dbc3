package quad

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps a GLFW window without a client graphics API and
// translates its callbacks into [Event] values for the run loop. All
// methods must run on the main OS thread.
type Window struct {
	win    *glfw.Window
	events []Event
}

// NewWindow initializes GLFW and opens a window sized in screen
// coordinates. The window carries no OpenGL context; rendering goes
// through the WebGPU surface created from its descriptor.
func NewWindow(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("quad: glfw init failed: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("quad: window creation failed: %w", err)
	}

	w := &Window{win: win}
	win.SetCloseCallback(func(*glfw.Window) {
		w.push(Event{Kind: EventClose})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := KeyOther
		if key == glfw.KeyEscape {
			k = KeyEscape
		}
		w.push(Event{Kind: EventKey, Key: k, Pressed: action == glfw.Press})
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, fw, fh int) {
		w.push(Event{Kind: EventResized, Width: uint32(fw), Height: uint32(fh)})
	})
	win.SetContentScaleCallback(func(*glfw.Window, float32, float32) {
		fw, fh := win.GetFramebufferSize()
		w.push(Event{Kind: EventScaleChanged, Width: uint32(fw), Height: uint32(fh)})
	})
	win.SetRefreshCallback(func(*glfw.Window) {
		w.push(Event{Kind: EventRedraw})
	})
	return w, nil
}

func (w *Window) push(ev Event) {
	w.events = append(w.events, ev)
}

// SurfaceDescriptor returns the platform surface descriptor used to
// create the WebGPU surface for this window.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

// FramebufferSize returns the window's framebuffer size in physical
// pixels.
func (w *Window) FramebufferSize() (width, height uint32) {
	fw, fh := w.win.GetFramebufferSize()
	return uint32(fw), uint32(fh)
}

// WaitEvents blocks until the platform delivers events and returns them
// in arrival order. Between calls the program sleeps; no event means no
// work, including no redraws.
func (w *Window) WaitEvents() []Event {
	if w.win.ShouldClose() && len(w.events) == 0 {
		return []Event{{Kind: EventClose}}
	}
	glfw.WaitEvents()
	evs := w.events
	w.events = nil
	return evs
}

// Destroy closes the window and shuts GLFW down.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
