package quad

// Run opens a window, initializes the GPU context and renderer, and
// services window events until the window closes, Escape is pressed, or
// rendering fails unrecoverably. It returns nil on a normal exit.
//
// Run must execute on the main OS thread; callers pin it with
// runtime.LockOSThread before any goroutines start.
func Run(opts ...Option) error {
	o := applyOptions(opts)

	win, err := NewWindow(o.title, o.width, o.height)
	if err != nil {
		return err
	}
	defer win.Destroy()

	gc, err := NewGraphicsContext(win, o.power)
	if err != nil {
		return err
	}
	defer gc.Release()

	renderer, err := NewFrameRenderer(gc, o.trace)
	if err != nil {
		return err
	}
	defer renderer.Release()

	l := &loop{target: gc, renderer: renderer}

	// The platform does not necessarily deliver an initial expose event,
	// so seed one redraw. After this, frames happen only when the
	// platform asks for them.
	if done, err := l.dispatch(Event{Kind: EventRedraw}); done {
		return err
	}

	for {
		for _, ev := range win.WaitEvents() {
			if done, err := l.dispatch(ev); done {
				return err
			}
		}
	}
}
