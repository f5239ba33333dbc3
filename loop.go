package quad

import "errors"

// frameDrawer renders one frame on request.
type frameDrawer interface {
	RenderFrame() error
}

// surfaceHolder is the part of [GraphicsContext] the run loop drives.
type surfaceHolder interface {
	Resize(width, height uint32)
	Reconfigure()
}

// loop dispatches window events to the graphics context and the
// renderer. It is single-threaded: one event at a time, no locking.
type loop struct {
	target   surfaceHolder
	renderer frameDrawer
}

// dispatch handles one event. It reports whether the program should
// exit, and the error that forced the exit, if any.
func (l *loop) dispatch(ev Event) (done bool, err error) {
	switch ev.Kind {
	case EventClose:
		Logger().Info("quad: close requested")
		return true, nil
	case EventKey:
		if ev.Key == KeyEscape && ev.Pressed {
			Logger().Info("quad: escape pressed")
			return true, nil
		}
	case EventResized, EventScaleChanged:
		l.target.Resize(ev.Width, ev.Height)
	case EventRedraw:
		return l.renderFrame()
	}
	return false, nil
}

// renderFrame runs one render and applies the error policy: a lost
// surface reconfigures at the current size and resumes on the next
// redraw, GPU memory exhaustion exits with the error, and anything else
// drops this one frame.
func (l *loop) renderFrame() (done bool, err error) {
	err = l.renderer.RenderFrame()
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrSurfaceLost):
		Logger().Warn("quad: surface lost, reconfiguring", "err", err)
		l.target.Reconfigure()
		return false, nil
	case errors.Is(err, ErrOutOfMemory):
		return true, err
	default:
		Logger().Warn("quad: dropping frame", "err", err)
		return false, nil
	}
}
