// Command quad opens a window and renders a static colored quad on the
// GPU. The window is cleared to white and redrawn only when the platform
// asks for it; closing the window or pressing Escape exits.
//
// Usage:
//
//	quad [-title name] [-width px] [-height px] [-debug] [-trace]
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/quad"
)

func init() {
	// GLFW and the surface must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		title  = flag.String("title", "quad", "window title")
		width  = flag.Int("width", 800, "initial window width in screen coordinates")
		height = flag.Int("height", 600, "initial window height in screen coordinates")
		debug  = flag.Bool("debug", false, "enable debug logging to stderr")
		trace  = flag.Bool("trace", false, "log per-frame render commands (implies -debug)")
	)
	flag.Parse()

	if *debug || *trace {
		quad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []quad.Option{
		quad.WithTitle(*title),
		quad.WithSize(*width, *height),
	}
	if *trace {
		opts = append(opts, quad.WithFrameTrace())
	}

	if err := quad.Run(opts...); err != nil {
		log.Fatalf("quad: %v", err)
	}
}
