// Package recording captures a frame's render-pass operations as typed
// commands instead of encoding them on a GPU device.
//
// The recording system exists for inspectability: a [Recorder] satisfies
// the same render-pass surface the device-backed pass does, so the same
// frame-encoding code can run against either. Captured commands carry
// their arguments as typed struct fields and print as readable strings,
// which makes them suitable for debug-level frame tracing and for
// asserting command streams in tests.
//
// # Basic Usage
//
// Record a frame, then inspect or replay it:
//
//	rec := recording.NewRecorder()
//	encode(rec) // any code that drives a render pass
//	for _, c := range rec.Commands() {
//		fmt.Println(c)
//	}
//
// Playback replays a recorded stream onto another pass implementation,
// preserving order and arguments.
package recording
