package recording

import "github.com/cogentcore/webgpu/wgpu"

// Pass is the operation set a recording can be replayed onto. It mirrors
// the render-pass surface of the quad package.
type Pass interface {
	Clear(c wgpu.Color)
	BindPipeline()
	BindVertexBuffer()
	Draw(vertexCount, instanceCount uint32)
	End() error
	Present()
}

// Recorder captures render-pass operations as [Command] values. It
// satisfies [Pass], so any code that drives a render pass can run
// against a Recorder unchanged. The zero value is not ready; use
// [NewRecorder].
type Recorder struct {
	commands  []Command
	presented int
	endErr    error
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear records a clear of the target to c.
func (r *Recorder) Clear(c wgpu.Color) {
	r.commands = append(r.commands, Command{Kind: OpClear, Color: c})
}

// BindPipeline records a pipeline bind.
func (r *Recorder) BindPipeline() {
	r.commands = append(r.commands, Command{Kind: OpBindPipeline})
}

// BindVertexBuffer records a vertex buffer bind.
func (r *Recorder) BindVertexBuffer() {
	r.commands = append(r.commands, Command{Kind: OpBindVertexBuffer})
}

// Draw records a draw call.
func (r *Recorder) Draw(vertexCount, instanceCount uint32) {
	r.commands = append(r.commands, Command{
		Kind:          OpDraw,
		VertexCount:   vertexCount,
		InstanceCount: instanceCount,
	})
}

// End records the end of the pass and returns the error installed with
// [Recorder.FailEnd], if any.
func (r *Recorder) End() error {
	r.commands = append(r.commands, Command{Kind: OpEnd})
	return r.endErr
}

// Present records a present.
func (r *Recorder) Present() {
	r.commands = append(r.commands, Command{Kind: OpPresent})
	r.presented++
}

// FailEnd makes subsequent End calls return err. Tests use this to
// simulate a failed command submission.
func (r *Recorder) FailEnd(err error) {
	r.endErr = err
}

// Commands returns the recorded stream in capture order. The returned
// slice is the recorder's backing store; callers must not mutate it.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Presented returns how many times Present was recorded.
func (r *Recorder) Presented() int {
	return r.presented
}

// DrawCount returns how many draw calls were recorded.
func (r *Recorder) DrawCount() int {
	n := 0
	for _, c := range r.commands {
		if c.Kind == OpDraw {
			n++
		}
	}
	return n
}

// Playback replays the recorded commands onto p in order. An End error
// from p aborts the replay and is returned.
func (r *Recorder) Playback(p Pass) error {
	for _, c := range r.commands {
		switch c.Kind {
		case OpClear:
			p.Clear(c.Color)
		case OpBindPipeline:
			p.BindPipeline()
		case OpBindVertexBuffer:
			p.BindVertexBuffer()
		case OpDraw:
			p.Draw(c.VertexCount, c.InstanceCount)
		case OpEnd:
			if err := p.End(); err != nil {
				return err
			}
		case OpPresent:
			p.Present()
		}
	}
	return nil
}
