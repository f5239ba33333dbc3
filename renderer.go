package quad

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/quad/recording"
)

// FrameRenderer owns the fixed render pipeline and the static vertex
// buffer, and encodes exactly one render pass per redraw request.
type FrameRenderer struct {
	gc       *GraphicsContext
	pipeline *wgpu.RenderPipeline
	vertices *wgpu.Buffer
	trace    bool
}

// NewFrameRenderer validates the shader and builds the pipeline against
// gc's surface format. With trace enabled, every frame's command stream
// is logged at debug level before it is encoded on the device.
func NewFrameRenderer(gc *GraphicsContext, trace bool) (*FrameRenderer, error) {
	pipeline, vertices, err := buildPipeline(gc)
	if err != nil {
		return nil, err
	}
	return &FrameRenderer{gc: gc, pipeline: pipeline, vertices: vertices, trace: trace}, nil
}

// RenderFrame acquires the next surface texture, encodes one pass that
// clears the target to white and draws the quad, submits the commands,
// and presents the frame. The returned error matches [ErrSurfaceLost] or
// [ErrOutOfMemory] for the conditions the run loop recovers from or
// terminates on; anything else is a transient failure of this one frame.
func (r *FrameRenderer) RenderFrame() error {
	view, err := r.gc.acquireView()
	if err != nil {
		return err
	}
	encoder, err := r.gc.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		return fmt.Errorf("quad: command encoder creation failed: %w", err)
	}
	if r.trace {
		traceFrame()
	}
	return encodeFrame(&wgpuPass{
		gc:       r.gc,
		pipeline: r.pipeline,
		vertices: r.vertices,
		view:     view,
		encoder:  encoder,
	})
}

// Release frees the pipeline and the vertex buffer.
func (r *FrameRenderer) Release() {
	if r.vertices != nil {
		r.vertices.Release()
		r.vertices = nil
	}
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
}

// encodeFrame drives the fixed per-frame command sequence on p. Present
// runs only after the pass submitted cleanly.
func encodeFrame(p FramePass) error {
	p.Clear(White)
	p.BindPipeline()
	p.BindVertexBuffer()
	p.Draw(uint32(VertexCount), 1)
	if err := p.End(); err != nil {
		return err
	}
	p.Present()
	return nil
}

// traceFrame logs the frame's command stream at debug level by encoding
// it into a recorder instead of the device.
func traceFrame() {
	rec := recording.NewRecorder()
	_ = encodeFrame(rec)
	for i, c := range rec.Commands() {
		Logger().Debug("quad: frame op", "index", i, "op", c.String())
	}
}
