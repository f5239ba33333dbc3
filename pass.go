package quad

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// White is the fixed clear color: every frame starts from a fully opaque
// white target before the quad is drawn.
var White = wgpu.Color{R: 1, G: 1, B: 1, A: 1}

// FramePass is one frame's worth of render commands against an acquired
// surface texture. The renderer drives it in a fixed order: Clear first,
// then the pipeline and vertex bindings, exactly one Draw, End to submit,
// and Present to show the frame. Implementations: the device-backed pass
// in this package and the capturing [recording.Recorder].
type FramePass interface {
	// Clear begins the pass with a full clear of the target to c.
	Clear(c wgpu.Color)

	// BindPipeline selects the fixed quad pipeline.
	BindPipeline()

	// BindVertexBuffer attaches the static vertex buffer to slot 0.
	BindVertexBuffer()

	// Draw draws vertexCount vertices in instanceCount instances.
	Draw(vertexCount, instanceCount uint32)

	// End closes the pass and submits the recorded commands.
	End() error

	// Present shows the submitted frame on the surface.
	Present()
}

// wgpuPass is the device-backed FramePass. It encodes into a wgpu command
// encoder and submits to the context queue.
type wgpuPass struct {
	gc       *GraphicsContext
	pipeline *wgpu.RenderPipeline
	vertices *wgpu.Buffer

	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder
	rp      *wgpu.RenderPassEncoder
}

func (p *wgpuPass) Clear(c wgpu.Color) {
	p.rp = p.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "quad render pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       p.view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: c,
		}},
	})
}

func (p *wgpuPass) BindPipeline() {
	p.rp.SetPipeline(p.pipeline)
}

func (p *wgpuPass) BindVertexBuffer() {
	p.rp.SetVertexBuffer(0, p.vertices, 0, wgpu.WholeSize)
}

func (p *wgpuPass) Draw(vertexCount, instanceCount uint32) {
	p.rp.Draw(vertexCount, instanceCount, 0, 0)
}

func (p *wgpuPass) End() error {
	p.rp.End()
	p.rp.Release() // must happen before Finish
	p.rp = nil

	cmd, err := p.encoder.Finish(nil)
	if err != nil {
		p.release()
		return fmt.Errorf("quad: command encoding failed: %w", err)
	}
	p.gc.queue.Submit(cmd)
	cmd.Release()
	p.release()
	return nil
}

func (p *wgpuPass) Present() {
	p.gc.surface.Present()
}

func (p *wgpuPass) release() {
	if p.encoder != nil {
		p.encoder.Release()
		p.encoder = nil
	}
	if p.view != nil {
		p.view.Release()
		p.view = nil
	}
}
