package quad

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// buildPipeline compiles the quad shader and creates the render pipeline
// together with the GPU-resident vertex buffer. The pipeline is built
// once against the context's negotiated surface format and never
// rebuilt; a format change after initialization is not supported.
func buildPipeline(gc *GraphicsContext) (*wgpu.RenderPipeline, *wgpu.Buffer, error) {
	if err := validateShader(); err != nil {
		return nil, nil, err
	}

	module, err := gc.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "quad shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderWGSL},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("quad: shader module creation failed: %w", err)
	}
	defer module.Release()

	layout, err := gc.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "quad pipeline layout",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("quad: pipeline layout creation failed: %w", err)
	}
	defer layout.Release()

	pipeline, err := gc.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "quad pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: vertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{vertexLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: fragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    gc.config.Format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:         wgpu.PrimitiveTopologyTriangleList,
			StripIndexFormat: wgpu.IndexFormatUndefined,
			FrontFace:        wgpu.FrontFaceCCW,
			CullMode:         wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("quad: render pipeline creation failed: %w", err)
	}

	vertices, err := gc.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "quad vertex buffer",
		Contents: vertexBytes(),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		pipeline.Release()
		return nil, nil, fmt.Errorf("quad: vertex buffer creation failed: %w", err)
	}
	return pipeline, vertices, nil
}
