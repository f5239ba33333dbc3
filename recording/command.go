package recording

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// OpKind identifies one render-pass operation.
type OpKind uint8

const (
	// OpClear begins the pass by clearing the target to a color.
	OpClear OpKind = iota

	// OpBindPipeline selects the render pipeline.
	OpBindPipeline

	// OpBindVertexBuffer attaches the vertex buffer to slot 0.
	OpBindVertexBuffer

	// OpDraw issues a draw call.
	OpDraw

	// OpEnd closes the pass and submits its commands.
	OpEnd

	// OpPresent shows the submitted frame.
	OpPresent
)

var opKindNames = [...]string{
	OpClear:            "Clear",
	OpBindPipeline:     "BindPipeline",
	OpBindVertexBuffer: "BindVertexBuffer",
	OpDraw:             "Draw",
	OpEnd:              "End",
	OpPresent:          "Present",
}

// String returns the operation name.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// Command is one recorded operation with its arguments. Which fields are
// meaningful depends on Kind: Color for OpClear, VertexCount and
// InstanceCount for OpDraw.
type Command struct {
	Kind OpKind

	// Color is the clear color for OpClear.
	Color wgpu.Color

	// VertexCount and InstanceCount are the arguments of OpDraw.
	VertexCount   uint32
	InstanceCount uint32
}

// String renders the command with its arguments, e.g. "Clear(1, 1, 1, 1)"
// or "Draw(6, 1)". Argument-free operations print as their bare name.
func (c Command) String() string {
	switch c.Kind {
	case OpClear:
		return fmt.Sprintf("Clear(%g, %g, %g, %g)", c.Color.R, c.Color.G, c.Color.B, c.Color.A)
	case OpDraw:
		return fmt.Sprintf("Draw(%d, %d)", c.VertexCount, c.InstanceCount)
	default:
		return c.Kind.String()
	}
}
