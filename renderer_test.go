package quad

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/quad/recording"
)

func TestEncodeFrameCommandStream(t *testing.T) {
	rec := recording.NewRecorder()
	if err := encodeFrame(rec); err != nil {
		t.Fatalf("encodeFrame: %v", err)
	}

	cmds := rec.Commands()
	wantKinds := []recording.OpKind{
		recording.OpClear,
		recording.OpBindPipeline,
		recording.OpBindVertexBuffer,
		recording.OpDraw,
		recording.OpEnd,
		recording.OpPresent,
	}
	if len(cmds) != len(wantKinds) {
		t.Fatalf("got %d commands, want %d: %v", len(cmds), len(wantKinds), cmds)
	}
	for i, k := range wantKinds {
		if cmds[i].Kind != k {
			t.Errorf("command %d: got %v, want %v", i, cmds[i].Kind, k)
		}
	}
}

func TestEncodeFrameClearsToWhite(t *testing.T) {
	rec := recording.NewRecorder()
	if err := encodeFrame(rec); err != nil {
		t.Fatalf("encodeFrame: %v", err)
	}

	clear := rec.Commands()[0]
	if clear.Color != White {
		t.Errorf("clear color = %+v, want %+v", clear.Color, White)
	}
	if White.R != 1 || White.G != 1 || White.B != 1 || White.A != 1 {
		t.Errorf("White = %+v, want fully opaque white", White)
	}
}

func TestEncodeFrameDrawsQuadOnce(t *testing.T) {
	rec := recording.NewRecorder()
	if err := encodeFrame(rec); err != nil {
		t.Fatalf("encodeFrame: %v", err)
	}

	if rec.DrawCount() != 1 {
		t.Fatalf("DrawCount = %d, want 1", rec.DrawCount())
	}
	for _, c := range rec.Commands() {
		if c.Kind != recording.OpDraw {
			continue
		}
		if c.VertexCount != uint32(VertexCount) {
			t.Errorf("VertexCount = %d, want %d", c.VertexCount, VertexCount)
		}
		if c.InstanceCount != 1 {
			t.Errorf("InstanceCount = %d, want 1", c.InstanceCount)
		}
	}
}

func TestEncodeFramePresentsOnlyAfterSubmit(t *testing.T) {
	rec := recording.NewRecorder()
	if err := encodeFrame(rec); err != nil {
		t.Fatalf("encodeFrame: %v", err)
	}
	if rec.Presented() != 1 {
		t.Errorf("Presented = %d, want 1", rec.Presented())
	}

	errBoom := errors.New("boom")
	failed := recording.NewRecorder()
	failed.FailEnd(errBoom)
	if err := encodeFrame(failed); !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want %v", err, errBoom)
	}
	if failed.Presented() != 0 {
		t.Error("frame must not present after a failed submit")
	}
}

func TestTraceFrameLogsCommandStream(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	traceFrame()

	out := buf.String()
	if got := strings.Count(out, "frame op"); got != 6 {
		t.Fatalf("got %d frame op lines, want 6:\n%s", got, out)
	}
	for _, op := range []string{"Clear(1, 1, 1, 1)", "BindPipeline", "BindVertexBuffer", "Draw(6, 1)", "End", "Present"} {
		if !strings.Contains(out, op) {
			t.Errorf("trace output missing %q:\n%s", op, out)
		}
	}
}
