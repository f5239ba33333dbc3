package quad

import "testing"

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventOther, "Other"},
		{EventClose, "Close"},
		{EventKey, "Key"},
		{EventResized, "Resized"},
		{EventScaleChanged, "ScaleChanged"},
		{EventRedraw, "Redraw"},
		{EventKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
