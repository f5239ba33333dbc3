package quad

import "github.com/cogentcore/webgpu/wgpu"

const (
	defaultTitle  = "quad"
	defaultWidth  = 800
	defaultHeight = 600
)

// Option configures [Run].
type Option func(*options)

type options struct {
	title  string
	width  int
	height int
	power  wgpu.PowerPreference
	trace  bool
}

func defaultOptions() options {
	return options{
		title:  defaultTitle,
		width:  defaultWidth,
		height: defaultHeight,
		power:  wgpu.PowerPreferenceLowPower,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		o.width, o.height = defaultWidth, defaultHeight
	}
	return o
}

// WithTitle sets the window title. The default is "quad".
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSize sets the initial window size in screen coordinates. If either
// dimension is non-positive, the size falls back to the 800x600 default.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithPowerPreference sets the adapter power preference hint. The
// default prefers a low-power adapter; if no adapter satisfies the hint,
// adapter selection retries with defaults.
func WithPowerPreference(p wgpu.PowerPreference) Option {
	return func(o *options) { o.power = p }
}

// WithFrameTrace logs each frame's render command stream at debug level.
// The log output only shows once a logger is installed with [SetLogger].
func WithFrameTrace() Option {
	return func(o *options) { o.trace = true }
}
