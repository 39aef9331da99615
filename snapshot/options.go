package snapshot

import (
	"github.com/hupe1980/vect"
	"github.com/hupe1980/vect/codec"
)

// Options configures Save and Load. Load only consults the logger; the
// codec and compression are taken from the snapshot header.
type Options struct {
	// Codec encodes the element payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression is applied to the encoded payload. Defaults to
	// CompressionNone.
	Compression Compression

	// Logger receives debug events. Defaults to a no-op logger.
	Logger *vect.Logger
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Codec:       codec.Default,
		Compression: CompressionNone,
		Logger:      vect.NoopLogger(),
	}
}

// WithCodec selects the payload codec.
func WithCodec(c codec.Codec) Option {
	return func(o *Options) {
		o.Codec = c
	}
}

// WithCompression selects the payload compression.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithLogger installs a logger for debug events.
func WithLogger(l *vect.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
