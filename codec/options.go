package codec

import "github.com/arloliu/hessian2/internal/options"

// EncodeOptions holds the Encoder's configuration. Spec.md §6 defines no
// recognized encode options today; the type exists so the functional-option
// surface is symmetric with DecodeOptions and can grow without breaking
// callers.
type EncodeOptions struct{}

// EncodeOption configures an Encoder.
type EncodeOption = options.Option[*EncodeOptions]

// DecodeOptions holds the Decoder's configuration.
type DecodeOptions struct {
	// AssumeX34AsBytes is the reserved escape hatch named in spec.md §6
	// for the historical 0x34-0x37 string-vs-binary ambiguity. This
	// codec always treats 0x34-0x37 as binary regardless of this field's
	// value (matching the bytecode map in spec.md §4.1); the field is
	// recorded for forward compatibility only.
	AssumeX34AsBytes bool
}

// DecodeOption configures a Decoder.
type DecodeOption = options.Option[*DecodeOptions]

// WithX34AsBytes sets the reserved 0x34-0x37 disambiguation hint. See
// DecodeOptions.AssumeX34AsBytes.
func WithX34AsBytes(v bool) DecodeOption {
	return options.NoError(func(o *DecodeOptions) {
		o.AssumeX34AsBytes = v
	})
}
