package traitconv

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"
)

// Option configures [Convert].
type Option func(*options)

type options struct {
	output Format
	logger *zap.Logger
}

// WithOutput overrides the output format. It must carry the opposite record
// shape of the input format. Default: [Format.Counterpart] of the input.
func WithOutput(f Format) Option {
	return func(o *options) { o.output = f }
}

// WithLogger sets the logger used for debug events. Default: no logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// ReadMetadata decodes a whole document of Metadata records. f must be
// [JSON] or [YAML].
func ReadMetadata(r io.Reader, f Format) ([]Metadata, error) {
	switch f {
	case JSON:
		return readJSON(r)
	case YAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q does not carry metadata", ErrUnsupportedFormat, f)
	}
}

// ReadCollectibles decodes a whole CSV document. See [Collectibles].
func ReadCollectibles(r io.Reader) ([]Collectible, error) {
	return collect(Collectibles(r))
}

type record interface {
	Metadata | Collectible
	edition() uint32
}

// SortByEdition sorts items by ascending edition. Items sharing an edition
// keep their relative order.
func SortByEdition[T record](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(a.edition(), b.edition())
	})
}

// Convert reads a whole document in format from, maps every record to the
// other shape, sorts the result by edition and writes it to w.
//
// Decode failures match [ErrInputDecode]; write failures match
// [ErrOutputEncode]. Nothing is written when decoding fails.
func Convert(r io.Reader, w io.Writer, from Format, opts ...Option) error {
	o := options{output: from.Counterpart(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkDirection(from, o.output); err != nil {
		return err
	}
	log := o.logger.With(zap.Stringer("from", from), zap.Stringer("to", o.output))

	if from.Shape() == ShapeCollectible {
		items, err := ReadCollectibles(r)
		if err != nil {
			return err
		}
		log.Debug("decoded records", zap.Int("count", len(items)))
		out := make([]Metadata, len(items))
		for i, c := range items {
			out[i] = ToMetadata(c)
		}
		SortByEdition(out)
		return encode(w, o.output, out, log)
	}

	items, err := ReadMetadata(r, from)
	if err != nil {
		return err
	}
	log.Debug("decoded records", zap.Int("count", len(items)))
	SortByEdition(items)
	out := make([]Collectible, len(items))
	for i, m := range items {
		out[i] = ToCollectible(m)
	}
	return encode(w, o.output, out, log)
}

func checkDirection(from, to Format) error {
	for _, f := range []Format{from, to} {
		if _, err := ParseFormat(string(f)); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	if from.Shape() == to.Shape() {
		return fmt.Errorf("%w: %w: cannot convert %s to %s", ErrConfig, ErrUnsupportedFormat, from, to)
	}
	return nil
}

func encode[T record](w io.Writer, f Format, items []T, log *zap.Logger) error {
	if err := Write(w, f, items...); err != nil {
		return err
	}
	log.Debug("encoded records", zap.Int("count", len(items)))
	return nil
}
