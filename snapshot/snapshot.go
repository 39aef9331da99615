// Package snapshot persists vectors to a blob store and restores them.
//
// Snapshot files are self-describing. A small header records the format
// version, the compression algorithm, and the codec name; the payload
// is the codec-encoded element sequence, optionally compressed. Files
// written with one configuration always load regardless of the current
// defaults.
//
// A restored vector has capacity equal to its size, the same rule as
// copy construction; spare capacity is not a persisted property.
package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/vect"
	"github.com/hupe1980/vect/blobstore"
	"github.com/hupe1980/vect/codec"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	// ErrBadMagic is returned when the blob is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnsupportedVersion is returned for snapshot format versions
	// this build does not understand.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported format version")
	// ErrUnknownCodec is returned when the header names a codec that
	// codec.ByName does not know.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
	// ErrUnknownCompression is returned for unrecognized compression
	// type bytes.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
)

var magic = [4]byte{'V', 'S', 'N', 'P'}

const formatVersion = 1

// The header stores the codec name length in one byte.
const maxCodecNameLen = 255

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 is fast with a moderate ratio.
	CompressionLZ4 Compression = 1
	// CompressionZstd has the better ratio at a slight speed cost.
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Save encodes v and writes it to store under name.
func Save[T any](ctx context.Context, store blobstore.Store, name string, v *vect.Vector[T], optFns ...Option) error {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	codecName := opts.Codec.Name()
	if len(codecName) > maxCodecNameLen {
		return fmt.Errorf("snapshot: codec name %q exceeds %d bytes", codecName, maxCodecNameLen)
	}

	payload, err := opts.Codec.Marshal(v.Slice())
	if err != nil {
		return fmt.Errorf("snapshot: encode payload: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(formatVersion)
	buf.WriteByte(byte(opts.Compression))
	buf.WriteByte(byte(len(codecName)))
	buf.WriteString(codecName)

	if err := compressTo(&buf, payload, opts.Compression); err != nil {
		return err
	}

	if err := store.Put(ctx, name, &buf); err != nil {
		return fmt.Errorf("snapshot: put %q: %w", name, err)
	}

	opts.Logger.Debug("snapshot saved",
		"name", name,
		"elements", v.Len(),
		"codec", codecName,
		"compression", opts.Compression.String(),
	)
	return nil
}

// Load reads the named snapshot from store and rebuilds the vector.
// The element type must match the one the snapshot was saved with.
func Load[T any](ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*vect.Vector[T], error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %q: %w", name, err)
	}
	defer rc.Close()

	data, err := readAll(rc)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %q: %w", name, err)
	}

	items, header, err := decode[T](data)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode %q: %w", name, err)
	}

	opts.Logger.Debug("snapshot loaded",
		"name", name,
		"elements", len(items),
		"codec", header.codecName,
		"compression", header.compression.String(),
	)
	return vect.Of(items...), nil
}

type header struct {
	compression Compression
	codecName   string
	payloadOff  int
}

func parseHeader(data []byte) (header, error) {
	if len(data) < len(magic)+3 || !bytes.Equal(data[:4], magic[:]) {
		return header{}, ErrBadMagic
	}
	if data[4] != formatVersion {
		return header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}
	comp := Compression(data[5])
	nameLen := int(data[6])
	if len(data) < 7+nameLen {
		return header{}, ErrBadMagic
	}
	return header{
		compression: comp,
		codecName:   string(data[7 : 7+nameLen]),
		payloadOff:  7 + nameLen,
	}, nil
}

func decode[T any](data []byte) ([]T, header, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, header{}, err
	}

	c, ok := codec.ByName(h.codecName)
	if !ok {
		return nil, header{}, fmt.Errorf("%w: %q", ErrUnknownCodec, h.codecName)
	}

	payload, err := decompress(data[h.payloadOff:], h.compression)
	if err != nil {
		return nil, header{}, err
	}

	var items []T
	if err := c.Unmarshal(payload, &items); err != nil {
		return nil, header{}, fmt.Errorf("decode payload: %w", err)
	}
	return items, h, nil
}

func compressTo(w io.Writer, payload []byte, comp Compression) error {
	switch comp {
	case CompressionNone:
		_, err := w.Write(payload)
		return err
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		if _, err := lw.Write(payload); err != nil {
			return fmt.Errorf("snapshot: lz4 compress: %w", err)
		}
		return lw.Close()
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("snapshot: zstd writer: %w", err)
		}
		if _, err := zw.Write(payload); err != nil {
			return fmt.Errorf("snapshot: zstd compress: %w", err)
		}
		return zw.Close()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(comp))
	}
}

func decompress(payload []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return payload, nil
	case CompressionLZ4:
		data, err := io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return data, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(comp))
	}
}

// readAll prefers the zero-copy path when the store supports it.
func readAll(rc io.ReadCloser) ([]byte, error) {
	if m, ok := rc.(blobstore.Mappable); ok {
		return m.Bytes()
	}
	return io.ReadAll(rc)
}
