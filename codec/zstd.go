package codec

import (
	"github.com/klauspost/compress/zstd"
)

// Zstd wraps an inner codec with zstd compression. It is intended for large
// ambient snapshots (densely sampled curves, point sets) where JSON payloads
// compress well.
//
// If Inner is nil, Default is used.
type Zstd struct {
	Inner Codec
}

func (z Zstd) inner() Codec {
	if z.Inner == nil {
		return Default
	}
	return z.Inner
}

// Marshal encodes the value with the inner codec and compresses the result.
func (z Zstd) Marshal(v any) ([]byte, error) {
	b, err := z.inner().Marshal(v)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(b, nil), nil
}

// Unmarshal decompresses the data and decodes it with the inner codec.
func (z Zstd) Unmarshal(data []byte, v any) error {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return err
	}
	defer dec.Close()
	b, err := dec.DecodeAll(data, nil)
	if err != nil {
		return err
	}
	return z.inner().Unmarshal(b, v)
}

// Name returns the compound codec name, e.g. "zstd+go-json".
func (z Zstd) Name() string { return "zstd+" + z.inner().Name() }
