// Package codec centralizes boundary encoding for ambient-geometry data.
//
// Codec selection is an interchange boundary: snapshots written with one
// codec must be opened with the same codec, so self-describing formats store
// the codec name in their header and resolve it via ByName.
package codec

import (
	"fmt"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Compressed variants are named "zstd+<inner>" and resolve recursively.
func ByName(name string) (Codec, bool) {
	if inner, ok := strings.CutPrefix(name, "zstd+"); ok {
		c, ok := ByName(inner)
		if !ok {
			return nil, false
		}
		return Zstd{Inner: c}, true
	}
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
