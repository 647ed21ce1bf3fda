package ambient

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/tensorward/manifold/codec"
)

// Snapshot framing: uvarint codec-name length, codec name, encoded payload.
// The header makes snapshots self-describing so they can be decoded without
// out-of-band codec configuration.

var errTruncatedSnapshot = errors.New("truncated ambient snapshot")

// EncodeSnapshot serializes a batch of ambient arrays with the given codec.
// A nil codec selects codec.Default.
func EncodeSnapshot(c codec.Codec, arrays []Array) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	payload, err := c.Marshal(arrays)
	if err != nil {
		return nil, err
	}
	name := c.Name()
	buf := binary.AppendUvarint(nil, uint64(len(name)))
	buf = append(buf, name...)
	return append(buf, payload...), nil
}

// DecodeSnapshot deserializes a batch written by EncodeSnapshot, selecting
// the codec recorded in the header.
func DecodeSnapshot(data []byte) ([]Array, error) {
	n, read := binary.Uvarint(data)
	if read <= 0 || uint64(len(data)-read) < n {
		return nil, errTruncatedSnapshot
	}
	name := string(data[read : read+int(n)])
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown snapshot codec %q", name)
	}
	var arrays []Array
	if err := c.Unmarshal(data[read+int(n):], &arrays); err != nil {
		return nil, err
	}
	return arrays, nil
}
