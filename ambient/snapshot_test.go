package ambient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorward/manifold/codec"
)

func snapshotArrays() []Array {
	return []Array{
		Leaf(1, 2, 3),
		Pair(Leaf(0, 0, 1), Leaf(1, 0, 0)),
		Pair(Pair(Leaf(1), Leaf(2)), Pair(Leaf(3), Leaf(4))),
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	codecs := []codec.Codec{
		codec.JSON{},
		codec.GoJSON{},
		codec.Zstd{Inner: codec.GoJSON{}},
		nil, // default
	}

	for _, c := range codecs {
		name := "default"
		if c != nil {
			name = c.Name()
		}
		t.Run(name, func(t *testing.T) {
			in := snapshotArrays()
			data, err := EncodeSnapshot(c, in)
			require.NoError(t, err)

			out, err := DecodeSnapshot(data)
			require.NoError(t, err)
			require.Len(t, out, len(in))
			for i := range in {
				assert.True(t, in[i].EqualWithin(out[i], 0, 0))
			}
		})
	}
}

func TestSnapshotTruncated(t *testing.T) {
	_, err := DecodeSnapshot(nil)
	require.Error(t, err)

	_, err = DecodeSnapshot([]byte{250})
	require.Error(t, err)
}

func TestSnapshotUnknownCodec(t *testing.T) {
	data, err := EncodeSnapshot(codec.JSON{}, snapshotArrays())
	require.NoError(t, err)

	// Overwrite the recorded name ("json" has a 1-byte uvarint length).
	data[1] = 'x'
	_, err = DecodeSnapshot(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown snapshot codec")
}
