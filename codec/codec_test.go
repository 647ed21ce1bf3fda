package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name string      `json:"name"`
	Data [][]float64 `json:"data"`
}

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"json", true},
		{"go-json", true},
		{"zstd+json", true},
		{"zstd+go-json", true},
		{"zstd+zstd+json", true},
		{"msgpack", false},
		{"zstd+msgpack", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	in := samplePayload{
		Name: "great-circle",
		Data: [][]float64{{0, 0, 1}, {0.1, 0, 0.99}, {0.2, 0, 0.98}},
	}

	for _, c := range []Codec{JSON{}, GoJSON{}, Zstd{Inner: JSON{}}, Zstd{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out samplePayload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestZstdDefaultsInner(t *testing.T) {
	z := Zstd{}
	assert.Equal(t, "zstd+"+Default.Name(), z.Name())
}

func TestZstdRejectsGarbage(t *testing.T) {
	var out samplePayload
	err := (Zstd{Inner: JSON{}}).Unmarshal([]byte("not zstd"), &out)
	require.Error(t, err)
}

func TestMustMarshal(t *testing.T) {
	b := MustMarshal(nil, map[string]int{"a": 1})
	assert.NotEmpty(t, b)

	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
