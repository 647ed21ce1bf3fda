package codec

import (
	"math"
	"testing"
)

type benchSample struct {
	T     float64   `json:"t"`
	Point []float64 `json:"point"`
}

type benchPayload struct {
	Name    string        `json:"name"`
	Shape   []int         `json:"shape"`
	Samples []benchSample `json:"samples"`
}

func benchPayloadData() benchPayload {
	samples := make([]benchSample, 64)
	for i := range samples {
		t := float64(i) / 63
		samples[i] = benchSample{
			T:     t,
			Point: []float64{math.Cos(t), math.Sin(t), 0},
		}
	}
	return benchPayload{
		Name:    "great-circle",
		Shape:   []int{3},
		Samples: samples,
	}
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func BenchmarkCodec_Marshal_Payload(b *testing.B) {
	payload := benchPayloadData()

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, payload) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, payload) })
	b.Run("zstd+go-json", func(b *testing.B) { benchmarkCodecMarshal(b, Zstd{Inner: GoJSON{}}, payload) })
}

func BenchmarkCodec_Unmarshal_Payload(b *testing.B) {
	payload := benchPayloadData()

	jsonData := MustMarshal(JSON{}, payload)
	zstdData := MustMarshal(Zstd{Inner: JSON{}}, payload)

	b.Run("stdlib", func(b *testing.B) {
		var sink benchPayload
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink benchPayload
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("zstd+json", func(b *testing.B) {
		var sink benchPayload
		benchmarkCodecUnmarshal(b, Zstd{Inner: JSON{}}, zstdData, &sink)
		_ = sink
	})
}
