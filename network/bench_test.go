package network_test

import (
	"testing"

	"github.com/katalvlaran/sirnet/network"
)

// BenchmarkGenerate_Dense measures G(n,p) on a dense 1000-node graph.
func BenchmarkGenerate_Dense(b *testing.B) {
	const n = 1000
	b.ReportAllocs()
	b.SetBytes(int64(n * n * 4))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = network.Generate(n, 0.7, network.WithSeed(uint64(i)))
	}
}

// BenchmarkComponents measures the gonum connected-components view.
func BenchmarkComponents(b *testing.B) {
	nw, err := network.Generate(2000, 0.001, network.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = nw.Components()
	}
}
