package sir_test

import (
	"testing"

	"github.com/katalvlaran/sirnet/network"
	"github.com/katalvlaran/sirnet/sir"
)

// BenchmarkSimulate runs one 100-node, 100-step trajectory per iteration.
func BenchmarkSimulate(b *testing.B) {
	const n = 100
	nw, err := network.Generate(n, 0.1, network.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	x0, err := sir.InitialStates(n, 0.05, sir.WithSeed(2))
	if err != nil {
		b.Fatal(err)
	}
	p := sir.StepParams{InfectionP: 0.05, RecoveryP: 0.1, Steps: 100}
	out := make([]float32, sir.TrajectoryLen(n, p))

	b.ReportAllocs()
	b.SetBytes(int64(len(out) * 4))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = sir.Simulate(nw, x0, uint64(i), p, out)
	}
}
