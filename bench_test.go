package cospit_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cospit"
	"github.com/katalvlaran/cospit/spiketrain"
)

var (
	benchRates = []float64{50, 80, 120, 60, 150}
	benchPCCs  = []float64{0.1, 0.05, 0.2, 0.1, 0.15, 0.05, 0.1, 0.2, 0.05, 0.1}
)

// BenchmarkNewGenerator measures the solver for five targets.
func BenchmarkNewGenerator(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cospit.NewGenerator(benchRates, benchPCCs); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate measures one realisation of 10 time units with a solved mixture.
func BenchmarkGenerate(b *testing.B) {
	g, err := cospit.NewGenerator(benchRates, benchPCCs)
	if err != nil {
		b.Fatal(err)
	}
	src := spiketrain.NewSource(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(10, src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateBatches measures eight parallel realisations.
func BenchmarkGenerateBatches(b *testing.B) {
	g, err := cospit.NewGenerator(benchRates, benchPCCs)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.GenerateBatches(ctx, 8, 10, uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
}
