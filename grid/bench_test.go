package grid_test

import (
	"testing"

	"phonoscore/grid"
)

func BenchmarkGrid_Set(b *testing.B) {
	g, err := grid.New[float64](64, 64)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.Set(i%64, (i/64)%64, float64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGrid_At(b *testing.B) {
	g, err := grid.New[float64](64, 64)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.At(i%64, (i/64)%64); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCursor_Advance(b *testing.B) {
	g, err := grid.New[int](256, 256)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cur, _ := grid.NewCursor(g, 0, 0)
		for cur.Advance() {
		}
	}
}

func BenchmarkGrid_Clone(b *testing.B) {
	g, err := grid.New[float64](128, 128)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
