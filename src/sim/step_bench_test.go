package sim

import (
	"fmt"
	"testing"
)

var benchSizes = []Dimensions{
	{Width: 10, Height: 10},
	{Width: 50, Height: 50},
	{Width: 200, Height: 200},
}

func Benchmark_Step(b *testing.B) {
	for _, d := range benchSizes {
		b.Run(fmt.Sprintf("%vx%v", d.Width, d.Height), func(b *testing.B) {
			g, seed := Generate(d, 5, NewSeed(1))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, seed = Step(g, testFoxCfg, testRabbitCfg, seed)
			}
		})
	}
}

func Benchmark_Generate(b *testing.B) {
	for _, d := range benchSizes {
		b.Run(fmt.Sprintf("%vx%v", d.Width, d.Height), func(b *testing.B) {
			seed := NewSeed(1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, seed = Generate(d, 5, seed)
			}
		})
	}
}
