package enclosure_test

import (
	"testing"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/internal/fixtures"
)

// BenchmarkClassify measures the parity scan on the junk-pipe fixture.
func BenchmarkClassify(b *testing.B) {
	c, _ := cleaned(b, fixtures.Junk)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enclosure.Classify(c)
	}
}

// BenchmarkFloodCount measures the upscaled flood on the same grid.
func BenchmarkFloodCount(b *testing.B) {
	c, _ := cleaned(b, fixtures.Junk)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enclosure.FloodCount(c)
	}
}
