package looptrace_test

import (
	"testing"

	"github.com/katalvlaran/pipeloop/internal/fixtures"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// BenchmarkRun measures inference plus the full walk on the junk-pipe fixture.
func BenchmarkRun(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := pipegrid.MustParse(fixtures.Junk)
		b.StartTimer()
		if _, _, err := looptrace.Run(g); err != nil {
			b.Fatal(err)
		}
	}
}
