package pipegrid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ringText builds an n×n grid holding one square loop along the border.
func ringText(n int) string {
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == 0 && c == 0:
				sb.WriteByte('S')
			case r == 0 && c == n-1:
				sb.WriteByte('7')
			case r == n-1 && c == 0:
				sb.WriteByte('L')
			case r == n-1 && c == n-1:
				sb.WriteByte('J')
			case r == 0 || r == n-1:
				sb.WriteByte('-')
			case c == 0 || c == n-1:
				sb.WriteByte('|')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkParse measures parsing a 140×140 grid.
func BenchmarkParse(b *testing.B) {
	text := ringText(140)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipegrid.Parse(text); err != nil {
			b.Fatal(err)
		}
	}
}
