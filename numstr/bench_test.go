// SPDX-License-Identifier: MIT

package numstr_test

import (
	"testing"

	"github.com/katalvlaran/mathval/numstr"
)

var sinkS string

func BenchmarkIncrement(b *testing.B) {
	for _, p := range []numstr.Precision{numstr.U64, numstr.I128, numstr.Decimal(2), numstr.BigDecimal} {
		b.Run(p.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkS = numstr.Increment(p, "1,000", "1", numstr.Bounds{Max: "5000"})
			}
		})
	}
}

func BenchmarkNormalizePaste(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkS = numstr.NormalizePaste("USD 1 234 567,89", ',')
	}
}
