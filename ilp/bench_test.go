package ilp_test

import (
	"testing"

	"github.com/katalvlaran/adventkit/ilp"
)

// BenchmarkBranchBound_Coupled measures the solver on the six-variable,
// four-equality system with several equal-total optima.
func BenchmarkBranchBound_Coupled(b *testing.B) {
	sys, err := ilp.NewSystem(6)
	if err != nil {
		b.Fatal(err)
	}
	for _, eq := range []struct {
		vars   []int
		target int64
	}{
		{[]int{4, 5}, 3},
		{[]int{1, 5}, 5},
		{[]int{2, 3, 4}, 4},
		{[]int{0, 1, 3}, 7},
	} {
		if err := sys.AddEquality(eq.vars, eq.target); err != nil {
			b.Fatal(err)
		}
	}
	solver := ilp.BranchBound{}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = solver.Minimize(sys)
	}
}

// BenchmarkBranchBound_Wide stresses the objective-bound pruning: many
// variables sharing one large equality.
func BenchmarkBranchBound_Wide(b *testing.B) {
	const vars = 8
	sys, err := ilp.NewSystem(vars)
	if err != nil {
		b.Fatal(err)
	}
	all := make([]int, vars)
	for i := range all {
		all[i] = i
	}
	if err := sys.AddEquality(all, 12); err != nil {
		b.Fatal(err)
	}
	solver := ilp.BranchBound{}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = solver.Minimize(sys)
	}
}
