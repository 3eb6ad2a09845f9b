// Package mathval is a kernel of mathematical value types that parse from
// text, hold their invariants, and render back to text.
//
// What is in the box?
//
//	rational/  exact fractions: simplify, mixed numbers, float approximation, LaTeX
//	angle/     degrees, radians, gradians, turns and DMS; normalization; DMS dialects
//	interval/  closed/open/half-open and unbounded intervals, set-builder notation
//	units/     unit quantities over immutable registries; YAML unit tables
//	vector/    n-dimensional vectors: products, angles, projections, î ĵ k̂ notation
//	matrix/    dense matrices: determinant, trace, resize, LaTeX/MATLAB/NumPy/Mathematica export
//	tensor/    rank-N tensors: row-major indexing, reshape, transpose, 2-D slices
//	numstr/    bounded numeric text: validation, saturating steps, display styles, paste cleanup
//
// Every package follows the same contract:
//
//   - constructors and parsers return sentinel errors (errors.Is) instead of
//     panicking; panics are reserved for programmer errors such as invalid
//     functional options;
//   - values are plain data; types that own buffers (matrix.Dense,
//     tensor.Tensor) copy their inputs and expose copies;
//   - nothing logs; callers decide.
//
// Quick example:
//
//	f, _ := rational.Parse("2 3/4")
//	fmt.Println(f.Simplify(), f.LaTeX()) // 11/4 \frac{11}{4}
//
//	m, _ := matrix.Parse("[1, 2; 3, 4]")
//	det, _ := m.Determinant() // -2
//
// The mathval command (cmd/mathval) exposes each package from the shell.
//
//	go install github.com/katalvlaran/mathval/cmd/mathval@latest
package mathval
