// Package eigen solves the dominant eigenpair of a symmetric 4×4 matrix,
// the core step of fitting a unit quaternion to a 3×3 rotation candidate.
//
// 🚀 Pipeline
//
//	original M ──copy──▶ scratch ──Tridiagonalize──▶ (diag, sub)
//	                                                   │
//	                               LargestEigenvalue ◀─┘  (Gerschgorin + Sturm bisection)
//	                                       │ λ
//	original M ──shift by −λI──▶ Eigenvector ──▶ unit v with M·v ≈ λ·v
//
// ✨ Key properties:
//   - Tridiagonalize consumes its scratch buffer; the eigenvector step needs
//     the untouched original, so callers keep two buffers (Dominant does).
//   - Bisection always terminates: it stops when the interval collapses
//     below matrix.BisectionTolerance or stops moving in float64.
//   - The eigenvector is a row of the adjugate of M − λI. Four rows are
//     tried in order; the first with enough norm wins, otherwise the call
//     fails with matrix.ErrDegenerateEigenspace (repeated dominant
//     eigenvalue, zero matrix, ...).
//   - Jacobi is the slow full decomposition. It accepts repeated
//     eigenvalues and is the tool for inspecting inputs Dominant rejects.
//
// ⚙️ Usage:
//
//	pair, err := eigen.Dominant(m)
//	if err != nil {
//	  // errors.Is(err, matrix.ErrDegenerateEigenspace)
//	}
//	fmt.Println(pair.Value, pair.Vector)
//
// Performance:
//
//   - Time:   O(1); bisection runs at most ~60 iterations in float64.
//   - Memory: stack only.
package eigen
