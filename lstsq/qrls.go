package lstsq

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// QRWorkspaceSize returns the optimal workspace length for QRLS on an m*n
// matrix A with right-hand side b, querying backend the way
// mat.QR.factorize queries lapack64.Geqrf (call once with lwork==-1, read
// the optimal size back from work[0]).
//
// The signature accepts A and b (not just m, n) for fidelity with the
// original C qr_workspace_size(m, n, A, b) signature this was distilled
// from. Their contents are not read here, only their lengths are
// validated against m and n: a pure dimension-based query would not need
// them at all, and this implementation does not depend on their values.
//
// Returns ErrBackendUnavailable if backend is nil, ErrInvalidDimension if
// m, n <= 0 or A/b are shorter than their declared shape requires.
func QRWorkspaceSize(backend Backend, m, n int, A, b []float64) (int, error) {
	if backend == nil {
		return 0, ErrBackendUnavailable
	}
	if m <= 0 || n <= 0 {
		return 0, ErrInvalidDimension
	}
	if len(A) < m*n || len(b) < max(m, n) {
		return 0, ErrInvalidDimension
	}

	k := min(m, n)
	tau := make([]float64, k)
	a := blas64.General{Rows: m, Cols: n, Stride: n, Data: make([]float64, m*n)}
	work := []float64{0}

	best := 0
	if m >= n {
		backend.Geqrf(a, tau, work, -1)
		best = max(best, int(work[0]))
		c := blas64.General{Rows: m, Cols: 1, Stride: 1, Data: make([]float64, m)}
		backend.Ormqr(blas.Left, blas.Trans, a, tau, c, work, -1)
		best = max(best, int(work[0]))
	} else {
		backend.Gelqf(a, tau, work, -1)
		best = max(best, int(work[0]))
		c := blas64.General{Rows: n, Cols: 1, Stride: 1, Data: make([]float64, n)}
		backend.Ormlq(blas.Left, blas.Trans, a, tau, c, work, -1)
		best = max(best, int(work[0]))
	}
	if best < k {
		best = k
	}
	return best, nil
}

// QRLS solves min||A*x-b||_2 for a full-rank m*n matrix A, using a QR
// factorization when m>=n or an LQ factorization when m<n. A is
// overwritten by the compact factorization representation (Geqrf/Gelqf's
// output); on exit the first n entries of b hold the solution and any
// remaining entries (when m>n) hold the residual tail.
//
// Unlike CGLS and gemm's column-packed convention, A here is stored
// row-major with stride n (element (i,j) at A[i*n+j]): this matches the
// layout gonum's LAPACK back end (and blas64.General generally) requires,
// and QRLS/SVDLS exist precisely to hand a matrix to that back end, so
// this module does not additionally transpose-copy on every call the way
// it would have to if it insisted on column-packed storage here too.
//
// work must have length >= lwork, and lwork should be the value returned
// by QRWorkspaceSize for the same shape. Returns ErrBackendUnavailable if
// backend is nil, ErrWorkspaceTooSmall if work is shorter than lwork or
// lwork is below QRWorkspaceSize, and ErrInvalidDimension under the same
// conditions as QRWorkspaceSize.
//
// A is assumed full rank; a rank-deficient A should instead use SVDLS.
func QRLS(backend Backend, m, n int, A, b []float64, work []float64, lwork int) (Status, error) {
	if backend == nil {
		return 0, ErrBackendUnavailable
	}
	if m <= 0 || n <= 0 {
		return 0, ErrInvalidDimension
	}
	if lwork < 0 || len(work) < lwork {
		return 0, ErrWorkspaceTooSmall
	}
	need, err := QRWorkspaceSize(backend, m, n, A, b)
	if err != nil {
		return 0, err
	}
	if lwork < need {
		return 0, ErrWorkspaceTooSmall
	}

	k := min(m, n)
	tau := make([]float64, k)
	a := blas64.General{Rows: m, Cols: n, Stride: n, Data: A}

	if m >= n {
		backend.Geqrf(a, tau, work, lwork)

		// c <- Q^T * b (b treated as an m x 1 matrix)
		c := blas64.General{Rows: m, Cols: 1, Stride: 1, Data: b}
		backend.Ormqr(blas.Left, blas.Trans, a, tau, c, work, lwork)

		// Solve R*x = c[:n] in place; R is the upper-triangular part of a.
		r := blas64.General{Rows: n, Cols: n, Stride: a.Stride, Data: a.Data}
		x := blas64.General{Rows: n, Cols: 1, Stride: 1, Data: b[:n]}
		ok := backend.Trtrs(blas.Upper, blas.NoTrans, blas.NonUnit, r, x)
		if !ok {
			return Status(1), nil
		}
		return Success, nil
	}

	// m < n: minimum-norm solution of an underdetermined system via LQ.
	backend.Gelqf(a, tau, work, lwork)

	// Solve L*y = b[:m] in place, where L is the lower-triangular part of
	// the first m columns of a.
	l := blas64.General{Rows: m, Cols: m, Stride: a.Stride, Data: a.Data}
	y := blas64.General{Rows: m, Cols: 1, Stride: 1, Data: b[:m]}
	ok := backend.Trtrs(blas.Lower, blas.NoTrans, blas.NonUnit, l, y)
	if !ok {
		return Status(1), nil
	}

	// b's trailing n-m entries must be zero before applying Q so the
	// minimum-norm solution (rather than merely *a* solution) results.
	for i := m; i < n; i++ {
		b[i] = 0
	}

	// x <- Q^T * [y;0] (b treated as an n x 1 matrix). a still carries its
	// full (m,n) shape here (only the Trtrs call above narrowed its view
	// to the leading m*m triangular part), which is what Ormlq needs since
	// Gelqf generated the reflectors against the full matrix.
	c := blas64.General{Rows: n, Cols: 1, Stride: 1, Data: b}
	backend.Ormlq(blas.Left, blas.Trans, a, tau, c, work, lwork)

	return Success, nil
}
