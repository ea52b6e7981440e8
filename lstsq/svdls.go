package lstsq

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
)

// SVDWorkspaceSize returns the number of float64 slots SVDLS needs for an
// m*n problem: storage for the thin U (m*k), VT (k*n), singular values and
// the two length-k projection vectors, plus whatever Gesvd itself reports
// as its optimal scratch size (queried with lwork==-1, mirroring
// QRWorkspaceSize and mat.SVD.Factorize).
//
// Returns ErrBackendUnavailable if backend is nil, ErrInvalidDimension if
// m, n <= 0 or A/b are shorter than their declared shape requires.
func SVDWorkspaceSize(backend Backend, m, n int, A, b []float64) (int, error) {
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
	a := blas64.General{Rows: m, Cols: n, Stride: n, Data: make([]float64, m*n)}
	u := blas64.General{Rows: m, Cols: k, Stride: k, Data: make([]float64, m*k)}
	vt := blas64.General{Rows: k, Cols: n, Stride: n, Data: make([]float64, k*n)}
	s := make([]float64, k)
	work := []float64{0}

	backend.Gesvd(lapack.SVDStore, lapack.SVDStore, a, u, vt, s, work, -1)
	gesvdWork := int(work[0])

	return k*m + k*n + k + 2*k + gesvdWork, nil
}

// SVDLS solves min||A*x-b||_2 for an m*n matrix A (row-major, stride n;
// see QRLS's doc comment for why this package departs from vec/gemm's
// column-packed convention) via a truncated-SVD pseudoinverse: singular
// values at or below rcond*sigma_max are treated as zero instead of
// inverted, which bounds the solution norm when A is ill-conditioned or
// rank-deficient (the case QRLS does not handle).
//
// A is overwritten by Gesvd; on exit the first n entries of b hold the
// solution, singularValuesOut (length >= min(m,n)) holds the singular
// values in descending order, and *rankOut holds the effective rank: the
// count of singular values exceeding rcond*sigma_max. Increasing rcond
// can only lower or hold steady the reported rank, never raise it.
//
// work must have length >= lwork, where lwork is the value returned by
// SVDWorkspaceSize for the same shape.
func SVDLS(backend Backend, m, n int, A, b []float64, rcond float64, work []float64, lwork int, singularValuesOut []float64, rankOut *int) (Status, error) {
	if backend == nil {
		return 0, ErrBackendUnavailable
	}
	if m <= 0 || n <= 0 {
		return 0, ErrInvalidDimension
	}
	if lwork < 0 || len(work) < lwork {
		return 0, ErrWorkspaceTooSmall
	}

	k := min(m, n)
	if lwork < k*m+k*n+3*k {
		return 0, ErrWorkspaceTooSmall
	}
	if len(singularValuesOut) < k {
		return 0, ErrInvalidDimension
	}

	uData := work[0 : k*m]
	vtData := work[k*m : k*m+k*n]
	s := work[k*m+k*n : k*m+k*n+k]
	y := work[k*m+k*n+k : k*m+k*n+2*k]
	z := work[k*m+k*n+2*k : k*m+k*n+3*k]
	gesvdWork := work[k*m+k*n+3*k : lwork]

	a := blas64.General{Rows: m, Cols: n, Stride: n, Data: A}
	u := blas64.General{Rows: m, Cols: k, Stride: k, Data: uData}
	vt := blas64.General{Rows: k, Cols: n, Stride: n, Data: vtData}

	ok := backend.Gesvd(lapack.SVDStore, lapack.SVDStore, a, u, vt, s, gesvdWork, len(gesvdWork))
	if !ok {
		return Status(1), nil
	}
	copy(singularValuesOut[:k], s)

	// y <- U^T * b
	for i := 0; i < k; i++ {
		var sum float64
		for l := 0; l < m; l++ {
			sum += u.Data[l*k+i] * b[l]
		}
		y[i] = sum
	}

	// z <- Sigma^+ * y, truncating directions with a negligible singular
	// value instead of dividing by them. Rank is the count of directions
	// kept, which can only shrink as rcond grows since Gesvd returns
	// singular values in descending order.
	threshold := rcond * s[0]
	rank := 0
	for i := 0; i < k; i++ {
		if s[i] > threshold {
			z[i] = y[i] / s[i]
			rank++
		} else {
			z[i] = 0
		}
	}
	if rankOut != nil {
		*rankOut = rank
	}

	// x <- V * z = VT^T * z
	for j := 0; j < n; j++ {
		var sum float64
		for i := 0; i < k; i++ {
			sum += vt.Data[i*n+j] * z[i]
		}
		b[j] = sum
	}

	return Success, nil
}
