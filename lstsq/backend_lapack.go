package lstsq

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// lapackBackend adapts gonum.org/v1/gonum/lapack64 (itself backed by
// gonum.org/v1/gonum/lapack/gonum's native Go LAPACK implementation) to
// the Backend interface. This is the module's default, always-linked
// dense-linear-algebra provider, analogous to building the original C
// sources with USE_LAPACK=1.
type lapackBackend struct{}

// NewLAPACKBackend returns a Backend implemented with gonum's native Go
// LAPACK routines. Unlike a cgo/Fortran LAPACK binding, this back end is
// always linked (pure Go, no cgo), so tests that want to exercise the
// ErrBackendUnavailable path pass a nil Backend explicitly instead.
func NewLAPACKBackend() Backend {
	return lapackBackend{}
}

func (lapackBackend) Geqrf(a blas64.General, tau, work []float64, lwork int) {
	gonum.Implementation{}.Dgeqrf(a.Rows, a.Cols, a.Data, a.Stride, tau, work, lwork)
}

func (lapackBackend) Gelqf(a blas64.General, tau, work []float64, lwork int) {
	gonum.Implementation{}.Dgelqf(a.Rows, a.Cols, a.Data, a.Stride, tau, work, lwork)
}

func (lapackBackend) Ormqr(side blas.Side, trans blas.Transpose, a blas64.General, tau []float64, c blas64.General, work []float64, lwork int) {
	lapack64.Ormqr(side, trans, a, tau, c, work, lwork)
}

func (lapackBackend) Ormlq(side blas.Side, trans blas.Transpose, a blas64.General, tau []float64, c blas64.General, work []float64, lwork int) {
	lapack64.Ormlq(side, trans, a, tau, c, work, lwork)
}

func (lapackBackend) Trtrs(uplo blas.Uplo, trans blas.Transpose, diag blas.Diag, a blas64.General, b blas64.General) bool {
	return gonum.Implementation{}.Dtrtrs(uplo, trans, diag, a.Cols, b.Cols, a.Data, a.Stride, b.Data, b.Stride)
}

func (lapackBackend) Gesvd(jobU, jobVT lapack.SVDJob, a, u, vt blas64.General, s, work []float64, lwork int) bool {
	return lapack64.Gesvd(jobU, jobVT, a, u, vt, s, work, lwork)
}
