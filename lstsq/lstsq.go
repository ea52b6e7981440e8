// Package lstsq implements the three least-squares engines (L2) that sit
// above vec and gemm: CGLS (matrix-free conjugate gradient on the normal
// equations), QRLS (thin QR/LQ wrapper), and SVDLS (truncated-SVD
// pseudoinverse). All three share the same workspace-contract convention:
// the caller owns a scratch []float64 sized by a companion query
// function. CGLS and SVDLS do not allocate; QRLS allocates its
// length-min(m,n) tau vector and the scratch of its workspace-size check
// on every call.
package lstsq

import (
	"errors"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
)

// Status is the outcome of a least-squares solve. Unlike the outer
// solver's status.Code, this is the narrow 0/1 success/iteration-cap
// convention CGLS uses (plus -1 when CGLS rejects its inputs), or, for
// QRLS/SVDLS, 1 when the back end reports a singular triangular factor or
// an SVD that did not converge.
type Status int

const (
	// Success indicates the solve converged (CGLS) or the back end
	// reported success (QRLS, SVDLS).
	Success Status = 0
	// IterationLimitReached indicates CGLS exhausted its iteration cap
	// without meeting the requested tolerance. This is non-fatal: x and
	// the workspace residual tail reflect the best iterate found.
	IterationLimitReached Status = 1
)

// Errors returned by the kernels in this package. Vector primitives (vec,
// gemm) never error; only these higher kernels can fail a precondition.
var (
	// ErrInvalidDimension is returned when m or n is not positive, or
	// inconsistent with a buffer (e.g. an A or b shorter than the
	// declared shape requires).
	ErrInvalidDimension = errors.New("lstsq: invalid dimension")
	// ErrWorkspaceTooSmall is returned when the caller-provided workspace
	// is smaller than the size reported by the matching query function.
	ErrWorkspaceTooSmall = errors.New("lstsq: workspace too small")
	// ErrBackendUnavailable is returned by QRLS and SVDLS when no Backend
	// has been configured; CGLS never returns it, since CGLS has no
	// external dependency.
	ErrBackendUnavailable = errors.New("lstsq: linear-algebra back end not available")
)

// Backend is the external dense-linear-algebra provider QRLS and SVDLS
// delegate to: a least-squares QR/LQ solve and a singular value
// decomposition, both following the workspace-query convention where
// lwork == -1 requests the optimal size via work[0] instead of performing
// the factorization.
//
// The default implementation (see NewLAPACKBackend) is backed by
// gonum.org/v1/gonum/lapack64 and gonum.org/v1/gonum/lapack/gonum's
// native Go LAPACK implementation, so "back end unavailable" is
// representable simply as a nil Backend rather than a build tag: it
// models the original C library's USE_LAPACK=0 configuration.
type Backend interface {
	// Geqrf computes the QR factorization of a (m>=n case). tau must have
	// length >= min(a.Rows, a.Cols). lwork == -1 requests the optimal
	// work size via work[0].
	Geqrf(a blas64.General, tau, work []float64, lwork int)

	// Gelqf computes the LQ factorization of a (m<n case). tau must have
	// length >= min(a.Rows, a.Cols). lwork == -1 requests the optimal
	// work size via work[0].
	Gelqf(a blas64.General, tau, work []float64, lwork int)

	// Ormqr applies the orthogonal matrix Q (or Q^T) from a Geqrf
	// factorization to c. lwork == -1 requests the optimal work size.
	Ormqr(side blas.Side, trans blas.Transpose, a blas64.General, tau []float64, c blas64.General, work []float64, lwork int)

	// Ormlq applies the orthogonal matrix Q (or Q^T) from a Gelqf
	// factorization to c. lwork == -1 requests the optimal work size.
	Ormlq(side blas.Side, trans blas.Transpose, a blas64.General, tau []float64, c blas64.General, work []float64, lwork int)

	// Trtrs solves a triangular system a*x=b or a^T*x=b in place on b. It
	// reports whether a is non-singular.
	Trtrs(uplo blas.Uplo, trans blas.Transpose, diag blas.Diag, a blas64.General, b blas64.General) bool

	// Gesvd computes the singular value decomposition of a, optionally
	// computing the left and right singular vectors into u and vt.
	// lwork == -1 requests the optimal work size via work[0]. It reports
	// whether the decomposition converged.
	Gesvd(jobU, jobVT lapack.SVDJob, a, u, vt blas64.General, s, work []float64, lwork int) bool
}
