package lstsq

import (
	"math"

	"github.com/kul-go/superscs-kernels/gemm"
	"github.com/kul-go/superscs-kernels/vec"
)

// CGLSWorkspaceSize returns the number of float64 slots a caller must
// provide to CGLS for an m*n problem: max(m,n) + m + 2*n. It returns 0 if
// m<=0 or n<=0 (the caller should treat a 0 return as "nothing to
// allocate", mirroring the original cgls_malloc_workspace's SCS_NULL
// sentinel for a Go slice-based API: there is no pointer to be null, so
// the signal is the zero length).
func CGLSWorkspaceSize(m, n int) int {
	if m <= 0 || n <= 0 {
		return 0
	}
	return max(m, n) + m + 2*n
}

// CGLS solves min||A*x-b||_2 for A of shape (m,n), column-packed, by
// conjugate gradient on the normal equations A^T*A*x = A^T*b, without ever
// forming A^T*A. A, b, and the initial x are caller-owned; x is
// overwritten with the solution and maxiter is overwritten with the
// number of iterations actually performed.
//
// wspace must have length >= CGLSWorkspaceSize(m, n); on return its first
// n entries hold the final residual A^T*(b-A*x). tol is the normal-equation
// residual tolerance: the iteration stops once ||A^T*(b-A*x)|| <=
// tol*(1+||b||).
//
// Returns Success (0) if the tolerance was met, IterationLimitReached (1)
// if maxiter iterations elapsed first. A zero right-hand side with a zero
// initial x converges immediately with zero iterations performed. If m or
// n is negative, or wspace is shorter than CGLSWorkspaceSize(m, n), it
// returns Status(-1) with maxiter set to 0.
func CGLS(m, n int, A, b, x []float64, tol float64, maxiter *int, wspace []float64) Status {
	if m < 0 || n < 0 {
		*maxiter = 0
		return Status(-1)
	}
	need := CGLSWorkspaceSize(m, n)
	if len(wspace) < need {
		*maxiter = 0
		return Status(-1)
	}
	if m == 0 || n == 0 {
		*maxiter = 0
		return Success
	}

	// Workspace layout matches max(m,n)+m+2n exactly: s and p are length
	// n, r is length m, q is length max(m,n) (only the first m entries of
	// q are used; it is sized generously rather than exactly m so the
	// total matches the documented size formula). s occupies the leading
	// n slots so that, per the contract, the workspace's leading n
	// entries hold the final residual on exit.
	mx := max(m, n)
	s := wspace[0:n]
	p := wspace[n : 2*n]
	r := wspace[2*n : 2*n+m]
	q := wspace[2*n+m : 2*n+m+mx]

	// r <- b - A*x
	copy(r, b[:m])
	gemm.CP(m, 1, n, -1, A, 1, x, r)

	bNorm := vec.Norm(b, m)

	// p <- A^T*r ; s <- p
	gemm.TNCP(n, 1, m, 1, A, 0, r[:m], p)
	copy(s, p)
	gamma := vec.NormSq(s, n)

	if gamma == 0 {
		*maxiter = 0
		return Success
	}

	iterCap := *maxiter
	iters := 0
	for iters = 0; iters < iterCap; iters++ {
		// q <- A*p
		gemm.CP(m, 1, n, 1, A, 0, p, q[:m])
		delta := vec.NormSq(q[:m], m)

		if delta == 0 {
			// A*p == 0: no progress possible along this direction. Treat
			// as converged-to-best-achievable (spec's NumericalBreakdown
			// contract) rather than dividing by zero.
			break
		}

		mu := gamma / delta
		vec.AddScaled(x, p, n, mu)
		vec.AddScaled(r[:m], q[:m], m, -mu)

		// s <- A^T*r
		gemm.TNCP(n, 1, m, 1, A, 0, r[:m], s)
		gammaNext := vec.NormSq(s, n)

		if math.Sqrt(gammaNext) <= tol*(1+bNorm) {
			gamma = gammaNext
			iters++
			*maxiter = iters
			return Success
		}

		beta := gammaNext / gamma
		// p <- beta*p + s (x aliases u, the supported Axpy2 alias pair)
		vec.Axpy2(p, p, s, beta, 1, n)
		gamma = gammaNext
	}

	*maxiter = iters
	if iters >= iterCap {
		return IterationLimitReached
	}
	return Success
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
