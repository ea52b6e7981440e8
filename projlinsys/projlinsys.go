// Package projlinsys implements the SuperSCS affine-subspace projection
// step (L3): the one piece of per-iteration work that sits directly above
// the vec primitives (L0) and needs neither gemm nor an lstsq kernel.
package projlinsys

import "github.com/kul-go/superscs-kernels/vec"

// Step projects u (length n+m+1) onto the affine subspace implied by the
// precomputed direction h and weight vector g (both length n+m), the
// scalar gh = <g,h>, and the primal regularization rhoX, following the
// six-step sequence:
//
//  1. scale the primal block u[0:n] by rhoX
//  2. u[0:L-1] -= u[L-1] * h
//  3. u[0:L-1] -= (<u[0:L-1], g> / (gh+1)) * h
//  4. negate the dual block u[n:n+m]
//  5. (the external solveLinSys call that would sit here is out of scope)
//  6. u[L-1] += <u[0:L-1], h>
//
// h, g, and u are caller-owned; u is modified in place. gh is normally
// vec.InnerProd(g, h, n+m) for the caller's h and g; Step uses it as given
// and neither recomputes nor checks it, since callers typically already
// have it from assembling the KKT data once per solve.
func Step(n, m int, rhoX float64, u, h, g []float64, gh float64) {
	l := n + m + 1
	if l != len(u) {
		panic("projlinsys: u must have length n+m+1")
	}

	vec.Scale(u[:n], rhoX, n)

	uLast := u[l-1]
	vec.AddScaled(u[:l-1], h, l-1, -uLast)

	coeff := -vec.InnerProd(u[:l-1], g, l-1) / (gh + 1)
	vec.AddScaled(u[:l-1], h, l-1, coeff)

	vec.Scale(u[n:n+m], -1, m)

	u[l-1] += vec.InnerProd(u[:l-1], h, l-1)
}
