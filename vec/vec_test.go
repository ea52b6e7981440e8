package vec

import (
	"math"
	"testing"
)

const tol = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// testScaleArray from the literal test scenarios: a = [0.5, 1.0, ..., 5.0],
// beta = 3.23412.
func TestScaleArray(t *testing.T) {
	n := 10
	a := make([]float64, n)
	for i := range a {
		a[i] = 0.5 * float64(i+1)
	}
	beta := 3.23412

	Scale(a, beta, n)

	for i := 0; i < n; i++ {
		want := beta * 0.5 * float64(i+1)
		if !approxEqual(a[i], want, 1e-6) {
			t.Errorf("a[%d] = %v, want %v", i, a[i], want)
		}
	}
}

func TestScaleNoopOnNonPositiveN(t *testing.T) {
	a := []float64{1, 2, 3}
	cp := append([]float64(nil), a...)
	Scale(a, 100, 0)
	Scale(a, 100, -5)
	for i := range a {
		if a[i] != cp[i] {
			t.Errorf("Scale with n<=0 mutated a: got %v, want %v", a, cp)
		}
	}
}

func TestScaleRoundTrip(t *testing.T) {
	n := 37
	v := make([]float64, n)
	orig := make([]float64, n)
	for i := range v {
		v[i] = float64(i) - 3.5
		orig[i] = v[i]
	}
	alpha := 2.71828
	Scale(v, alpha, n)
	Scale(v, 1/alpha, n)
	for i := range v {
		if !approxEqual(v[i], orig[i], 8*float64(n)*1e-15) {
			t.Errorf("round trip mismatch at %d: got %v want %v", i, v[i], orig[i])
		}
	}
}

func TestScaleLinearityOfNorm(t *testing.T) {
	n := 23
	v := make([]float64, n)
	for i := range v {
		v[i] = math.Sin(float64(i))
	}
	alpha := -4.25
	before := Norm(v, n)
	Scale(v, alpha, n)
	after := Norm(v, n)
	want := math.Abs(alpha) * before
	if !approxEqual(after, want, 4*float64(n)*1e-15*math.Max(1, want)) {
		t.Errorf("Norm(scale(v,a)) = %v, want %v", after, want)
	}
}

func TestSetScaledAliasing(t *testing.T) {
	n := 6
	a := []float64{1, 2, 3, 4, 5, 6}
	x := make([]float64, n)
	copy(x, a)
	SetScaled(x, x, 2.0, n)
	for i := range a {
		want := 2.0 * a[i]
		if x[i] != want {
			t.Errorf("SetScaled alias: x[%d] = %v, want %v", i, x[i], want)
		}
	}
}

func TestAddScaledRoundTrip(t *testing.T) {
	n := 11
	a := make([]float64, n)
	b := make([]float64, n)
	orig := make([]float64, n)
	for i := range a {
		a[i] = float64(i) * 1.5
		b[i] = float64(n - i)
		orig[i] = a[i]
	}
	gamma := 0.73
	AddScaled(a, b, n, gamma)
	AddScaled(a, b, n, -gamma)
	for i := range a {
		if !approxEqual(a[i], orig[i], 1e-12) {
			t.Errorf("round trip mismatch at %d: got %v want %v", i, a[i], orig[i])
		}
	}
}

func TestAxpy2AliasSafety(t *testing.T) {
	n := 9
	u := make([]float64, n)
	v := make([]float64, n)
	for i := range u {
		u[i] = float64(i+1) * 0.3
		v[i] = float64(n-i) * 0.7
	}
	alpha, beta := 1.7, -0.4

	x := make([]float64, n)
	copy(x, u)
	Axpy2(x, x, v, alpha, beta, n) // x aliases u

	y := make([]float64, n)
	Axpy2(y, u, v, alpha, beta, n) // fresh destination

	for i := 0; i < n; i++ {
		if !approxEqual(x[i], y[i], 1e-12) {
			t.Errorf("alias mismatch at %d: got %v want %v", i, x[i], y[i])
		}
	}
}

func TestInnerProdSymmetry(t *testing.T) {
	n := 13
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(float64(i))
		y[i] = math.Sin(float64(i) * 0.5)
	}
	if InnerProd(x, y, n) != InnerProd(y, x, n) {
		t.Errorf("InnerProd not symmetric")
	}
}

func TestNormSqIsInnerProd(t *testing.T) {
	n := 8
	v := []float64{1, -2, 3, -4, 5, -6, 7, -8}
	if NormSq(v, n) != InnerProd(v, v, n) {
		t.Errorf("NormSq != InnerProd(v,v)")
	}
}

func TestNormInfAndDiff(t *testing.T) {
	a := []float64{1, -5, 3}
	b := []float64{0, -1, 10}
	if got, want := NormInf(a, 3), 5.0; got != want {
		t.Errorf("NormInf = %v, want %v", got, want)
	}
	if got, want := NormInfDiff(a, b, 3), 7.0; got != want {
		t.Errorf("NormInfDiff = %v, want %v", got, want)
	}
	wantDiff := math.Sqrt(1 + 16 + 49)
	if got := NormDiff(a, b, 3); !approxEqual(got, wantDiff, 1e-12) {
		t.Errorf("NormDiff = %v, want %v", got, wantDiff)
	}
}

func TestNonPositiveNIsIdentity(t *testing.T) {
	v := []float64{1, 2, 3}
	if InnerProd(v, v, 0) != 0 || InnerProd(v, v, -1) != 0 {
		t.Errorf("InnerProd with n<=0 should be 0")
	}
	if NormInf(v, 0) != 0 {
		t.Errorf("NormInf with n=0 should be 0")
	}
	if Sum(v, -1) != 0 {
		t.Errorf("Sum with n<0 should be 0")
	}
}

func TestSum(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5, 6, 7}
	if got, want := Sum(v, len(v)), 28.0; got != want {
		t.Errorf("Sum = %v, want %v", got, want)
	}
}
