// Package scsconfig holds the immutable, per-solve configuration record
// consumed by the SuperSCS splitting iteration. The core kernels in this
// module (vec, gemm, lstsq, projlinsys) do not read the record themselves
// (projlinsys.Step takes the RhoX value as a plain argument); the record
// is carried through unmodified for the external outer solver that owns
// the splitting loop, cone projections, and scaling.
package scsconfig

// Direction enumerates the quasi-Newton acceleration family used by the
// outer SuperSCS iteration's direction update.
type Direction int

const (
	// RestartedBroyden is the default acceleration family.
	RestartedBroyden Direction = iota
	// Anderson is Anderson-type acceleration.
	Anderson
	// FixedPoint disables acceleration; the direction is the fixed-point
	// residual itself.
	FixedPoint
)

// Options is the immutable configuration record for one solve. Build it
// with New, which fills in every default from the original SCS headers;
// then set only the fields that differ for this solve before the solve
// begins. Options must not be mutated once a solve has started.
type Options struct {
	MaxIters int     // outer iteration cap
	Eps      float64 // residual tolerance
	Alpha    float64 // over-relaxation
	RhoX     float64 // primal regularization used in projLinSys
	Scale    float64 // problem scaling
	CGRate   float64 // CG tolerance shrinkage per outer iteration

	Verbose    bool // emit progress
	Normalize  bool // scale problem data
	WarmStart  bool // reuse prior iterate
	DoSuperSCS bool // enable accelerated variant

	K0, K1, K2 int // acceleration substep flags

	CBl float64 // line-search constant
	C1  float64 // line-search constant
	SSE float64 // line-search constant

	LS    int     // line-search iteration cap
	Beta  float64 // line-search backtracking factor
	Sigma float64 // line-search sufficient-decrease parameter

	Memory    int       // quasi-Newton buffer size
	Direction Direction // acceleration family

	BroydenIScale int // initial-scaling toggle for restarted Broyden
	TrustRule     int // Powell/trust-region rule selector

	Thetabar float64 // Powell/trust rule constant
	Delta    float64 // Powell/trust rule constant
	AlphaC   float64 // Powell/trust rule constant
}

// New returns an Options populated with the documented solver defaults.
func New() Options {
	return Options{
		MaxIters: 2500,
		Eps:      1e-3,
		Alpha:    1.5,
		RhoX:     1e-3,
		Scale:    1.0,
		CGRate:   2.0,

		Verbose:    true,
		Normalize:  true,
		WarmStart:  false,
		DoSuperSCS: true,

		K0: 0,
		K1: 1,
		K2: 1,

		CBl: 0.999,
		C1:  1 - 1e-4,
		SSE: 1 - 1e-3,

		LS:    10,
		Beta:  0.5,
		Sigma: 1e-2,

		Memory:    10,
		Direction: RestartedBroyden,

		BroydenIScale: 1,
		TrustRule:     3,

		Thetabar: 0.1,
		Delta:    0.5,
		AlphaC:   1e-2,
	}
}
