package muller

import (
	"context"
	"math"

	apperrors "github.com/stathisch/mullroot/internal/errors"
)

// Func is a real-valued target function y = f(x). Implementations must be
// pure: the solver may evaluate them in any order and assumes identical
// inputs yield identical outputs.
type Func func(x float64) float64

// ProgressFunc receives one callback per completed iteration with the
// iteration index and the newest root estimate. A nil ProgressFunc is valid
// and disables reporting.
type ProgressFunc func(iteration int, estimate float64)

// Params holds the immutable inputs of a single solve run.
type Params struct {
	// X0 and X1 are the two distinct starting abscissae.
	X0 float64
	// X1 is the second starting abscissa; it must differ from X0.
	X1 float64
	// MaxIterations is the iteration budget, in (MinIterations, MaxIterations].
	MaxIterations int
	// ToleranceDigits is the requested precision in decimal digits,
	// in (0, MaxToleranceDigits].
	ToleranceDigits int
	// F is the target function whose root is sought.
	F Func
}

// Tolerance converts the digit-based precision to the absolute convergence
// threshold 0.5 * 10^-ToleranceDigits.
//
// Returns:
//   - float64: The absolute tolerance used by the convergence test.
func (p Params) Tolerance() float64 {
	return 0.5 * math.Pow(10, -float64(p.ToleranceDigits))
}

// Validate checks the parameters against the solver bounds. It returns an
// apperrors.ValidationError naming the offending field, or nil.
//
// Returns:
//   - error: The validation failure, or nil if the parameters are valid.
func (p Params) Validate() error {
	switch {
	case p.F == nil:
		return apperrors.ValidationError{Field: "f", Message: "target function must not be nil"}
	case math.IsNaN(p.X0) || math.IsInf(p.X0, 0):
		return apperrors.ValidationError{Field: "x0", Message: "must be a finite number"}
	case math.IsNaN(p.X1) || math.IsInf(p.X1, 0):
		return apperrors.ValidationError{Field: "x1", Message: "must be a finite number"}
	case p.X0 == p.X1:
		return apperrors.ValidationError{Field: "x1", Message: "must differ from x0"}
	case p.MaxIterations <= MinIterations || p.MaxIterations > MaxIterations:
		return apperrors.ValidationError{
			Field:   "iterations",
			Message: "must satisfy 2 < i <= 1000000",
		}
	case p.ToleranceDigits <= 0 || p.ToleranceDigits > MaxToleranceDigits:
		return apperrors.ValidationError{
			Field:   "tolerance",
			Message: "must satisfy 0 < t <= 40",
		}
	}
	return nil
}

// History holds the per-iteration interpolation state of a run. The four
// slices are parallel and addressed by the same iteration index: X[i] is the
// i-th abscissa, Y[i] = f(X[i]), and C[i], D[i] are the first- and
// second-order divided differences of the quadratic fit. Only the prefix up
// to the terminating iteration is retained; no row holds a non-finite value.
type History struct {
	X []float64
	Y []float64
	C []float64
	D []float64
}

// Len returns the number of recorded rows.
func (h History) Len() int { return len(h.X) }

// prefix returns the history truncated to rows 0..n inclusive.
func (h History) prefix(n int) History {
	return History{X: h.X[:n+1], Y: h.Y[:n+1], C: h.C[:n+1], D: h.D[:n+1]}
}

// Result is the terminal outcome of a solve run. Exactly one of two states
// is reported: Converged true with the tolerance satisfied, or Converged
// false after the budget was exhausted (a valid outcome, not an error). In
// both states Root carries the last computed estimate and History the rows
// 0..IterationsUsed.
type Result struct {
	// Converged indicates whether the tolerance test was satisfied.
	Converged bool
	// Root is the final root estimate: x[RootIndex].
	Root float64
	// RootIndex is the abscissa index of the final estimate, always
	// IterationsUsed+1.
	RootIndex int
	// IterationsUsed is the loop index at termination; the reported history
	// covers rows 0..IterationsUsed.
	IterationsUsed int
	// History holds the per-iteration interpolation state.
	History History
}

// sign returns +1, -1, or 0 for positive, negative, and zero values.
// The zero case is part of the documented algorithm: with s == 0 the step
// denominator degenerates to the bare square root, and the branch choice
// below relies on that.
func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Solve finds a real root of p.F using Müller's method.
//
// The method fits a quadratic through the three most recent sample points
// and steps to the quadratic's root nearest the newest point. The step
// denominator adds sign(s)*sqrt(|s²-4yd|) to s instead of applying the
// quadratic formula's ± naively; that picks the larger-magnitude denominator
// and therefore the nearest root, which is the converging branch. The
// absolute value under the square root restricts the solver to real roots.
//
// Degenerate denominators (coincident abscissae in the divided differences,
// or a zero step denominator) terminate the run with an
// apperrors.DegeneracyError rather than propagating NaN or Inf into the
// reported history. The context is only consulted between iterations; the
// loop itself never blocks.
//
// Parameters:
//   - ctx: The context for cancellation between iterations.
//   - p: The solve parameters; see Params.Validate for the accepted ranges.
//   - progress: Optional per-iteration callback (may be nil).
//
// Returns:
//   - Result: The terminal outcome with full iteration history.
//   - error: A ValidationError, DegeneracyError, or context error.
func Solve(ctx context.Context, p Params, progress ProgressFunc) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	tol := p.Tolerance()
	size := p.MaxIterations + 1

	hist := History{
		X: make([]float64, size),
		Y: make([]float64, size),
		C: make([]float64, size),
		D: make([]float64, size),
	}
	x, y, c, d := hist.X, hist.Y, hist.C, hist.D

	// Seed rows 0..2: the two starting points and their midpoint.
	x[0] = p.X0
	x[1] = p.X1
	x[2] = (x[0] + x[1]) / 2
	y[0] = p.F(x[0])
	y[1] = p.F(x[1])
	y[2] = p.F(x[2])

	// x[1] != x[0] is guaranteed by validation.
	c[0] = (y[1] - y[0]) / (x[1] - x[0])

	for i := 2; i < p.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		dx1 := x[i] - x[i-1]
		dx2 := x[i] - x[i-2]
		if dx1 == 0 {
			return Result{}, apperrors.DegeneracyError{Iteration: i, Term: "coincident abscissae x[i] and x[i-1]"}
		}
		if dx2 == 0 {
			return Result{}, apperrors.DegeneracyError{Iteration: i, Term: "coincident abscissae x[i] and x[i-2]"}
		}

		c[i-1] = (y[i] - y[i-1]) / dx1
		d[i-2] = (c[i-1] - c[i-2]) / dx2

		s := c[i-1] + dx1*d[i-2]

		denom := s + sign(s)*math.Sqrt(math.Abs(s*s-4*y[i]*d[i-2]))
		if denom == 0 {
			return Result{}, apperrors.DegeneracyError{Iteration: i, Term: "step denominator"}
		}

		x[i+1] = x[i] - 2*y[i]/denom
		if !isFinite(x[i+1]) {
			return Result{}, apperrors.DegeneracyError{Iteration: i, Term: "non-finite estimate"}
		}
		y[i+1] = p.F(x[i+1])
		if !isFinite(y[i+1]) {
			return Result{}, apperrors.DegeneracyError{Iteration: i, Term: "non-finite function value"}
		}

		if progress != nil {
			progress(i, x[i+1])
		}

		if math.Abs(x[i+1]-x[i]) < tol {
			return Result{
				Converged:      true,
				Root:           x[i+1],
				RootIndex:      i + 1,
				IterationsUsed: i,
				History:        hist.prefix(i),
			}, nil
		}
	}

	// Budget exhausted: the last estimate is still reported, flagged
	// unconverged.
	last := p.MaxIterations - 1
	return Result{
		Converged:      false,
		Root:           x[last+1],
		RootIndex:      last + 1,
		IterationsUsed: last,
		History:        hist.prefix(last),
	}, nil
}
