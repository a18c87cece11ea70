package muller

// ─────────────────────────────────────────────────────────────────────────────
// Solver Bounds
// ─────────────────────────────────────────────────────────────────────────────
//
// These bounds cap the memory of the per-run history buffers and guarantee
// that the three-point seed and the first real iteration are always defined.

const (
	// MinIterations is the exclusive lower bound on the iteration budget.
	// The method needs three seed points (indices 0, 1, 2) before the first
	// quadratic fit, so a budget of 2 or less never produces an estimate.
	MinIterations = 2

	// MaxIterations is the inclusive upper bound on the iteration budget.
	// The four history buffers are allocated up front to budget+1 entries,
	// so this bound caps a single run at roughly 32 MB of float64 storage.
	MaxIterations = 1_000_000

	// MaxToleranceDigits is the inclusive upper bound on the requested
	// precision in decimal digits. Forty digits is already far beyond what
	// float64 arithmetic can resolve; larger values would only underflow
	// the derived threshold to zero.
	MaxToleranceDigits = 40
)
