// Package progress defines the update type streamed from a running solve to
// its progress consumers. It sits below both orchestration and presentation
// so that neither has to import the other.
package progress

// Update is a single per-iteration progress event.
type Update struct {
	// Iteration is the solver loop index that produced the estimate.
	Iteration int
	// Estimate is the newest root estimate x[i+1].
	Estimate float64
}
