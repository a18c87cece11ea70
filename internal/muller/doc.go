// Package muller implements Müller's root-finding method for real-valued
// scalar functions.
//
// The solver fits a quadratic through the three most recent (x, f(x)) sample
// points and steps to the quadratic's nearest root, iterating until two
// successive estimates differ by less than the requested tolerance or the
// iteration budget is exhausted. The full per-iteration history (abscissae,
// function values, and divided-difference coefficients) is retained and
// returned for reporting.
//
// The package is a pure computational boundary: it never prints, never logs,
// and holds no state between calls. Each Solve invocation owns its history
// buffers exclusively.
package muller
