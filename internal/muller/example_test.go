package muller_test

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/stathisch/mullroot/internal/muller"
)

// ExampleSolve demonstrates finding the positive sixth root of two, the
// reference run of the original method demonstration.
func ExampleSolve() {
	params := muller.Params{
		X0:              1,
		X1:              2,
		MaxIterations:   20,
		ToleranceDigits: 15,
		F:               func(x float64) float64 { return math.Pow(x, 6) - 2 },
	}

	result, err := muller.Solve(context.Background(), params, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("converged: %v\n", result.Converged)
	fmt.Printf("root x = %+.12e\n", result.Root)
	// Output:
	// converged: true
	// root x = +1.122462048309e+00
}
