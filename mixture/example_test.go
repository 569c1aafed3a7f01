package mixture_test

import (
	"fmt"

	"github.com/katalvlaran/cospit/mixture"
)

// ExampleSolve solves a two-train request and prints the realised Pearson
// coefficient and target rates.
func ExampleSolve() {
	rates := []float64{20, 30}
	c, err := mixture.CorrelationMatrix(rates, []float64{0.2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sol, err := mixture.Solve(rates, c)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	implied := sol.ImpliedCorrelations().At(0, 1) / c.At(0, 1) * 0.2
	fmt.Printf("sources=%d pcc=%.3f rates=%.1f\n", sol.Sources(), implied, sol.ImpliedRates())
	// Output: sources=4 pcc=0.200 rates=[20.0 30.0]
}
