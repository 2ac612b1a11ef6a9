// Package sweep evaluates stability metrics over a range of loading
// conditions. Each (draft, KG) computation is pure and independent, so
// the sweep fans out across goroutines without any coordination beyond
// the final join.
package sweep

import (
	"fmt"
	"sync"

	"github.com/san-kum/gzlab/internal/stability"
)

// Result pairs one swept KG with its curve summary.
type Result struct {
	KG      float64
	Summary *stability.Summary
}

// KGRange builds an inclusive KG grid from min to max in the given step.
func KGRange(min, max, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %f", step)
	}
	if max < min {
		return nil, fmt.Errorf("max kg %.2f below min kg %.2f", max, min)
	}
	var kgs []float64
	for kg := min; kg <= max+1e-9; kg += step {
		kgs = append(kgs, kg)
	}
	return kgs, nil
}

// Run computes and summarizes a curve for every KG at a fixed draft,
// one goroutine per KG. Results come back in input order; the first
// error aborts the whole sweep.
func Run(c *stability.Computer, draft float64, kgs []float64, gm stability.GMEstimator) ([]Result, error) {
	results := make([]Result, len(kgs))
	errs := make([]error, len(kgs))

	var wg sync.WaitGroup
	for i, kg := range kgs {
		wg.Add(1)
		go func(idx int, kg float64) {
			defer wg.Done()

			curve, err := c.Curve(draft, kg)
			if err != nil {
				errs[idx] = err
				return
			}
			sum, err := stability.Summarize(curve, draft, kg, gm)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = Result{KG: kg, Summary: sum}
		}(i, kg)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// LimitingKG scans the swept grid for the largest KG that still leaves
// positive initial stability. The answer is only as fine as the sweep
// step. Returns false if no swept KG yields GM > 0.
func LimitingKG(c *stability.Computer, draft float64, kgs []float64, gm stability.GMEstimator) (float64, bool, error) {
	results, err := Run(c, draft, kgs, gm)
	if err != nil {
		return 0, false, err
	}

	limit := 0.0
	found := false
	for _, r := range results {
		if r.Summary.Stable() && r.KG > limit {
			limit = r.KG
			found = true
		}
	}
	return limit, found, nil
}
