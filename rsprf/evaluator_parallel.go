package rsprf

import (
	"fmt"
	"runtime"
	"sync"
)

// EvaluateParallel evaluates the PRF on every input of xs in parallel.
// The i-th output corresponds to xs[i].
// If any input is too long, no evaluation is done.
func (e *Evaluator) EvaluateParallel(xs []Input) ([]Output, error) {
	for i, x := range xs {
		if x.Len() > e.params.InputBits() {
			return nil, fmt.Errorf("%w: input %d has %d bits, maximum is %d", ErrInputTooLong, i, x.Len(), e.params.InputBits())
		}
	}

	outs := make([]Output, len(xs))
	if len(xs) == 0 {
		return outs, nil
	}

	errs := make([]error, len(xs))

	workSize := min(runtime.NumCPU(), len(xs))
	jobChan := make(chan int)
	go func() {
		defer close(jobChan)
		for i := range xs {
			jobChan <- i
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workSize)
	for i := 0; i < workSize; i++ {
		go func() {
			defer wg.Done()
			for j := range jobChan {
				outs[j], errs[j] = e.Evaluate(xs[j])
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
	}
	return outs, nil
}
