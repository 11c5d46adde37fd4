/*
 * concurrent.go, part of poreprofile.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
 * General Public License for more details.
 */

package pipeline

import (
	"context"
	"sync"

	pp "github.com/rmera/poreprofile"
)

// RunConcurrent fans RunFrame out over a bounded worker pool, permitted but
// not required by spec.md §5 ("per-frame parallelism is permitted... each
// frame produces an independent record"). Results are returned in the same
// order as frames, satisfying the rule that only time-series outputs need
// original frame order; cancellation is honored between frames, not
// mid-frame, per §5's suspension points. Grounded on the teacher's
// channel-per-frame pattern (interfaces.go's ConcTraj/NextConc), adapted
// from a trajectory-reading producer/consumer into a bounded fan-out/
// fan-in over an explicit frame slice rather than a channel of frames,
// since here the full frame list is already known up front.
func RunConcurrent(ctx context.Context, p Params, frames []FrameInput, workers int) ([]pp.PerFrameRecord, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]pp.PerFrameRecord, len(frames))
	errs := make([]error, len(frames))

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				rec, err := RunFrame(p, frames[i])
				results[i] = rec
				errs[i] = err
			}
		}()
	}

feed:
	for i := range frames {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, ctx.Err()
}
