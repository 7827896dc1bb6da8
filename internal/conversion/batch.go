package conversion

import (
	"context"
	"sync"

	"github.com/san-kum/unitlab/internal/unit"
)

type Pair struct {
	From, To unit.Unit
}

// PlanAll plans every pair concurrently through c. Results keep the order
// of pairs.
func (c *Cache) PlanAll(ctx context.Context, pairs []Pair, rep Rep) ([]Plan, error) {
	plans := make([]Plan, len(pairs))

	var wg sync.WaitGroup
	for i := range pairs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			plans[idx] = c.Plan(pairs[idx].From, pairs[idx].To, rep)
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}
