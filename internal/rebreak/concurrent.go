package rebreak

import (
	"context"
	"sync"
)

// All rebreaks each text independently using up to concurrency workers.
// Results keep the order of texts.
func All(
	ctx context.Context,
	texts []string,
	maxWidth int,
	concurrency int,
) ([]string, error) {
	results := make([]string, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	if concurrency <= 1 {
		for i, text := range texts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = Rebreak(text, maxWidth)
		}
		return results, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workChan := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < concurrency && i < len(texts); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-workChan:
					if !ok {
						return
					}
					results[idx] = Rebreak(texts[idx], maxWidth)
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for i := range texts {
			select {
			case <-ctx.Done():
				return
			case workChan <- i:
			}
		}
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
