package worker

import "sync"

// Map runs fn over every input on a fixed number of goroutines and returns
// the results in input order. Files are independent during extraction, but
// occurrence merging relies on stable input ordering for its first-file-wins
// rule, so results are slotted by index instead of collected as they arrive.
func Map[T any](workers int, inputs []string, fn func(string) T) []T {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	results := make([]T, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	indexes := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = fn(inputs[i])
			}
		}()
	}

	for i := range inputs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}
