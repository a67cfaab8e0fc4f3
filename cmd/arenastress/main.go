package main

import (
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/fmstephe/arena64"
)

var (
	countFlag   = flag.Int("count", 1_000_000, "The number of values each worker inserts")
	workersFlag = flag.Int("workers", 8, "The number of concurrent allocating goroutines")
)

// Hammers a shared Arena from many goroutines and reports the observed
// allocation rate. Useful for eyeballing contention behaviour and for
// running under -race.
func main() {
	flag.Parse()

	count := *countFlag
	workers := *workersFlag

	arena := arena64.NewArena[uint64]()

	start := time.Now()

	complete := sync.WaitGroup{}
	for worker := range workers {
		complete.Add(1)
		go func() {
			defer complete.Done()

			slots := make([]arena64.Slot[uint64], 0, count)
			for i := range count {
				slots = append(slots, arena.Alloc(uint64(worker*count+i)))
			}
			for _, slot := range slots {
				slot.Free()
			}
		}()
	}
	complete.Wait()

	elapsed := time.Since(start)
	arena.Close()

	total := count * workers
	fmt.Printf("Inserted and freed %d values across %d workers in %s\n", total, workers, elapsed)
	fmt.Printf("%.0f allocations/second\n", float64(total)/elapsed.Seconds())
}
