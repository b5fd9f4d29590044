package billiard

import (
	"math/rand"
	"runtime"
	"sync"
	"time"
)

// Result is one EvolveBatch run's outcome.
type Result struct {
	RunID  RunID
	Events []Event
	Err    error
}

// EvolveBatch runs len(particles) independent evolutions in parallel, one
// per particle, each against its own clone of bd (spec.md §5: "multiple
// independent runs may execute in parallel only if each owns its own
// Billiard clone"). Grounded on the teacher's castRays/estimateHitProb
// worker-pool pattern in cast_rays.go/estimate.go: a fixed pool of
// runtime.NumCPU() goroutines, each seeded with its own *rand.Rand, draining
// a shared job queue via sync.WaitGroup. shardLocks has no analog here:
// there is no shared mutable buffer, since every run owns its own billiard,
// and its Options.Rng is its worker's generator, which only that worker's
// goroutine uses.
func EvolveBatch(particles []Particle, bd *Billiard, target Real, kind TargetKind, baseOpts *Options) []Result {
	results := make([]Result, len(particles))
	if len(particles) == 0 {
		return results
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > len(particles) {
		workers = len(particles)
	}

	jobs := make(chan int, len(particles))
	for i := range particles {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		wid := w
		go func() {
			defer wg.Done()
			seed := time.Now().UnixNano() ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
			rng := rand.New(rand.NewSource(seed))
			for i := range jobs {
				runID := newRunID()
				billiardClone := bd.Clone()
				particleClone := particles[i].Clone()
				opts := &Options{
					Splitters: baseOpts.splitters(),
					Rng:       rng,
					Extended:  baseOpts.extended(),
					Warn:      baseOpts.warnFn(),
				}
				events, err := Evolve(particleClone, billiardClone, target, kind, opts)
				results[i] = Result{RunID: runID, Events: events, Err: err}
			}
		}()
	}
	wg.Wait()

	return results
}

func (o *Options) warnFn() func(Kind, string) {
	if o == nil {
		return nil
	}
	return o.Warn
}
