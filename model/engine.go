package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

// Engine computes successive generations. The zero value scans
// sequentially and allocates a fresh grid per step.
type Engine struct {
	// Parallel splits the scan into row bands, one goroutine each.
	Parallel bool
	// Workers caps the number of bands; zero means runtime.NumCPU.
	Workers int
	// Pool, when set, supplies the dense grids.
	Pool *GridPool
}

// NewEngine builds an engine from the run configuration
func NewEngine(config utils.Config) Engine {
	var pool *GridPool
	if config.UseMemoryPool {
		pool = NewGridPool()
	}
	return Engine{
		Parallel: config.Parallel,
		Workers:  config.Workers,
		Pool:     pool,
	}
}

// Step computes the generation following alive on a height x width grid
// using the sequential engine.
func Step(height, width int, alive AliveSet) (AliveSet, error) {
	return Engine{}.Step(height, width, alive)
}

// Step computes the generation following alive. The input set is not
// modified; the result is a new set. Any coordinate outside the grid, or a
// non-positive dimension, yields an error matching ErrOutOfBounds.
func (e Engine) Step(height, width int, alive AliveSet) (AliveSet, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}

	current := e.grid(height, width)
	defer GridToPool(current, e.Pool)
	if err := current.fill(alive); err != nil {
		return nil, err
	}

	next := e.grid(height, width)
	defer GridToPool(next, e.Pool)

	if e.Parallel {
		if err := e.advanceParallel(current, next); err != nil {
			return nil, err
		}
	} else {
		current.advanceRows(next, 0, height)
	}

	return next.ToSparse(), nil
}

func (e Engine) grid(height, width int) *Grid {
	if e.Pool != nil {
		return e.Pool.Get(height, width)
	}
	return NewGrid(height, width)
}

// advanceParallel scans contiguous row bands concurrently; each band writes
// only its own rows of next.
func (e Engine) advanceParallel(current, next *Grid) error {
	numWorkers := e.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		height        = current.height
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			current.advanceRows(next, startRow, endRow)
			return nil
		})
	}

	return errors.Wrap(eg.Wait(), "[Step] parallel scan failed")
}
