package dsu

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the set count below which locate scans sequentially;
// spawning workers costs more than scanning a short list.
const parallelThreshold = 256

// errFound stops the remaining scan workers once any of them has a match.
var errFound = errors.New("dsu: found")

// Partition stores each component as an explicit set of elements.
// Set order inside sets is not meaningful and changes across merges.
type Partition struct {
	sets    []mapset.Set[int]
	n       int
	workers int
}

var _ Tracker = (*Partition)(nil)

// NewPartition returns n singleton sets. workers bounds the scan pool;
// a value ≤ 0 uses runtime.GOMAXPROCS(0).
// Complexity: O(n) time and memory.
func NewPartition(n, workers int) *Partition {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	sets := make([]mapset.Set[int], n)
	for i := range sets {
		s := mapset.New[int]()
		s.Put(i)
		sets[i] = s
	}
	return &Partition{sets: sets, n: n, workers: workers}
}

// Find returns the index of the set currently holding i.
// Panics with ErrInconsistent if no set holds i.
func (p *Partition) Find(i int) int {
	return p.locate(i)
}

// Same reports whether b lives in the set holding a.
func (p *Partition) Same(a, b int) bool {
	return p.sets[p.locate(a)].Has(b)
}

// Union replaces the sets of a and b with their union.
// The smaller set is poured into the larger one and swap-removed.
func (p *Partition) Union(a, b int) bool {
	ia := p.locate(a)
	if p.sets[ia].Has(b) {
		return false
	}
	ib := p.locate(b)

	keep, drop := ia, ib
	if p.sets[keep].Size() < p.sets[drop].Size() {
		keep, drop = drop, keep
	}
	merged := p.sets[keep]
	p.sets[drop].Each(func(e int) {
		merged.Put(e)
	})

	last := len(p.sets) - 1
	p.sets[drop] = p.sets[last]
	p.sets = p.sets[:last]
	return true
}

// Count returns the number of sets.
func (p *Partition) Count() int { return len(p.sets) }

// Len returns the number of elements.
func (p *Partition) Len() int { return p.n }

// locate finds any set containing i. With many sets the list is split into
// one chunk per worker and the first hit cancels the others, so the result is
// a valid index but not necessarily the lowest one.
func (p *Partition) locate(i int) int {
	if len(p.sets) < parallelThreshold || p.workers == 1 {
		for j, s := range p.sets {
			if s.Has(i) {
				return j
			}
		}
		panic(fmt.Errorf("%w: element %d", ErrInconsistent, i))
	}

	var found atomic.Int64
	found.Store(-1)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(p.workers)
	chunk := (len(p.sets) + p.workers - 1) / p.workers
	for lo := 0; lo < len(p.sets); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(p.sets))
		g.Go(func() error {
			for j := lo; j < hi; j++ {
				if ctx.Err() != nil {
					return nil
				}
				if p.sets[j].Has(i) {
					found.CompareAndSwap(-1, int64(j))
					return errFound
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	j := int(found.Load())
	if j < 0 {
		panic(fmt.Errorf("%w: element %d", ErrInconsistent, i))
	}
	return j
}
