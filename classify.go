package pclasso

import (
	"runtime"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	"golang.org/x/sync/errgroup"
)

const defaultParallelThreshold = 65536

// Contains returns true if the point is on or behind every plane.
func (r *Region) Contains(p mat.Vec3) bool {
	for i := range r {
		if r[i].Distance(p) > 0 {
			return false
		}
	}
	return true
}

// Classifier selects candidates inside a Region.
type Classifier struct {
	// Workers is the maximum number of goroutines used for one pass.
	// Values less than 2 disable sharding.
	Workers int
	// ParallelThreshold is the number of candidates from which a pass is
	// sharded.
	ParallelThreshold int
}

func NewClassifier() *Classifier {
	return &Classifier{
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: defaultParallelThreshold,
	}
}

// SelectAll returns indices of the candidates inside the region in
// ascending order.
func (c *Classifier) SelectAll(ra pc.Vec3RandomAccessor, r Region) []int {
	if ra == nil {
		return nil
	}
	n := ra.Len()
	if c == nil || c.Workers < 2 || n < c.ParallelThreshold || n < c.Workers {
		return selectRange(ra, &r, 0, n)
	}

	shards := make([][]int, c.Workers)
	size := (n + c.Workers - 1) / c.Workers
	var eg errgroup.Group
	for i := range shards {
		i := i
		begin, end := i*size, (i+1)*size
		if end > n {
			end = n
		}
		if begin >= end {
			continue
		}
		eg.Go(func() error {
			shards[i] = selectRange(ra, &r, begin, end)
			return nil
		})
	}
	_ = eg.Wait()

	var total int
	for _, s := range shards {
		total += len(s)
	}
	out := make([]int, 0, total)
	for _, s := range shards {
		out = append(out, s...)
	}
	return out
}

func selectRange(ra pc.Vec3RandomAccessor, r *Region, begin, end int) []int {
	var out []int
	for i := begin; i < end; i++ {
		if r.Contains(ra.Vec3At(i)) {
			out = append(out, i)
		}
	}
	return out
}
