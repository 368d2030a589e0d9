package dataset

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/seehuhn/mt19937"
)

// Subset is a view over a Dataset restricted to a fixed index set. It
// copies no image data; indices resolve through the underlying dataset
// on every access.
type Subset struct {
	dataset *Dataset
	indices []int
}

func NewSubset(ds *Dataset, indices []int) (*Subset, error) {
	for _, idx := range indices {
		if idx < 0 || idx >= ds.Len() {
			return nil, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, idx, ds.Len())
		}
	}
	return &Subset{dataset: ds, indices: indices}, nil
}

func (s *Subset) Len() int {
	return len(s.indices)
}

func (s *Subset) Get(index int) (image.Image, int, error) {
	if index < 0 || index >= len(s.indices) {
		return nil, 0, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(s.indices))
	}
	return s.dataset.Get(s.indices[index])
}

// Indices returns a copy of the subset's index set in shuffle order.
func (s *Subset) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

// SplitSizes returns the partition sizes floor(ratio*n) and n-floor(ratio*n).
func SplitSizes(n int, ratio float64) (int, int) {
	train := int(math.Floor(ratio * float64(n)))
	return train, n - train
}

// SplitWithSeed partitions ds into disjoint train/validation views by
// shuffling [0..Len) with a Mersenne Twister generator seeded locally
// from seed. The same seed always yields the same partition; no global
// random state is touched.
func SplitWithSeed(ds *Dataset, ratio float64, seed int64) (*Subset, *Subset, error) {
	mt := mt19937.New()
	mt.Seed(seed)
	return split(ds, ratio, rand.New(mt))
}

// Split partitions ds like SplitWithSeed but draws from a time-seeded
// generator, so the partition differs run to run.
func Split(ds *Dataset, ratio float64) (*Subset, *Subset, error) {
	mt := mt19937.New()
	mt.Seed(time.Now().UnixNano())
	return split(ds, ratio, rand.New(mt))
}

func split(ds *Dataset, ratio float64, rng *rand.Rand) (*Subset, *Subset, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, nil, fmt.Errorf("%w: %g not in (0,1)", ErrInvalidSplitRatio, ratio)
	}

	n := ds.Len()
	trainSize, valSize := SplitSizes(n, ratio)
	if trainSize == 0 || valSize == 0 {
		return nil, nil, fmt.Errorf("%w: ratio %g over %d samples leaves an empty partition", ErrInvalidSplitRatio, ratio, n)
	}

	indices := rng.Perm(n)

	train, err := NewSubset(ds, indices[:trainSize])
	if err != nil {
		return nil, nil, err
	}
	val, err := NewSubset(ds, indices[trainSize:])
	if err != nil {
		return nil, nil, err
	}
	return train, val, nil
}
