package bucket

import (
	"fmt"

	strength "github.com/shabbyrobe/go-strength"
)

// Ring maps monotonically increasing sequence numbers onto the slots of a
// fixed-size ring buffer whose size need not be a power of two. The zero
// Ring is not usable; create one with NewRing.
type Ring struct {
	size strength.ReducedU64
}

// NewRing creates a Ring with size slots. size must be greater than 0.
func NewRing(size uint64) (Ring, error) {
	rd, err := strength.TryReduceU64(size)
	if err != nil {
		return Ring{}, fmt.Errorf("bucket: invalid ring size %d: %w", size, err)
	}
	return Ring{size: rd}, nil
}

// Index returns the slot that seq occupies.
func (r Ring) Index(seq uint64) uint64 {
	return r.size.Rem(seq)
}

// Wrap returns the number of times the ring has been filled before seq, and
// the slot seq occupies. seq == lap*Size() + idx.
func (r Ring) Wrap(seq uint64) (lap, idx uint64) {
	return r.size.DivRem(seq)
}

func (r Ring) Size() uint64 { return r.size.Get() }
