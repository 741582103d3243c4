// Package bucket assigns hashes to a fixed number of buckets and sequence
// numbers to slots in a fixed-size ring. Both are a modulo by a divisor that
// is chosen once and then reused for every lookup, so they use a reduced
// divisor instead of the hardware divide.
package bucket

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	strength "github.com/shabbyrobe/go-strength"
)

// Uniform assigns hashes uniformly across a fixed number of buckets.
type Uniform struct {
	buckets strength.ReducedU64
}

// New creates a Uniform with n buckets. n must be greater than 0.
func New(n uint64) (*Uniform, error) {
	rd, err := strength.TryReduceU64(n)
	if err != nil {
		return nil, fmt.Errorf("bucket: invalid bucket count %d: %w", n, err)
	}
	return &Uniform{buckets: rd}, nil
}

// MustNew is like New but panics if n is 0.
func MustNew(n uint64) *Uniform {
	u, err := New(n)
	if err != nil {
		panic(err)
	}
	return u
}

// Bucket returns hash % NumBuckets().
func (u *Uniform) Bucket(hash uint64) uint64 {
	return u.buckets.Rem(hash)
}

// BucketBytes hashes key with xxhash and returns its bucket.
func (u *Uniform) BucketBytes(key []byte) uint64 {
	return u.buckets.Rem(xxhash.Sum64(key))
}

// BucketString is BucketBytes for strings; it does not copy key.
func (u *Uniform) BucketString(key string) uint64 {
	return u.buckets.Rem(xxhash.Sum64String(key))
}

func (u *Uniform) NumBuckets() uint64 {
	return u.buckets.Get()
}

func (u *Uniform) String() string {
	return fmt.Sprintf("bucket.Uniform(%d)", u.buckets.Get())
}

// MarshalText encodes the bucket count. The reduced divisor is derived again
// when unmarshalling.
func (u *Uniform) MarshalText() ([]byte, error) {
	return u.buckets.MarshalText()
}

func (u *Uniform) UnmarshalText(bts []byte) error {
	if err := u.buckets.UnmarshalText(bts); err != nil {
		return fmt.Errorf("bucket: %w", err)
	}
	return nil
}
