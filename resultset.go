package sievego

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// ResultSet records which candidate indices of a classified batch are prime,
// backed by a 32-bit Roaring Bitmap. Batches longer than MaxUint32 are not
// supported.
type ResultSet struct {
	rb *roaring.Bitmap
	n  int
}

func newResultSet(results []bool) *ResultSet {
	rb := roaring.New()
	for i, prime := range results {
		if prime {
			rb.Add(uint32(i))
		}
	}
	return &ResultSet{rb: rb, n: len(results)}
}

// Len returns the number of classified candidates.
func (r *ResultSet) Len() int {
	return r.n
}

// Contains reports whether the candidate at index i was classified prime.
func (r *ResultSet) Contains(i int) bool {
	return i >= 0 && r.rb.Contains(uint32(i))
}

// Cardinality returns the number of prime indices.
func (r *ResultSet) Cardinality() uint64 {
	return r.rb.GetCardinality()
}

// Iterator returns an iterator over the prime indices in ascending order.
func (r *ResultSet) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := r.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the set.
func (r *ResultSet) Clone() *ResultSet {
	return &ResultSet{rb: r.rb.Clone(), n: r.n}
}

// And intersects r with other in place. Both sets must come from batches of
// the same candidates.
func (r *ResultSet) And(other *ResultSet) {
	r.rb.And(other.rb)
}

// Or unions other into r in place.
func (r *ResultSet) Or(other *ResultSet) {
	r.rb.Or(other.rb)
}
