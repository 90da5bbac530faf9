// Package bloom provides word-membership prefiltering for page text
// using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// WordSet wraps a Bloom filter over the distinct words of one page. The
// vocabulary scan tests a term's leading word before running its full
// word-boundary search.
type WordSet struct {
	f *bloom.BloomFilter
}

// NewWordSet creates a word set sized for n expected words with the
// given false positive rate.
func NewWordSet(n uint, fpRate float64) *WordSet {
	return &WordSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a word to the set.
func (s *WordSet) Add(word string) {
	s.f.AddString(word)
}

// Test returns true if the word might be in the set.
// False positives are possible; false negatives are not.
func (s *WordSet) Test(word string) bool {
	return s.f.TestString(word)
}

// EstimatedCount returns the approximate number of words in the set.
func (s *WordSet) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
