package bloom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/legalindex/bloom"
)

func TestWordSet(t *testing.T) {
	t.Parallel()

	t.Run("added words always test positive", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewWordSet(100, 0.01)
		words := []string{"negligence", "corporation", "hearsay", "privilege"}
		for _, w := range words {
			s.Add(w)
		}

		for _, w := range words {
			assert.True(t, s.Test(w), w)
		}
	})

	t.Run("absent words mostly test negative", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewWordSet(100, 0.01)
		s.Add("negligence")

		// A single probe at a 1% false positive rate; a flaky failure
		// here would indicate a sizing bug, not bad luck.
		assert.False(t, s.Test("maritime"))
	})

	t.Run("estimated count tracks additions", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewWordSet(1000, 0.01)
		for _, w := range []string{"a", "b", "c", "d", "e"} {
			s.Add(w)
		}

		assert.InDelta(t, 5, float64(s.EstimatedCount()), 2)
	})
}
