package legalindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/legalindex"
)

func TestOccurrence_HeadingPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headings []string
		want     string
	}{
		{
			name:     "full path",
			headings: []string{"PART ONE", "Commencing an Action", "Filing"},
			want:     "PART ONE > Commencing an Action > Filing",
		},
		{
			name:     "empty levels are skipped",
			headings: []string{"PART ONE", "", "Filing"},
			want:     "PART ONE > Filing",
		},
		{
			name:     "no headings",
			headings: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			occ := legalindex.Occurrence{Page: 1, Headings: tt.headings}
			assert.Equal(t, tt.want, occ.HeadingPath())
		})
	}
}

func TestSortOccurrences(t *testing.T) {
	t.Parallel()

	occs := []legalindex.Occurrence{
		{Page: 3, Snippet: "b"},
		{Page: 1, Snippet: "z"},
		{Page: 3, Snippet: "a", Headings: []string{"B"}},
		{Page: 3, Snippet: "a", Headings: []string{"A"}},
	}

	legalindex.SortOccurrences(occs)

	assert.Equal(t, []legalindex.Occurrence{
		{Page: 1, Snippet: "z"},
		{Page: 3, Snippet: "a", Headings: []string{"A"}},
		{Page: 3, Snippet: "a", Headings: []string{"B"}},
		{Page: 3, Snippet: "b"},
	}, occs)
}

func TestEntry_Categories(t *testing.T) {
	t.Parallel()

	entry := legalindex.Entry{
		"torts":                  {{Page: 1}},
		"civil_procedure":        {{Page: 2}},
		legalindex.AllReferences: {{Page: 1}, {Page: 2}},
	}

	assert.Equal(t, []string{"civil_procedure", "torts"}, entry.Categories())
}

func TestEntry_Pages(t *testing.T) {
	t.Parallel()

	entry := legalindex.Entry{
		"torts": {
			{Page: 4, Snippet: "a"},
			{Page: 1, Snippet: "b"},
			{Page: 4, Snippet: "c"},
		},
	}

	assert.Equal(t, []int{1, 4}, entry.Pages("torts"))
	assert.Empty(t, entry.Pages("contracts"))
}

func TestIndex_Terms(t *testing.T) {
	t.Parallel()

	idx := &legalindex.Index{
		Entries: map[string]legalindex.Entry{
			"Negligence":  {},
			"Corporation": {},
			"Hearsay":     {},
		},
	}

	assert.Equal(t, []string{"Corporation", "Hearsay", "Negligence"}, idx.Terms())
}
