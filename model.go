package legalindex

import (
	"sort"
	"strings"
)

// HeadingLevels is the maximum depth of a heading path stamped onto an
// occurrence.
const HeadingLevels = 5

// Occurrence is one recorded instance of a term at a specific page, with
// optional surrounding context and the heading path active when it was
// matched.
type Occurrence struct {
	Page     int      `json:"page"`
	Snippet  string   `json:"snippet,omitempty"`
	Headings []string `json:"headings,omitempty"`
}

// HeadingPath joins the non-empty heading levels for display.
func (o Occurrence) HeadingPath() string {
	parts := make([]string, 0, len(o.Headings))
	for _, h := range o.Headings {
		if h != "" {
			parts = append(parts, h)
		}
	}
	return strings.Join(parts, " > ")
}

// CompareOccurrences orders occurrences by (page, snippet, heading path)
// ascending. Exports rely on this ordering for deterministic output.
func CompareOccurrences(a, b Occurrence) int {
	if a.Page != b.Page {
		if a.Page < b.Page {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Snippet, b.Snippet); c != 0 {
		return c
	}
	return strings.Compare(a.HeadingPath(), b.HeadingPath())
}

// SortOccurrences sorts a slice of occurrences in place using
// CompareOccurrences.
func SortOccurrences(occs []Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		return CompareOccurrences(occs[i], occs[j]) < 0
	})
}

// Entry holds the complete set of occurrences for one term, partitioned
// by category. The AllReferences category is the deduplicated union of
// every other bucket.
type Entry map[string][]Occurrence

// Categories returns the entry's category names in sorted order,
// excluding AllReferences.
func (e Entry) Categories() []string {
	cats := make([]string, 0, len(e))
	for cat := range e {
		if cat != AllReferences {
			cats = append(cats, cat)
		}
	}
	sort.Strings(cats)
	return cats
}

// Pages returns the sorted distinct page numbers recorded under the given
// category.
func (e Entry) Pages(category string) []int {
	seen := make(map[int]bool)
	var pages []int
	for _, occ := range e[category] {
		if !seen[occ.Page] {
			seen[occ.Page] = true
			pages = append(pages, occ.Page)
		}
	}
	sort.Ints(pages)
	return pages
}

// Index is the finished, immutable result of an indexing run. It is built
// once per document by the indexer and only read thereafter.
type Index struct {
	// Entries maps a term's display form to its occurrences by category.
	Entries map[string]Entry

	// CrossRefs maps a term to its independently-observed alternate forms.
	CrossRefs map[string][]string
}

// Terms returns all index keys in lexicographic order.
func (idx *Index) Terms() []string {
	terms := make([]string, 0, len(idx.Entries))
	for term := range idx.Entries {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
