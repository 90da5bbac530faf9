package legalindex

import "strings"

// Stats summarizes an indexing run.
type Stats struct {
	TotalTerms       int
	TotalPages       int
	PagesWithContent int
	TermsByCategory  map[string]int
}

// ComputeStats derives run statistics from a finished index and the
// extracted page set.
func ComputeStats(idx *Index, pages []PageText) Stats {
	s := Stats{
		TotalTerms:      len(idx.Entries),
		TotalPages:      len(pages),
		TermsByCategory: make(map[string]int),
	}
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			s.PagesWithContent++
		}
	}
	for _, entry := range idx.Entries {
		for cat := range entry {
			if cat != AllReferences {
				s.TermsByCategory[cat]++
			}
		}
	}
	return s
}
