package legalindex

import "sort"

// Projection is a filtered, ordered, read-only view of an Index combined
// with the document outline. It is computed once per export; building it
// never mutates the underlying model.
type Projection struct {
	// TOC is the inferred table of contents.
	TOC Outline

	// Entries holds the surviving entries after filtering, with every
	// occurrence list sorted for deterministic output.
	Entries map[string]Entry

	// Terms lists every surviving term in lexicographic order.
	Terms []string

	// CaseLaw and Statutory list the surviving terms carrying the
	// case-law and statutory reference categories.
	CaseLaw   []string
	Statutory []string

	// Subject maps each domain category to its sorted terms, covering
	// terms that carry neither reference category.
	Subject           map[string][]string
	SubjectCategories []string

	// CrossRefs maps surviving terms to their surviving alternates.
	CrossRefs map[string][]string

	Options ExportOptions
}

type occIdentity struct {
	page    int
	snippet string
	path    string
}

// NewProjection applies the export options to the index and computes the
// section partitions shared by every output format.
func NewProjection(idx *Index, toc Outline, opts ExportOptions) *Projection {
	suppressed := make(map[string]bool, len(opts.SuppressCategories))
	for _, cat := range opts.SuppressCategories {
		suppressed[cat] = true
	}
	if opts.TermsOnly {
		suppressed[CategoryStatutory] = true
		suppressed[CategoryCaseLaw] = true
	}

	p := &Projection{
		TOC:     toc,
		Entries: make(map[string]Entry, len(idx.Entries)),
		Subject: make(map[string][]string),
		Options: opts,
	}

	for term, entry := range idx.Entries {
		filtered := filterEntry(entry, suppressed)
		if filtered == nil {
			continue
		}
		p.Entries[term] = filtered
		p.Terms = append(p.Terms, term)
	}
	sort.Strings(p.Terms)

	for _, term := range p.Terms {
		entry := p.Entries[term]
		_, isCase := entry[CategoryCaseLaw]
		_, isStatute := entry[CategoryStatutory]
		if isCase {
			p.CaseLaw = append(p.CaseLaw, term)
		}
		if isStatute {
			p.Statutory = append(p.Statutory, term)
		}
		if !isCase && !isStatute {
			for _, cat := range entry.Categories() {
				p.Subject[cat] = append(p.Subject[cat], term)
			}
		}
	}
	for cat := range p.Subject {
		p.SubjectCategories = append(p.SubjectCategories, cat)
	}
	sort.Strings(p.SubjectCategories)

	p.CrossRefs = filterCrossRefs(idx.CrossRefs, p.Entries)

	return p
}

// filterEntry drops suppressed categories and recomputes the
// AllReferences union from the survivors. Returns nil when suppression
// empties every bucket; such terms are dropped from every section.
func filterEntry(entry Entry, suppressed map[string]bool) Entry {
	filtered := make(Entry, len(entry))
	seen := make(map[occIdentity]bool)
	var union []Occurrence

	for _, cat := range entry.Categories() {
		if suppressed[cat] {
			continue
		}
		occs := make([]Occurrence, len(entry[cat]))
		copy(occs, entry[cat])
		SortOccurrences(occs)
		filtered[cat] = occs

		for _, occ := range occs {
			id := occIdentity{page: occ.Page, snippet: occ.Snippet, path: occ.HeadingPath()}
			if !seen[id] {
				seen[id] = true
				union = append(union, occ)
			}
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	SortOccurrences(union)
	filtered[AllReferences] = union
	return filtered
}

func filterCrossRefs(refs map[string][]string, surviving map[string]Entry) map[string][]string {
	filtered := make(map[string][]string)
	for term, alts := range refs {
		if _, ok := surviving[term]; !ok {
			continue
		}
		var kept []string
		for _, alt := range alts {
			if _, ok := surviving[alt]; ok {
				kept = append(kept, alt)
			}
		}
		if len(kept) > 0 {
			sort.Strings(kept)
			filtered[term] = kept
		}
	}
	return filtered
}

// CrossRefTerms returns the cross-referenced terms in sorted order.
func (p *Projection) CrossRefTerms() []string {
	terms := make([]string, 0, len(p.CrossRefs))
	for term := range p.CrossRefs {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Pages returns the sorted distinct pages of a term's AllReferences
// bucket.
func (p *Projection) Pages(term string) []int {
	return p.Entries[term].Pages(AllReferences)
}
