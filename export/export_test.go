package export_test

import (
	"github.com/fwojciec/legalindex"
)

// testProjection builds a small but representative projection: one case
// citation, one statutory citation, subject terms in two categories, a
// cross-reference, and a two-level outline.
func testProjection(opts legalindex.ExportOptions) *legalindex.Projection {
	idx := &legalindex.Index{
		Entries: map[string]legalindex.Entry{
			"Smith v. Jones": {
				legalindex.CategoryCaseLaw: {
					{Page: 2, Snippet: "see Smith v. Jones", Headings: []string{"PART ONE", "Evidence"}},
				},
			},
			"CPLR § 3212": {
				legalindex.CategoryStatutory: {
					{Page: 3, Snippet: "under CPLR § 3212"},
				},
			},
			"Negligence": {
				"torts": {
					{Page: 1, Snippet: "negligence per se"},
					{Page: 4, Snippet: "negligence claim"},
				},
			},
			"Corporation": {
				"business_entities": {
					{Page: 5, Snippet: "the corporation"},
				},
			},
			"Llc": {
				"business_entities": {
					{Page: 6, Snippet: "an LLC"},
				},
			},
		},
		CrossRefs: map[string][]string{
			"Corporation": {"Llc"},
		},
	}
	toc := legalindex.Outline{
		"PART ONE": {
			"Commencing An Action": {
				"Filing The Summons": &legalindex.OutlineLeaf{Page: 1},
				"Service Of Process": &legalindex.OutlineLeaf{Sub: map[string]int{"service by mail": 2}},
			},
		},
	}
	return legalindex.NewProjection(idx, toc, opts)
}
