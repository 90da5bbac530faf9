package export

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/legalindex"
)

var _ legalindex.Exporter = (*JSONExporter)(nil)

// JSONExporter renders the structured-data document. Map keys are
// emitted in sorted order, so identical projections produce
// byte-identical output.
type JSONExporter struct{}

// NewJSONExporter creates a new JSONExporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// jsonIndex fixes the top-level key order of the JSON document.
type jsonIndex struct {
	TableOfContents     legalindex.Outline          `json:"table_of_contents"`
	CaseLawReferences   map[string][]int            `json:"case_law_references"`
	StatutoryReferences map[string][]int            `json:"statutory_references"`
	SubjectMatterIndex  map[string]map[string][]int `json:"subject_matter_index"`
	CrossReferences     map[string][]string         `json:"_cross_references"`
}

// jsonTermsOnlyIndex is the terms-only shape: the reference sections are
// absent entirely, not rendered empty.
type jsonTermsOnlyIndex struct {
	TableOfContents    legalindex.Outline          `json:"table_of_contents"`
	SubjectMatterIndex map[string]map[string][]int `json:"subject_matter_index"`
	CrossReferences    map[string][]string         `json:"_cross_references"`
}

func (e *JSONExporter) Export(w io.Writer, p *legalindex.Projection) error {
	toc := p.TOC
	if toc == nil {
		toc = legalindex.Outline{}
	}
	crossRefs := p.CrossRefs
	if crossRefs == nil {
		crossRefs = map[string][]string{}
	}
	subject := subjectMatterIndex(p)

	var doc any
	if p.Options.TermsOnly {
		doc = jsonTermsOnlyIndex{
			TableOfContents:    toc,
			SubjectMatterIndex: subject,
			CrossReferences:    crossRefs,
		}
	} else {
		doc = jsonIndex{
			TableOfContents:     toc,
			CaseLawReferences:   pagesByTerm(p, p.CaseLaw),
			StatutoryReferences: pagesByTerm(p, p.Statutory),
			SubjectMatterIndex:  subject,
			CrossReferences:     crossRefs,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return legalindex.Errorf(legalindex.EINTERNAL, "writing json output: %v", err)
	}
	return nil
}

// subjectMatterIndex renders each subject term's categories as sorted
// page arrays, including the AllReferences union.
func subjectMatterIndex(p *legalindex.Projection) map[string]map[string][]int {
	out := make(map[string]map[string][]int)
	for _, cat := range p.SubjectCategories {
		for _, term := range p.Subject[cat] {
			if _, ok := out[term]; ok {
				continue
			}
			entry := p.Entries[term]
			byCat := make(map[string][]int, len(entry))
			for _, c := range entry.Categories() {
				byCat[c] = entry.Pages(c)
			}
			byCat[legalindex.AllReferences] = entry.Pages(legalindex.AllReferences)
			out[term] = byCat
		}
	}
	return out
}

func pagesByTerm(p *legalindex.Projection, terms []string) map[string][]int {
	out := make(map[string][]int, len(terms))
	for _, term := range terms {
		out[term] = p.Pages(term)
	}
	return out
}
