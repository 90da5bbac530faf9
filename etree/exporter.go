// Package etree renders index projections as hierarchical XML using the
// beevik/etree document model.
package etree

import (
	"io"
	"sort"
	"strconv"

	"github.com/beevik/etree"

	"github.com/fwojciec/legalindex"
)

var _ legalindex.Exporter = (*Exporter)(nil)

// Exporter renders the XML document. Sections mirror the JSON shape; each
// occurrence element carries its page number as an attribute and its
// context text as element content.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Export(w io.Writer, p *legalindex.Projection) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("LegalIndex")

	writeTOC(root, p.TOC)

	if !p.Options.TermsOnly {
		writeReferences(root, "CaseLawReferences", p.CaseLaw, p)
		writeReferences(root, "StatutoryReferences", p.Statutory, p)
	}

	subject := root.CreateElement("SubjectMatterIndex")
	for _, term := range p.Terms {
		entry := p.Entries[term]
		if _, ok := entry[legalindex.CategoryCaseLaw]; ok {
			continue
		}
		if _, ok := entry[legalindex.CategoryStatutory]; ok {
			continue
		}
		termEl := subject.CreateElement("Term")
		termEl.CreateAttr("name", term)
		for _, cat := range entry.Categories() {
			catEl := termEl.CreateElement("Category")
			catEl.CreateAttr("name", cat)
			writeOccurrences(catEl, entry[cat], p.Options.ContextStyle)
		}
		allEl := termEl.CreateElement("Category")
		allEl.CreateAttr("name", legalindex.AllReferences)
		writeOccurrences(allEl, entry[legalindex.AllReferences], p.Options.ContextStyle)
	}

	crossEl := root.CreateElement("CrossReferences")
	for _, term := range p.CrossRefTerms() {
		termEl := crossEl.CreateElement("Term")
		termEl.CreateAttr("name", term)
		for _, alt := range p.CrossRefs[term] {
			termEl.CreateElement("SeeAlso").SetText(alt)
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return legalindex.Errorf(legalindex.EINTERNAL, "writing xml output: %v", err)
	}
	return nil
}

func writeTOC(root *etree.Element, toc legalindex.Outline) {
	tocEl := root.CreateElement("TableOfContents")
	for _, l1 := range toc.SortedKeys() {
		partEl := tocEl.CreateElement("Part")
		partEl.CreateAttr("name", l1)
		section := toc[l1]
		for _, l2 := range section.SortedKeys() {
			chapterEl := partEl.CreateElement("Chapter")
			chapterEl.CreateAttr("name", l2)
			topic := section[l2]
			for _, l3 := range topic.SortedKeys() {
				leaf := topic[l3]
				topicEl := chapterEl.CreateElement("Topic")
				topicEl.CreateAttr("name", l3)
				if len(leaf.Sub) == 0 {
					topicEl.CreateAttr("page", strconv.Itoa(leaf.Page))
					continue
				}
				subs := make([]string, 0, len(leaf.Sub))
				for sub := range leaf.Sub {
					subs = append(subs, sub)
				}
				sort.Strings(subs)
				for _, sub := range subs {
					subEl := topicEl.CreateElement("Subtopic")
					subEl.CreateAttr("name", sub)
					subEl.CreateAttr("page", strconv.Itoa(leaf.Sub[sub]))
				}
			}
		}
	}
}

func writeReferences(root *etree.Element, name string, terms []string, p *legalindex.Projection) {
	sectionEl := root.CreateElement(name)
	for _, term := range terms {
		refEl := sectionEl.CreateElement("Reference")
		refEl.CreateAttr("name", term)
		writeOccurrences(refEl, p.Entries[term][legalindex.AllReferences], p.Options.ContextStyle)
	}
}

// writeOccurrences emits one element per occurrence: page as attribute,
// context as content according to the context style.
func writeOccurrences(parent *etree.Element, occs []legalindex.Occurrence, style legalindex.ContextStyle) {
	for _, occ := range occs {
		occEl := parent.CreateElement("Occurrence")
		occEl.CreateAttr("page", strconv.Itoa(occ.Page))
		switch style {
		case legalindex.ContextSnippet:
			occEl.SetText(occ.Snippet)
		case legalindex.ContextHeadings:
			occEl.SetText(occ.HeadingPath())
		}
	}
}
