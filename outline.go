package legalindex

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Span is one text run observed in the document layout, with the font
// metadata used for heading classification.
type Span struct {
	Text     string
	FontSize float64
	Bold     bool
}

// PageLayout is the ordered sequence of spans observed on one page.
type PageLayout struct {
	Page  int
	Spans []Span
}

// Outline is the inferred table of contents: part heading → chapter
// heading → topic heading → leaf. It is built once per document and only
// read thereafter.
type Outline map[string]OutlineSection

// OutlineSection maps level-2 headings to their topics.
type OutlineSection map[string]OutlineTopic

// OutlineTopic maps level-3 headings to their leaves.
type OutlineTopic map[string]*OutlineLeaf

// OutlineLeaf is either a plain page number or, once a level-4 heading
// has been observed under the topic, a one-entry mapping from the
// level-4 heading to its page.
type OutlineLeaf struct {
	Page int
	Sub  map[string]int
}

// MarshalJSON renders a leaf as a bare page number, or as an object when
// a level-4 heading replaced the plain value.
func (l *OutlineLeaf) MarshalJSON() ([]byte, error) {
	if len(l.Sub) == 0 {
		return []byte(strconv.Itoa(l.Page)), nil
	}
	return json.Marshal(l.Sub)
}

// SortedKeys returns the top-level headings in lexicographic order.
func (o Outline) SortedKeys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s OutlineSection) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t OutlineTopic) SortedKeys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sectionRefRe strips embedded section-symbol citations out of candidate
// heading text; they pollute heading text but are not part of the heading.
var sectionRefRe = regexp.MustCompile(`§\s*[\d\-\.]+(?:\([a-z0-9\-]+\))*`)

// BuildOutline scans the document's layout stream and infers a nested
// outline, classifying each span into one of four heading levels from two
// signals only: the emphasis flag and the casing shape of the text.
//
// The heuristic is best-effort: malformed or unusual layout degrades to a
// sparser outline, never an error. A heading key, once created, is never
// overwritten by a later occurrence on a different page.
//
// The returned map records, for each adjusted page number, the heading
// path in effect after that page's spans were classified; pages without
// headings carry the previous page's path forward.
func BuildOutline(pages []PageLayout, offset int) (Outline, map[int][]string) {
	outline := Outline{}
	paths := make(map[int][]string, len(pages))

	var l1, l2, l3, l4 string
	for _, pl := range pages {
		page := pl.Page - offset
		for _, span := range pl.Spans {
			text := strings.TrimSpace(sectionRefRe.ReplaceAllString(span.Text, ""))
			if text == "" || isNumericText(text) {
				continue
			}

			switch {
			case span.Bold && isAllCapsOrNonLetter(text):
				l1, l2, l3, l4 = text, "", "", ""
				if _, ok := outline[l1]; !ok {
					outline[l1] = OutlineSection{}
				}
			case span.Bold && isTitleCase(text):
				if l1 == "" {
					continue
				}
				l2, l3, l4 = text, "", ""
				if _, ok := outline[l1][l2]; !ok {
					outline[l1][l2] = OutlineTopic{}
				}
			case !span.Bold && isTitleCase(text):
				if l1 == "" || l2 == "" {
					continue
				}
				l3, l4 = text, ""
				if _, ok := outline[l1][l2][l3]; !ok {
					outline[l1][l2][l3] = &OutlineLeaf{Page: page}
				}
			default:
				if l3 == "" {
					continue
				}
				l4 = text
				if leaf := outline[l1][l2][l3]; leaf.Sub == nil {
					leaf.Sub = map[string]int{l4: page}
				}
			}
		}
		paths[page] = headingPath(l1, l2, l3, l4)
	}

	return outline, paths
}

func headingPath(levels ...string) []string {
	var path []string
	for _, l := range levels {
		if l == "" {
			break
		}
		path = append(path, l)
	}
	return path
}

// isNumericText reports whether the text consists solely of digits.
func isNumericText(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// isAllCapsOrNonLetter reports whether every letter in the text is
// uppercase.
func isAllCapsOrNonLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// isTitleCase reports whether the text looks like a title-cased heading:
// every word begins with an uppercase letter (or a non-letter) and at
// least one lowercase letter is present.
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}
