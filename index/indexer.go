// Package index provides the concept matching and aggregation engine.
// It applies the pattern catalog and vocabulary to per-page text,
// accumulates deduplicated occurrences into the index model, and links
// cross-references between synonymous terms once all pages are processed.
package index

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fwojciec/legalindex"
	"github.com/fwojciec/legalindex/bloom"
)

// contextWindow is the number of bytes of surrounding text captured on
// each side of a match, clamped outward to rune starts. On non-ASCII
// pages the window holds slightly fewer than 100 characters.
const contextWindow = 100

// Bloom filter sizing for the per-page word prefilter.
const (
	wordSetFalsePositiveRate = 0.01
	avgWordLength            = 6
)

// vocabTerm is a vocabulary entry precompiled for matching.
type vocabTerm struct {
	category  string
	display   string // canonical title-cased form used as the index key
	firstWord string // leading word, used against the page word prefilter
	re        *regexp.Regexp
}

// Indexer accumulates index entries from page text. It is not safe for
// concurrent use; pages must be indexed in document order because the
// heading path travels with each call.
type Indexer struct {
	catalog   *legalindex.Catalog
	vocab     []vocabTerm
	synonyms  map[string][]string
	offset    int
	termsOnly bool

	entries   map[string]legalindex.Entry
	crossRefs map[string][]string
	seen      map[uint64]struct{}
	titler    cases.Caser
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithPageOffset subtracts n from every raw page number before an
// occurrence is recorded, so front-matter pages can be excluded from
// numbering. Negative adjusted pages pass through unchanged.
func WithPageOffset(n int) Option {
	return func(ix *Indexer) { ix.offset = n }
}

// WithTermsOnly suppresses statutory and case-law pattern matching;
// vocabulary and phrase matching still run.
func WithTermsOnly() Option {
	return func(ix *Indexer) { ix.termsOnly = true }
}

// WithSynonyms replaces the synonym table used by BuildCrossReferences.
func WithSynonyms(synonyms map[string][]string) Option {
	return func(ix *Indexer) { ix.synonyms = synonyms }
}

// New creates an Indexer for the given catalog and vocabulary. Both are
// treated as immutable; the indexer never modifies them.
func New(catalog *legalindex.Catalog, vocab legalindex.Vocabulary, opts ...Option) *Indexer {
	ix := &Indexer{
		catalog:   catalog,
		synonyms:  legalindex.DefaultSynonyms(),
		entries:   make(map[string]legalindex.Entry),
		crossRefs: make(map[string][]string),
		seen:      make(map[uint64]struct{}),
		titler:    cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(ix)
	}
	ix.vocab = compileVocabulary(vocab, ix.titler)
	return ix
}

// compileVocabulary precompiles word-boundary matchers for every term.
// Iteration order is fixed by sorting so runs are deterministic.
func compileVocabulary(vocab legalindex.Vocabulary, titler cases.Caser) []vocabTerm {
	var compiled []vocabTerm
	for _, category := range sortedKeys(vocab) {
		for _, term := range vocab[category] {
			lower := strings.ToLower(strings.TrimSpace(term))
			if lower == "" {
				continue
			}
			words := splitWords(lower)
			first := ""
			if len(words) > 0 {
				first = words[0]
			}
			compiled = append(compiled, vocabTerm{
				category:  category,
				display:   titler.String(lower),
				firstWord: first,
				re:        regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(lower) + `\b`),
			})
		}
	}
	return compiled
}

// IndexPage runs every enabled pattern and the vocabulary against one
// page of text. The heading path is stamped onto every occurrence
// recorded from this page. Empty or malformed text yields zero matches;
// it is never an error.
func (ix *Indexer) IndexPage(text string, rawPage int, headings []string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	page := rawPage - ix.offset
	path := clonePath(headings)

	if !ix.termsOnly {
		for category, patterns := range ix.catalog.Statutory {
			ix.matchPatterns(patterns, category, text, page, path)
		}
		for category, patterns := range ix.catalog.CaseLaw {
			ix.matchPatterns(patterns, category, text, page, path)
		}
	}
	for category, pattern := range ix.catalog.General {
		ix.matchPatterns([]*regexp.Regexp{pattern}, category, text, page, path)
	}

	ix.matchVocabulary(text, page, path)
}

// ExtractPhrases runs the fixed phrase patterns against one page of
// text, recording matches title-cased under the key_phrases category.
func (ix *Indexer) ExtractPhrases(text string, rawPage int, headings []string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	page := rawPage - ix.offset
	path := clonePath(headings)

	for _, pattern := range ix.catalog.Phrases {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			matched := strings.TrimSpace(text[loc[0]:loc[1]])
			if matched == "" || isNumeric(matched) {
				continue
			}
			phrase := ix.titler.String(matched)
			ix.record(phrase, legalindex.CategoryKeyPhrases, page, snippet(text, loc[0], loc[1]), path)
		}
	}
}

// matchPatterns records an occurrence for every non-numeric match of the
// given patterns, keyed by the matched text exactly as it appears.
func (ix *Indexer) matchPatterns(patterns []*regexp.Regexp, category, text string, page int, path []string) {
	for _, pattern := range patterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			term := strings.TrimSpace(text[loc[0]:loc[1]])
			if term == "" || isNumeric(term) {
				continue
			}
			ix.record(term, category, page, snippet(text, loc[0], loc[1]), path)
		}
	}
}

// matchVocabulary runs the word-boundary search for every vocabulary
// term, recording hits under the term's canonical display form. A Bloom
// filter over the page's words skips terms whose leading word cannot
// occur on the page.
func (ix *Indexer) matchVocabulary(text string, page int, path []string) {
	words := splitWords(strings.ToLower(text))
	filter := bloom.NewWordSet(uint(len(words)+1), wordSetFalsePositiveRate)
	for _, w := range words {
		filter.Add(w)
	}

	for _, vt := range ix.vocab {
		if vt.firstWord != "" && !filter.Test(vt.firstWord) {
			continue
		}
		for _, loc := range vt.re.FindAllStringIndex(text, -1) {
			ix.record(vt.display, vt.category, page, snippet(text, loc[0], loc[1]), path)
		}
	}
}

// record appends the occurrence to the term's category bucket and to its
// AllReferences union, deduplicated by full occurrence identity.
func (ix *Indexer) record(term, category string, page int, snip string, path []string) {
	occ := legalindex.Occurrence{Page: page, Snippet: snip, Headings: path}
	ix.add(term, category, occ)
	ix.add(term, legalindex.AllReferences, occ)
}

func (ix *Indexer) add(term, category string, occ legalindex.Occurrence) {
	key := identity(term, category, occ)
	if _, ok := ix.seen[key]; ok {
		return
	}
	ix.seen[key] = struct{}{}

	entry, ok := ix.entries[term]
	if !ok {
		entry = make(legalindex.Entry)
		ix.entries[term] = entry
	}
	entry[category] = append(entry[category], occ)
}

// identity hashes the full occurrence identity, including term and
// category, for O(1) duplicate suppression.
func identity(term, category string, occ legalindex.Occurrence) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(term)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(category)
	_, _ = h.Write([]byte{0})
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(uint64(occ.Page) >> (8 * i))
	}
	_, _ = h.Write(buf[:])
	_, _ = h.WriteString(occ.Snippet)
	_, _ = h.Write([]byte{0})
	for _, heading := range occ.Headings {
		_, _ = h.WriteString(heading)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// BuildCrossReferences links each synonym group's canonical term to its
// alternates, but only when both were independently observed as index
// keys. Run exactly once, after all pages are processed.
func (ix *Indexer) BuildCrossReferences() {
	for _, main := range sortedKeys(ix.synonyms) {
		if _, ok := ix.entries[main]; !ok {
			continue
		}
		for _, alt := range ix.synonyms[main] {
			if _, ok := ix.entries[alt]; ok {
				ix.crossRefs[main] = append(ix.crossRefs[main], alt)
			}
		}
	}
}

// Index returns the accumulated model. The indexer must not be used
// after the model is taken; the result is treated as immutable.
func (ix *Indexer) Index() *legalindex.Index {
	return &legalindex.Index{
		Entries:   ix.entries,
		CrossRefs: ix.crossRefs,
	}
}

// snippet captures a bounded window of text around a match, clamped to
// rune boundaries, with newlines flattened to spaces.
func snippet(text string, start, end int) string {
	s := start - contextWindow
	if s < 0 {
		s = 0
	}
	e := end + contextWindow
	if e > len(text) {
		e = len(text)
	}
	for s > 0 && !utf8.RuneStart(text[s]) {
		s--
	}
	for e < len(text) && !utf8.RuneStart(text[e]) {
		e++
	}
	return strings.TrimSpace(strings.ReplaceAll(text[s:e], "\n", " "))
}

// splitWords tokenizes text into words, keeping apostrophes and hyphens
// inside words so tokens line up with word-boundary regex semantics.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})
}

// isNumeric reports whether the string consists solely of digits.
func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func clonePath(path []string) []string {
	if len(path) == 0 {
		return nil
	}
	if len(path) > legalindex.HeadingLevels {
		path = path[:legalindex.HeadingLevels]
	}
	out := make([]string, len(path))
	copy(out, path)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
