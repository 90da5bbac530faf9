package index_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/legalindex"
	"github.com/fwojciec/legalindex/index"
)

func TestIndexer_IndexPage(t *testing.T) {
	t.Parallel()

	t.Run("records vocabulary, citations and phrases from one page", func(t *testing.T) {
		t.Parallel()

		text := "The attorney-client privilege was upheld; see Smith v. Jones, 45 N.Y.2d 12 (1978)."
		headings := []string{"PART ONE", "Evidence"}

		ix := index.New(legalindex.DefaultCatalog(), legalindex.DefaultVocabulary(),
			index.WithPageOffset(4))
		ix.IndexPage(text, 6, headings)
		ix.ExtractPhrases(text, 6, headings)
		idx := ix.Index()

		// Vocabulary terms are keyed by their canonical title-cased form
		// and recorded under every category that lists them.
		entry, ok := idx.Entries["Attorney-Client Privilege"]
		require.True(t, ok, "terms: %v", idx.Terms())
		assert.Contains(t, entry, "evidence")
		assert.Contains(t, entry, "professional_responsibility")
		assert.Contains(t, entry, legalindex.CategoryKeyPhrases)
		assert.Contains(t, entry, legalindex.AllReferences)

		// The page offset applies to every recorded occurrence.
		assert.Equal(t, []int{2}, entry.Pages("evidence"))

		occ := entry["evidence"][0]
		assert.Contains(t, occ.Snippet, "attorney-client privilege")
		assert.Equal(t, headings, occ.Headings)

		// Case name and reporter citation are keyed by the matched text;
		// the lowercase lead-in ("see") stays out of the key.
		caseEntry, ok := idx.Entries["Smith v. Jones"]
		require.True(t, ok)
		assert.Equal(t, []int{2}, caseEntry.Pages(legalindex.CategoryCaseLaw))
		assert.NotContains(t, idx.Entries, "see Smith v. Jones")

		citeEntry, ok := idx.Entries["45 N.Y.2d 12 (1978)"]
		require.True(t, ok)
		assert.Contains(t, citeEntry, legalindex.CategoryCaseLaw)
	})

	t.Run("statutory citations", func(t *testing.T) {
		t.Parallel()

		ix := index.New(legalindex.DefaultCatalog(), legalindex.DefaultVocabulary())
		ix.IndexPage("A motion under CPLR § 3212 must be timely.", 3, nil)
		idx := ix.Index()

		entry, ok := idx.Entries["CPLR § 3212"]
		require.True(t, ok)
		assert.Equal(t, []int{3}, entry.Pages(legalindex.CategoryStatutory))
	})

	t.Run("subdivision markers", func(t *testing.T) {
		t.Parallel()

		ix := index.New(legalindex.DefaultCatalog(), legalindex.Vocabulary{})
		ix.IndexPage("Liability under subdivision (b) is absolute.", 1, nil)
		idx := ix.Index()

		entry, ok := idx.Entries["(b)"]
		require.True(t, ok)
		assert.Contains(t, entry, legalindex.CategorySubdivisions)
	})

	t.Run("terms only skips citation patterns", func(t *testing.T) {
		t.Parallel()

		text := "The attorney-client privilege was upheld; see Smith v. Jones."

		ix := index.New(legalindex.DefaultCatalog(), legalindex.DefaultVocabulary(),
			index.WithTermsOnly())
		ix.IndexPage(text, 1, nil)
		idx := ix.Index()

		assert.NotContains(t, idx.Entries, "Smith v. Jones")
		assert.Contains(t, idx.Entries, "Attorney-Client Privilege")
	})

	t.Run("empty text records nothing", func(t *testing.T) {
		t.Parallel()

		ix := index.New(legalindex.DefaultCatalog(), legalindex.DefaultVocabulary())
		ix.IndexPage("   \n\t", 1, nil)
		ix.ExtractPhrases("", 1, nil)

		assert.Empty(t, ix.Index().Entries)
	})

	t.Run("duplicate occurrences collapse", func(t *testing.T) {
		t.Parallel()

		text := "The corporation was dissolved."

		ix := index.New(legalindex.DefaultCatalog(), legalindex.DefaultVocabulary())
		ix.IndexPage(text, 1, nil)
		ix.IndexPage(text, 1, nil)
		idx := ix.Index()

		entry := idx.Entries["Corporation"]
		require.NotNil(t, entry)
		assert.Len(t, entry["business_entities"], 1)
		assert.Len(t, entry[legalindex.AllReferences], 1)
	})

	t.Run("negative adjusted pages pass through", func(t *testing.T) {
		t.Parallel()

		ix := index.New(legalindex.DefaultCatalog(), legalindex.DefaultVocabulary(),
			index.WithPageOffset(10))
		ix.IndexPage("The corporation was dissolved.", 6, nil)
		idx := ix.Index()

		assert.Equal(t, []int{-4}, idx.Entries["Corporation"].Pages("business_entities"))
	})

	t.Run("heading path is capped and copied", func(t *testing.T) {
		t.Parallel()

		headings := []string{"A", "B", "C", "D", "E", "F", "G"}

		ix := index.New(legalindex.DefaultCatalog(), legalindex.DefaultVocabulary())
		ix.IndexPage("The corporation was dissolved.", 1, headings)
		headings[0] = "MUTATED"
		idx := ix.Index()

		occ := idx.Entries["Corporation"]["business_entities"][0]
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, occ.Headings)
	})
}

func TestIndexer_ExtractPhrases(t *testing.T) {
	t.Parallel()

	t.Run("phrases are recorded title-cased", func(t *testing.T) {
		t.Parallel()

		ix := index.New(legalindex.DefaultCatalog(), legalindex.Vocabulary{})
		ix.ExtractPhrases("The motion for summary judgment was denied.", 2, nil)
		idx := ix.Index()

		entry, ok := idx.Entries["Summary Judgment"]
		require.True(t, ok)
		assert.Equal(t, []int{2}, entry.Pages(legalindex.CategoryKeyPhrases))
	})

	t.Run("snippets flatten newlines around the match", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", 120) + "\nthe doctrine of res judicata applies\n" + strings.Repeat("y", 120)

		ix := index.New(legalindex.DefaultCatalog(), legalindex.Vocabulary{})
		ix.ExtractPhrases(text, 1, nil)
		idx := ix.Index()

		entry, ok := idx.Entries["Res Judicata"]
		require.True(t, ok)
		snip := entry[legalindex.CategoryKeyPhrases][0].Snippet
		assert.Contains(t, snip, "res judicata")
		assert.NotContains(t, snip, "\n")
		assert.Less(t, len(snip), len(text))
	})
}

func TestIndexer_BuildCrossReferences(t *testing.T) {
	t.Parallel()

	t.Run("links synonyms only when both terms were observed", func(t *testing.T) {
		t.Parallel()

		synonyms := map[string][]string{
			"Corporation": {"Llc", "Corp"},
			"Hearsay":     {"Hearsay Rule"},
		}

		ix := index.New(legalindex.DefaultCatalog(), legalindex.DefaultVocabulary(),
			index.WithSynonyms(synonyms))
		ix.IndexPage("The corporation formed an LLC.", 1, nil)
		ix.BuildCrossReferences()
		idx := ix.Index()

		// "Corp" and "Hearsay" never appeared, so neither is linked.
		assert.Equal(t, map[string][]string{"Corporation": {"Llc"}}, idx.CrossRefs)
	})

	t.Run("no synonyms observed yields no links", func(t *testing.T) {
		t.Parallel()

		ix := index.New(legalindex.DefaultCatalog(), legalindex.DefaultVocabulary())
		ix.IndexPage("Nothing of note happens here.", 1, nil)
		ix.BuildCrossReferences()

		assert.Empty(t, ix.Index().CrossRefs)
	})
}
