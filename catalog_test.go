package legalindex_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/legalindex"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := legalindex.DefaultCatalog()
	require.NotEmpty(t, catalog.Statutory[legalindex.CategoryStatutory])
	require.NotEmpty(t, catalog.CaseLaw[legalindex.CategoryCaseLaw])
	require.NotNil(t, catalog.General[legalindex.CategorySubdivisions])
	require.NotEmpty(t, catalog.Phrases)

	t.Run("statutory citations", func(t *testing.T) {
		t.Parallel()

		patterns := catalog.Statutory[legalindex.CategoryStatutory]

		assert.Equal(t, "CPLR § 3212", firstMatch(patterns, "A motion under CPLR § 3212 must be timely."))
		assert.Equal(t, "N.Y. General Business Law § 349", firstMatch(patterns, "See N.Y. General Business Law § 349 on deceptive acts."))
		assert.Equal(t, "Rule 130-1.1", firstMatch(patterns, "Sanctions are governed by Rule 130-1.1 of the court rules."))
		assert.Equal(t, "§ 240(1)", firstMatch(patterns, "Liability under § 240(1) is absolute."))
		assert.Empty(t, firstMatch(patterns, "No citations appear in this sentence."))
	})

	t.Run("case citations", func(t *testing.T) {
		t.Parallel()

		patterns := catalog.CaseLaw[legalindex.CategoryCaseLaw]

		assert.Equal(t, "Smith v. Jones", firstMatch(patterns, "see Smith v. Jones, a leading case"))
		assert.Equal(t, "45 N.Y.2d 12 (1978)", firstMatch(patterns, "reported at 45 N.Y.2d 12 (1978), the court held"))
		assert.Equal(t, "App. Div.", firstMatch(patterns, "affirmed by the App. Div. on other grounds"))

		// Lowercase words leading into a citation stay out of the match,
		// and lowercase text alone is not a citation.
		assert.Equal(t, "Smith v. Jones", firstMatch(patterns, "upheld; see Smith v. Jones, 45 N.Y.2d 12 (1978)."))
		assert.Empty(t, firstMatch(patterns, "never reversed on appeal"))
	})

	t.Run("subdivision markers", func(t *testing.T) {
		t.Parallel()

		re := catalog.General[legalindex.CategorySubdivisions]

		assert.True(t, re.MatchString("(a)"))
		assert.True(t, re.MatchString("(12)"))
		assert.True(t, re.MatchString("(iii)"))
		assert.False(t, re.MatchString("(1978)"))
		assert.False(t, re.MatchString("(abcd)"))
	})

	t.Run("phrase patterns are case-insensitive", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Summary Judgment", firstMatch(catalog.Phrases, "The motion for Summary Judgment was denied."))
		assert.Equal(t, "attorney-client privilege", firstMatch(catalog.Phrases, "the attorney-client privilege was upheld"))
		assert.Equal(t, "RES JUDICATA", firstMatch(catalog.Phrases, "barred by RES JUDICATA"))
	})
}

func TestDefaultVocabulary(t *testing.T) {
	t.Parallel()

	vocab := legalindex.DefaultVocabulary()

	assert.Contains(t, vocab, "evidence")
	assert.Contains(t, vocab, "torts")
	assert.Contains(t, vocab["evidence"], "attorney-client privilege")
	assert.Contains(t, vocab["civil_procedure"], "summary judgment")

	// Terms can legitimately appear under more than one category.
	assert.Contains(t, vocab["professional_responsibility"], "attorney-client privilege")
}

func TestDefaultSynonyms(t *testing.T) {
	t.Parallel()

	synonyms := legalindex.DefaultSynonyms()

	require.Contains(t, synonyms, "Corporation")
	assert.Contains(t, synonyms["Corporation"], "Corp")
}

// firstMatch returns the first match of any pattern in the text, or "".
func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}
