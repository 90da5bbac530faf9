// Package yaml loads vocabulary configuration files.
package yaml

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fwojciec/legalindex"
)

// LoadVocabulary reads a custom vocabulary file mapping domain category
// names to term lists. Loading fails before any page is processed:
// a missing file returns ENOTFOUND, a malformed one EINVALID.
func LoadVocabulary(path string) (legalindex.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, legalindex.Errorf(legalindex.ENOTFOUND, "vocabulary file not found: %s", path)
		}
		return nil, legalindex.Errorf(legalindex.EINTERNAL, "reading vocabulary file: %v", err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, legalindex.Errorf(legalindex.EINVALID, "malformed vocabulary file %s: %v", path, err)
	}

	vocab := make(legalindex.Vocabulary, len(raw))
	for category, terms := range raw {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		var kept []string
		for _, term := range terms {
			if term = strings.TrimSpace(term); term != "" {
				kept = append(kept, term)
			}
		}
		if len(kept) > 0 {
			vocab[category] = kept
		}
	}
	if len(vocab) == 0 {
		return nil, legalindex.Errorf(legalindex.EINVALID, "vocabulary file %s defines no terms", path)
	}
	return vocab, nil
}
