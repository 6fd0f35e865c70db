package taxonomy

import (
	"sort"
	"strings"
)

// Taxonomy is an immutable, categorized vocabulary of recognized skill
// terms. Aliases map variant spellings to a canonical term. Extending a
// taxonomy always builds a new one; a constructed taxonomy is safe for
// unsynchronized concurrent reads.
type Taxonomy struct {
	categories map[string][]string
	canonical  map[string]string
}

// New builds a taxonomy from category -> terms plus an alias table.
// Terms and aliases are lowercased and deduplicated.
func New(categories map[string][]string, aliases map[string]string) *Taxonomy {
	t := &Taxonomy{
		categories: make(map[string][]string, len(categories)),
		canonical:  make(map[string]string),
	}

	for category, terms := range categories {
		kept := make([]string, 0, len(terms))
		for _, term := range terms {
			term = normalizeTerm(term)
			if term == "" {
				continue
			}
			if _, ok := t.canonical[term]; ok {
				continue
			}
			t.canonical[term] = term
			kept = append(kept, term)
		}
		sort.Strings(kept)
		t.categories[strings.ToLower(strings.TrimSpace(category))] = kept
	}

	for alias, target := range aliases {
		alias = normalizeTerm(alias)
		target = normalizeTerm(target)
		if alias == "" || target == "" {
			continue
		}
		if _, ok := t.canonical[alias]; ok {
			continue
		}
		t.canonical[alias] = target
	}

	return t
}

// Extend returns a new taxonomy with extra terms added to the given
// category. The receiver is left untouched.
func (t *Taxonomy) Extend(category string, terms ...string) *Taxonomy {
	categories := make(map[string][]string, len(t.categories)+1)
	for name, existing := range t.categories {
		categories[name] = append([]string(nil), existing...)
	}
	category = strings.ToLower(strings.TrimSpace(category))
	categories[category] = append(categories[category], terms...)

	aliases := make(map[string]string)
	for term, target := range t.canonical {
		if term != target {
			aliases[term] = target
		}
	}

	return New(categories, aliases)
}

// WithAliases returns a new taxonomy carrying the extra alias entries.
func (t *Taxonomy) WithAliases(aliases map[string]string) *Taxonomy {
	merged := make(map[string]string, len(aliases))
	for term, target := range t.canonical {
		if term != target {
			merged[term] = target
		}
	}
	for alias, target := range aliases {
		merged[alias] = target
	}

	categories := make(map[string][]string, len(t.categories))
	for name, existing := range t.categories {
		categories[name] = append([]string(nil), existing...)
	}

	return New(categories, merged)
}

// Canonical resolves a term or alias to its canonical form,
// case-insensitively.
func (t *Taxonomy) Canonical(term string) (string, bool) {
	target, ok := t.canonical[normalizeTerm(term)]
	return target, ok
}

// Terms returns every known term and alias, longest first so callers
// matching against text credit the longest applicable term.
func (t *Taxonomy) Terms() []string {
	terms := make([]string, 0, len(t.canonical))
	for term := range t.canonical {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return terms
}

// Categories returns the category names in sorted order.
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(t.categories))
	for name := range t.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryTerms returns the canonical terms of one category.
func (t *Taxonomy) CategoryTerms(category string) []string {
	terms := t.categories[strings.ToLower(strings.TrimSpace(category))]
	return append([]string(nil), terms...)
}

// Len reports the number of distinct canonical terms.
func (t *Taxonomy) Len() int {
	n := 0
	for term, target := range t.canonical {
		if term == target {
			n++
		}
	}
	return n
}

func normalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}
