package taxonomy

import "testing"

func TestCanonicalLookup(t *testing.T) {
	t.Parallel()

	tax := Default()

	tests := []struct {
		name   string
		term   string
		expect string
		found  bool
	}{
		{name: "exact term", term: "python", expect: "python", found: true},
		{name: "case insensitive", term: "PyThOn", expect: "python", found: true},
		{name: "alias resolves to canonical", term: "k8s", expect: "kubernetes", found: true},
		{name: "multi word alias", term: "Amazon Web Services", expect: "aws", found: true},
		{name: "whitespace collapsed", term: "  machine   learning ", expect: "machine learning", found: true},
		{name: "unknown term", term: "basket weaving", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tax.Canonical(tt.term)
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if ok && got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestExtendDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	base := New(map[string][]string{"programming": {"go"}}, nil)
	extended := base.Extend("programming", "zig", "gleam")

	if _, ok := base.Canonical("zig"); ok {
		t.Fatalf("extending must not mutate the original taxonomy")
	}
	if _, ok := extended.Canonical("zig"); !ok {
		t.Fatalf("expected extended taxonomy to know the new term")
	}
	if _, ok := extended.Canonical("go"); !ok {
		t.Fatalf("expected extended taxonomy to keep existing terms")
	}
	if base.Len() != 1 {
		t.Fatalf("expected base to keep 1 term, got %d", base.Len())
	}
	if extended.Len() != 3 {
		t.Fatalf("expected extended to have 3 terms, got %d", extended.Len())
	}
}

func TestWithAliasesKeepsCanonicalTerms(t *testing.T) {
	t.Parallel()

	base := New(map[string][]string{"cloud": {"kubernetes"}}, nil)
	tax := base.WithAliases(map[string]string{"kube": "kubernetes"})

	if got, ok := tax.Canonical("kube"); !ok || got != "kubernetes" {
		t.Fatalf("expected alias to resolve, got %q (found=%v)", got, ok)
	}
	if _, ok := base.Canonical("kube"); ok {
		t.Fatalf("adding aliases must not mutate the original taxonomy")
	}
	if tax.Len() != 1 {
		t.Fatalf("aliases must not count as canonical terms, got %d", tax.Len())
	}
}

func TestTermsLongestFirst(t *testing.T) {
	t.Parallel()

	tax := New(map[string][]string{"programming": {"java", "javascript", "go"}}, nil)
	terms := tax.Terms()

	if len(terms) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(terms))
	}
	if terms[0] != "javascript" {
		t.Fatalf("expected longest term first, got %q", terms[0])
	}
	if terms[len(terms)-1] != "go" {
		t.Fatalf("expected shortest term last, got %q", terms[len(terms)-1])
	}
}

func TestDuplicateTermsCollapse(t *testing.T) {
	t.Parallel()

	tax := New(map[string][]string{
		"a": {"python", "Python", "  python  "},
		"b": {"python"},
	}, nil)

	if tax.Len() != 1 {
		t.Fatalf("expected duplicates to collapse to 1 term, got %d", tax.Len())
	}
}
