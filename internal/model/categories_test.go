package model

import "testing"

func TestCategories_FourWithUniqueNames(t *testing.T) {
	cats := Categories()
	if len(cats) != 4 {
		t.Fatalf("categories=%d, want 4", len(cats))
	}
	seen := make(map[string]bool)
	for _, c := range cats {
		if seen[c.Name] {
			t.Fatalf("duplicate category name %q", c.Name)
		}
		seen[c.Name] = true
		if c.Title == "" {
			t.Errorf("category %q has no title", c.Name)
		}
		if len(c.Symbols) == 0 {
			t.Errorf("category %q has no symbols", c.Name)
		}
	}
}

func TestCategoryNames_MatchesCategories(t *testing.T) {
	names := CategoryNames()
	cats := Categories()
	if len(names) != len(cats) {
		t.Fatalf("names=%d, categories=%d", len(names), len(cats))
	}
	for i, c := range cats {
		if names[i] != c.Name {
			t.Fatalf("names[%d]=%q, want %q", i, names[i], c.Name)
		}
	}
}

func TestCategoryByName(t *testing.T) {
	for _, name := range CategoryNames() {
		c, ok := CategoryByName(name)
		if !ok || c.Name != name {
			t.Fatalf("lookup %q failed", name)
		}
	}
	if _, ok := CategoryByName("clicks"); ok {
		t.Fatal("unknown name should not resolve")
	}
}

func TestSymbols_NonEmptyAndUniqueWithinCategory(t *testing.T) {
	for _, c := range Categories() {
		seen := make(map[string]bool)
		for _, s := range c.Symbols {
			if s == "" {
				t.Fatalf("category %q contains an empty symbol", c.Name)
			}
			if seen[s] {
				t.Errorf("category %q repeats symbol %q", c.Name, s)
			}
			seen[s] = true
		}
	}
}
