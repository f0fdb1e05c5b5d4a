package catalog

import "testing"

func TestGetByID(t *testing.T) {
	p, found := GetByID("bullet-vibe")
	if !found {
		t.Fatal("expected known product to be found")
	}
	if p.Name != "PinkCherry Bullet Vibe" || p.Price != 11.90 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, found := GetByID("no-such-product"); found {
		t.Fatal("expected miss for unknown id")
	}
}

func TestByCategoryKeepsDefinitionOrder(t *testing.T) {
	massagers := ByCategory("Massagers")
	if len(massagers) != 3 {
		t.Fatalf("expected 3 massagers, got %d", len(massagers))
	}
	if massagers[0].ID != "magic-wand-rech" || massagers[2].ID != "magic-wand-plus" {
		t.Fatalf("definition order not preserved: %s .. %s", massagers[0].ID, massagers[2].ID)
	}

	if got := ByCategory("Nope"); len(got) != 0 {
		t.Fatalf("expected empty result for unknown category, got %d", len(got))
	}
}

func TestCategoriesDeduplicatedFirstSeen(t *testing.T) {
	cats := Categories()

	seen := make(map[string]bool)
	for _, c := range cats {
		if seen[c] {
			t.Fatalf("duplicate category %s", c)
		}
		seen[c] = true
	}
	if cats[0] != "Massagers" {
		t.Fatalf("expected first-seen order starting with Massagers, got %s", cats[0])
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	hits := Search("magic wand")
	if len(hits) != 3 {
		t.Fatalf("expected 3 magic wand products, got %d", len(hits))
	}

	if got := Search(""); len(got) != len(List()) {
		t.Fatal("expected empty query to match everything")
	}
	if got := Search("zzzz"); len(got) != 0 {
		t.Fatalf("expected no hits, got %d", len(got))
	}
}

func TestListReturnsCopy(t *testing.T) {
	first := List()
	first[0].Name = "mutated"
	if List()[0].Name == "mutated" {
		t.Fatal("List must not expose the backing table")
	}
}

func TestCatalogPricesNonNegative(t *testing.T) {
	for _, p := range List() {
		if p.Price < 0 {
			t.Fatalf("product %s has negative price", p.ID)
		}
		if p.ID == "" || p.Name == "" || p.Category == "" {
			t.Fatalf("product missing required fields: %+v", p)
		}
	}
}
