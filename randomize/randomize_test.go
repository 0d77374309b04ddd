package randomize

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/wardrobe/catalog"
)

func wardrobe() *catalog.Catalog {
	return catalog.New("hero", "articles.txt", []catalog.Article{
		{ID: "b1", Category: "body", Layer: "body"},
		{ID: "b2", Category: "body", Layer: "body"},
		{ID: "h1", Category: "hair", Layer: "hair"},
		{ID: "t1", Category: "tops", Layer: "tops"},
		{ID: "t2", Category: "tops", Layer: "tops"},
		{ID: "t3", Category: "tops", Layer: "tops"},
		{ID: "s1", Category: "shoes", Layer: "shoes"},
	})
}

func TestOutfit_OnePerCategory(t *testing.T) {
	c := wardrobe()
	rng := rand.New(rand.NewPCG(7, 7))

	for range 50 {
		got := Outfit(c, rng)
		if len(got) != 4 {
			t.Fatalf("Outfit() returned %d articles, want 4", len(got))
		}
		for i, want := range []string{"body", "hair", "tops", "shoes"} {
			if got[i].Category != want {
				t.Errorf("Outfit()[%d].Category = %q, want %q", i, got[i].Category, want)
			}
		}
	}
}

func TestOutfit_EmptyCatalog(t *testing.T) {
	got := Outfit(catalog.New("nobody", "articles.txt", nil), nil)
	if len(got) != 0 {
		t.Errorf("Outfit() = %+v, want empty", got)
	}
}

func TestOutfit_CoversEveryArticle(t *testing.T) {
	c := wardrobe()
	rng := rand.New(rand.NewPCG(1, 99))

	seen := map[string]bool{}
	for range 500 {
		for _, a := range Outfit(c, rng) {
			seen[a.ID] = true
		}
	}
	for _, a := range c.Articles() {
		if !seen[a.ID] {
			t.Errorf("article %q never drawn in 500 outfits", a.ID)
		}
	}
}

func TestOutfit_Deterministic(t *testing.T) {
	c := wardrobe()
	a := Outfit(c, rand.New(rand.NewPCG(3, 4)))
	b := Outfit(c, rand.New(rand.NewPCG(3, 4)))
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("draw %d differs with equal seeds: %q vs %q", i, a[i].ID, b[i].ID)
		}
	}
}

func TestSubset(t *testing.T) {
	c := wardrobe()
	got := Subset(c, []string{"shoes", "unknown", "tops", "shoes"}, rand.New(rand.NewPCG(5, 5)))
	if len(got) != 2 {
		t.Fatalf("Subset() returned %d articles, want 2", len(got))
	}
	if got[0].Category != "shoes" || got[1].Category != "tops" {
		t.Errorf("Subset() categories = %q, %q, want shoes, tops", got[0].Category, got[1].Category)
	}
}

func TestExceptAndClothes(t *testing.T) {
	c := wardrobe()
	got := Except(c, IdentityCategories)
	if len(got) != 2 || got[0] != "tops" || got[1] != "shoes" {
		t.Errorf("Except() = %v, want [tops shoes]", got)
	}

	for _, a := range Clothes(c, rand.New(rand.NewPCG(8, 8))) {
		if a.Category == "body" || a.Category == "hair" {
			t.Errorf("Clothes() drew identity article %+v", a)
		}
	}
}
