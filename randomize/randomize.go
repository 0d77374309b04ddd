// Package randomize picks random outfits from a catalog.
//
// Every category contributes at most one article, drawn uniformly from that
// category's list. The functions only choose; callers apply the result with
// one Select per article so layer exclusivity still holds.
package randomize

import (
	"math/rand/v2"
	"slices"

	"github.com/gogpu/wardrobe/catalog"
)

// IdentityCategories define who the character is rather than what they wear.
// Outfit randomization usually leaves them alone.
var IdentityCategories = []string{"body", "hair", "face", "head"}

// Outfit draws one article from every non-empty category, in category order.
// The result is empty when the catalog has no categories. A nil rng uses the
// global source.
func Outfit(c *catalog.Catalog, rng *rand.Rand) []catalog.Article {
	return Subset(c, c.Categories(), rng)
}

// Subset draws one article from each named category, in the given order.
// Unknown or empty categories are skipped; duplicates draw once.
func Subset(c *catalog.Catalog, categories []string, rng *rand.Rand) []catalog.Article {
	out := make([]catalog.Article, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, name := range categories {
		if seen[name] {
			continue
		}
		seen[name] = true

		list := c.ArticlesByCategory(name)
		if len(list) == 0 {
			continue
		}
		out = append(out, list[intN(rng, len(list))])
	}
	return out
}

// Except returns the catalog's categories that are not listed in excluded,
// in category order.
func Except(c *catalog.Catalog, excluded []string) []string {
	var out []string
	for _, name := range c.Categories() {
		if !slices.Contains(excluded, name) {
			out = append(out, name)
		}
	}
	return out
}

// Clothes draws a random outfit that keeps IdentityCategories untouched.
func Clothes(c *catalog.Catalog, rng *rand.Rand) []catalog.Article {
	return Subset(c, Except(c, IdentityCategories), rng)
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
