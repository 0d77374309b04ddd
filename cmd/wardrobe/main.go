// Command wardrobe inspects character resources and renders outfits from
// the command line.
//
// Usage:
//
//	wardrobe inspect hero
//	wardrobe render hero 1 12 40 -o hero.png
//	wardrobe random hero --clothes --seed 7 -o random.png
//	wardrobe sheet hero -o sheet.png
//	wardrobe project save hero 1 12 -o hero.stp
//	wardrobe project render hero.stp -o hero.png
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
