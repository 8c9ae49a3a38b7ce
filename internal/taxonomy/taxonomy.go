// Package taxonomy maps free-text category input onto the store's canonical
// category names.
package taxonomy

import (
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Apparel    = "Apparel"
	Footwear   = "Footwear"
	Basketball = "Basketball"
	Baseball   = "Baseball"
	Football   = "Football"
	Golf       = "Golf"
	Camping    = "Camping"
	Fishing    = "Fishing"
	Hunting    = "Hunting"
)

var canonical = []string{Apparel, Footwear, Basketball, Baseball, Football, Golf, Camping, Fishing, Hunting}

// Keys are stored title-cased, the same form Normalize produces before lookup.
var synonyms = map[string]string{
	"Clothing":    Apparel,
	"Clothes":     Apparel,
	"Shirts":      Apparel,
	"T-Shirts":    Apparel,
	"Hoodies":     Apparel,
	"Jackets":     Apparel,
	"Activewear":  Apparel,
	"Leggings":    Apparel,
	"Hats":        Apparel,
	"Shoes":       Footwear,
	"Sneakers":    Footwear,
	"Boots":       Footwear,
	"Sandals":     Footwear,
	"Slides":      Footwear,
	"Hoops":       Basketball,
	"Bball":       Basketball,
	"Basketballs": Basketball,
	"Softball":    Baseball,
	"Baseballs":   Baseball,
	"Bats":        Baseball,
	"Gridiron":    Football,
	"Footballs":   Football,
	"Golf Clubs":  Golf,
	"Golf Balls":  Golf,
	"Putters":     Golf,
	"Tents":       Camping,
	"Camp":        Camping,
	"Hiking":      Camping,
	"Outdoors":    Camping,
	"Fish":        Fishing,
	"Angling":     Fishing,
	"Tackle":      Fishing,
	"Rods":        Fishing,
	"Hunt":        Hunting,
	"Archery":     Hunting,
	"Optics":      Hunting,
}

// Normalize trims and title-cases raw, then resolves it through the synonym
// table. Unknown categories come back title-cased but otherwise untouched.
// ok is false for blank input, which callers treat as "no filter".
func Normalize(raw string) (category string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	// Casers carry state, so one per call.
	candidate := cases.Title(language.Und).String(trimmed)

	if mapped, found := synonyms[candidate]; found {
		return mapped, true
	}

	return candidate, true
}

// Canonical lists the taxonomy every synonym resolves to.
func Canonical() []string {
	return append([]string(nil), canonical...)
}

func Synonyms() map[string]string {
	return maps.Clone(synonyms)
}
