package command

import (
	"strings"

	"go-baki-pos/internal/model"
)

// Matches reports whether a spoken product token refers to p. The rule is a
// loose containment check in either direction:
//   - the lower-cased English name contains the token, or
//   - the Bengali name contains the token, or
//   - the lower-cased token contains the first word of the English name.
//
// There is no ranking; callers resolve ties by list order.
func Matches(p model.Product, fragment string) bool {
	name := strings.ToLower(p.Name)
	frag := strings.ToLower(fragment)

	if strings.Contains(name, frag) || strings.Contains(p.NameBn, fragment) {
		return true
	}

	words := strings.Fields(name)
	if len(words) == 0 {
		return false
	}
	return strings.Contains(frag, words[0])
}

// Resolve returns the first product in list order that matches the token.
func Resolve(products []model.Product, fragment string) (model.Product, bool) {
	for _, p := range products {
		if Matches(p, fragment) {
			return p, true
		}
	}
	return model.Product{}, false
}

// BengaliName returns the Bengali name of the resolved product, or echoes the
// token unchanged when nothing matches.
func BengaliName(products []model.Product, fragment string) string {
	if p, ok := Resolve(products, fragment); ok {
		return p.NameBn
	}
	return fragment
}
