package search

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrBadPattern : le terme n'est pas un motif d'expression régulière valide.
// Erreur récupérable : l'appelant peut retomber sur SearchLiteral.
var ErrBadPattern = errors.New("terme de recherche invalide")

// compileTerm compile le terme en expression régulière insensible à la casse.
// Les métacaractères du terme restent significatifs : c'est une particularité
// assumée de la syntaxe de recherche (voir SearchLiteral pour la version
// texte brut).
func compileTerm(term string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + term)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	return re, nil
}

// findMatches retourne les intervalles des occurrences de re dans merged,
// dans l'ordre. FindAllStringIndex avance après chaque occurrence : pas de
// chevauchement possible. Les occurrences vides (motif du type "x*") sont
// ignorées pour ne jamais produire de chunk dégénéré.
func findMatches(re *regexp.Regexp, merged string) []Range {
	locs := re.FindAllStringIndex(merged, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Range, 0, len(locs))
	for _, loc := range locs {
		if loc[1] <= loc[0] {
			continue
		}
		out = append(out, Range{Start: loc[0], End: loc[1]})
	}
	return out
}
