package search

import (
	"regexp"

	"github.com/patrickprogramme/subsearch/pkg/model"
)

// Searcher détient l'index immuable d'un transcript et permet d'y chercher
// un terme à travers les frontières de cues.
//
// L'index (texte fusionné + intervalles) est construit une seule fois, à la
// création, et n'est plus jamais modifié : des appels Search concurrents sur
// le même Searcher sont sûrs, chaque appel alloue ses propres chunks et ses
// propres entrées résultat.
type Searcher struct {
	ix Index
}

// New construit un Searcher pour les entrées données (ordre d'origine).
func New(entries []model.Entry) *Searcher {
	return &Searcher{ix: BuildIndex(entries)}
}

// MergedText expose le texte fusionné (utile pour l'affichage et les tests).
func (s *Searcher) MergedText() string {
	return s.ix.MergedText()
}

// Search exécute une recherche insensible à la casse de term sur le texte
// fusionné et retourne un transcript re-découpé : chaque occurrence devient
// sa propre entrée (SearchMatchIndex renseigné), les segments restants sont
// re-découpés le long des frontières des entrées d'origine.
//
// Les métacaractères d'expression régulière du terme sont interprétés ;
// un motif mal formé retourne ErrBadPattern (récupérable : retomber sur
// SearchLiteral). Un terme vide ne "matche" rien : le transcript d'origine
// est reconstruit tel quel, sans entrée occurrence.
func (s *Searcher) Search(term string) ([]model.Entry, error) {
	if term == "" {
		return rebuild(splitAround(s.ix.merged, nil), s.ix), nil
	}

	re, err := compileTerm(term)
	if err != nil {
		return nil, err
	}

	matches := findMatches(re, s.ix.merged)
	return rebuild(splitAround(s.ix.merged, matches), s.ix), nil
}

// SearchLiteral cherche le terme en texte brut : les métacaractères sont
// échappés via regexp.QuoteMeta avant compilation. Un terme vide se comporte
// comme Search("").
func (s *Searcher) SearchLiteral(term string) ([]model.Entry, error) {
	if term == "" {
		return s.Search("")
	}
	return s.Search(regexp.QuoteMeta(term))
}
