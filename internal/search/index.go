package search

import (
	"sort"
	"strings"

	"github.com/patrickprogramme/subsearch/pkg/model"
)

// entrySpan lie une entrée d'origine à l'intervalle qu'elle occupe dans le
// texte fusionné.
type entrySpan struct {
	entry model.Entry
	span  Range
}

// Index est la valeur immuable construite une seule fois par transcript :
// le texte fusionné + la liste ordonnée des intervalles par entrée.
//
// Le texte fusionné est la concaténation des DisplayText séparés par UN
// espace (aucun espace en tête ni en queue : les offsets sont donc calculés
// directement sur la chaîne finale, pas de correction après trim). L'espace
// séparateur n'appartient à aucun intervalle. Une entrée au texte vide
// produit un intervalle de longueur nulle.
type Index struct {
	merged string
	spans  []entrySpan
}

// BuildIndex construit l'Index à partir des entrées, dans l'ordre d'origine.
// Fonction pure : les entrées ne sont jamais modifiées.
func BuildIndex(entries []model.Entry) Index {
	var b strings.Builder
	spans := make([]entrySpan, 0, len(entries))

	cursor := 0
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(' ')
			cursor++
		}
		start := cursor
		b.WriteString(e.DisplayText)
		cursor += len(e.DisplayText)
		spans = append(spans, entrySpan{
			entry: e,
			span:  Range{Start: start, End: cursor},
		})
	}

	return Index{merged: b.String(), spans: spans}
}

// MergedText retourne le texte fusionné sur lequel porte la recherche.
func (ix Index) MergedText() string {
	return ix.merged
}

// EntryCount retourne le nombre d'entrées indexées.
func (ix Index) EntryCount() int {
	return len(ix.spans)
}

// spanAt retourne l'entrySpan dont l'intervalle contient l'offset donné.
// Les intervalles sont contigus et triés par construction : recherche
// dichotomique sur End. Un offset tombant sur un espace séparateur (ou hors
// borne) ne correspond à aucune entrée -> false.
func (ix Index) spanAt(offset int) (entrySpan, bool) {
	i := sort.Search(len(ix.spans), func(i int) bool {
		return ix.spans[i].span.End > offset
	})
	if i < len(ix.spans) && ix.spans[i].span.Contains(offset) {
		return ix.spans[i], true
	}
	return entrySpan{}, false
}
