package search

import (
	"strings"

	"github.com/patrickprogramme/subsearch/pkg/model"
)

// rebuild convertit la suite de chunks en une nouvelle liste d'entrées de la
// même forme que le transcript d'origine, dans l'ordre des chunks.
//
//   - chunk occurrence : UNE nouvelle entrée, attribuée à l'entrée d'origine
//     dont l'intervalle contient l'offset de début de l'occurrence.
//     SearchMatchIndex est un compteur strictement croissant (0, 1, ...)
//     incrémenté uniquement pour les occurrences attribuées avec succès.
//     Une occurrence non attribuable (offset sur un séparateur) est
//     abandonnée silencieusement : aucune entrée, compteur inchangé.
//   - chunk non-occurrence : une entrée par entrée d'origine dont
//     l'intervalle intersecte celui du chunk (dans l'ordre des entrées
//     d'origine), RawText = sous-chaîne intersectée, débarrassée des espaces
//     en bordure. Une sous-chaîne vide après trim ne produit pas d'entrée.
//
// Les entrées d'origine ne sont jamais modifiées : seuls ID, StartMs, EndMs
// et IsMusic sont recopiés dans les nouvelles entrées.
func rebuild(chunks []chunk, ix Index) []model.Entry {
	out := make([]model.Entry, 0, ix.EntryCount())

	matchCount := 0
	for _, c := range chunks {
		if c.isMatch {
			es, ok := ix.spanAt(c.span.Start)
			if !ok {
				continue
			}
			idx := matchCount
			matchCount++
			out = append(out, model.Entry{
				ID:               es.entry.ID,
				StartMs:          es.entry.StartMs,
				EndMs:            es.entry.EndMs,
				IsMusic:          es.entry.IsMusic,
				RawText:          c.text,
				SearchMatchIndex: &idx,
			})
			continue
		}

		if c.span.IsEmpty() {
			continue
		}
		for _, es := range ix.spans {
			inter, ok := Intersect(c.span, es.span)
			if !ok {
				continue
			}
			raw := strings.TrimSpace(ix.merged[inter.Start:inter.End])
			if raw == "" {
				continue
			}
			out = append(out, model.Entry{
				ID:      es.entry.ID,
				StartMs: es.entry.StartMs,
				EndMs:   es.entry.EndMs,
				IsMusic: es.entry.IsMusic,
				RawText: raw,
			})
		}
	}

	return out
}
