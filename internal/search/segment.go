package search

// chunk : sous-intervalle contigu du texte fusionné, étiqueté occurrence ou
// non. Éphémère : produit et consommé à l'intérieur d'un seul appel Search.
type chunk struct {
	span    Range
	text    string
	isMatch bool
}

// splitAround partitionne [0, len(merged)) en une suite ordonnée de chunks
// alternés : non-occurrence, occurrence, non-occurrence, ... , non-occurrence.
// Les chunks couvrent le texte exactement une fois, sans trou ni
// recouvrement. Les chunks non-occurrence de longueur nulle sont conservés
// (premier chunk si une occurrence démarre à l'offset 0, dernier si elle
// finit en fin de texte, et entre deux occurrences adjacentes) ; la
// reconstruction les ignore naturellement.
//
// matches doit être ordonné et sans chevauchement (garanti par findMatches).
// matches vide -> un seul chunk non-occurrence couvrant tout le texte.
func splitAround(merged string, matches []Range) []chunk {
	chunks := make([]chunk, 0, 2*len(matches)+1)

	cursor := 0
	for _, m := range matches {
		gap := Range{Start: cursor, End: m.Start}
		chunks = append(chunks, chunk{
			span: gap,
			text: merged[gap.Start:gap.End],
		})
		chunks = append(chunks, chunk{
			span:    m,
			text:    merged[m.Start:m.End],
			isMatch: true,
		})
		cursor = m.End
	}

	tail := Range{Start: cursor, End: len(merged)}
	chunks = append(chunks, chunk{
		span: tail,
		text: merged[tail.Start:tail.End],
	})

	return chunks
}
