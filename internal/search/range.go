package search

// Range délimite un intervalle semi-ouvert [Start, End) d'offsets (en octets)
// dans le texte fusionné. La convention semi-ouverte est utilisée PARTOUT :
// construction de l'index, découpage en chunks, intersection.
type Range struct {
	Start int
	End   int
}

// Len retourne la longueur de l'intervalle (0 si vide).
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty : true si l'intervalle ne couvre aucun offset.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains : true si l'offset i tombe dans [Start, End).
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Intersect retourne l'intersection de a et b, et false si elle est vide.
// L'opération est symétrique : Intersect(a, b) == Intersect(b, a).
func Intersect(a, b Range) (Range, bool) {
	lo := max(a.Start, b.Start)
	hi := min(a.End, b.End)
	if hi <= lo {
		return Range{}, false
	}
	return Range{Start: lo, End: hi}, true
}
