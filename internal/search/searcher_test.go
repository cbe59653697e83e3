package search

import (
	"errors"
	"strings"
	"testing"

	"github.com/patrickprogramme/subsearch/pkg/model"
)

// rawTexts concatène les RawText des entrées dans l'ordre d'émission.
func rawTexts(entries []model.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.RawText)
	}
	return out
}

// matchIndices retourne les SearchMatchIndex renseignés, dans l'ordre d'émission.
func matchIndices(entries []model.Entry) []int {
	var out []int
	for _, e := range entries {
		if e.SearchMatchIndex != nil {
			out = append(out, *e.SearchMatchIndex)
		}
	}
	return out
}

func TestSearchScenarioMiddleOfSecondEntry(t *testing.T) {
	// scénario de référence : "bump" est entièrement dans l'entrée 2
	s := New(mkEntries("foo bar baz", "boop bump", "snap pop"))

	if s.MergedText() != "foo bar baz boop bump snap pop" {
		t.Fatalf("MergedText = %q", s.MergedText())
	}

	got, err := s.Search("bump")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := []string{"foo bar baz", "boop", "bump", "snap pop"}
	if strings.Join(rawTexts(got), "|") != strings.Join(want, "|") {
		t.Fatalf("RawTexts = %v; want %v", rawTexts(got), want)
	}

	// l'occurrence est attribuée à l'entrée 2, numérotée 0
	m := got[2]
	if m.SearchMatchIndex == nil || *m.SearchMatchIndex != 0 {
		t.Fatalf("SearchMatchIndex = %v; want 0", m.SearchMatchIndex)
	}
	if m.ID != "e2" {
		t.Errorf("occurrence attribuée à %s; want e2", m.ID)
	}
	// les entrées non-occurrence gardent l'identité de leur entrée d'origine
	if got[0].ID != "e1" || got[1].ID != "e2" || got[3].ID != "e3" {
		t.Errorf("attribution des segments : %v %v %v", got[0].ID, got[1].ID, got[3].ID)
	}
	// aucune autre entrée n'est une occurrence
	if n := len(matchIndices(got)); n != 1 {
		t.Errorf("%d occurrences; want 1", n)
	}
}

func TestSearchAcrossEntryBoundary(t *testing.T) {
	s := New(mkEntries("foo bar", "baz boop"))

	// l'espace séparateur casse l'adjacence : "barbaz" ne matche pas...
	got, err := s.Search("barbaz")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matchIndices(got)) != 0 {
		t.Fatalf("barbaz ne devrait pas matcher, got %v", rawTexts(got))
	}

	// ...mais "bar baz" traverse la frontière entre entrée 1 et entrée 2
	got, err = s.Search("bar baz")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []string{"foo", "bar baz", "boop"}
	if strings.Join(rawTexts(got), "|") != strings.Join(want, "|") {
		t.Fatalf("RawTexts = %v; want %v", rawTexts(got), want)
	}
	// attribution à l'entrée contenant l'offset de début (entrée 1)
	if got[1].SearchMatchIndex == nil || got[1].ID != "e1" {
		t.Errorf("occurrence trans-frontière attribuée à %v", got[1].ID)
	}
}

func TestSearchTermAbsent(t *testing.T) {
	entries := mkEntries("foo bar baz", "boop bump", "snap pop")
	s := New(entries)

	got, err := s.Search("zzz")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matchIndices(got)) != 0 {
		t.Fatalf("aucune occurrence attendue")
	}
	// les frontières d'origine sont reproduites à l'identique
	if len(got) != len(entries) {
		t.Fatalf("got %d entrées; want %d", len(got), len(entries))
	}
	for i, e := range got {
		if e.RawText != entries[i].DisplayText {
			t.Errorf("entrée %d : RawText = %q; want %q", i, e.RawText, entries[i].DisplayText)
		}
		if e.ID != entries[i].ID {
			t.Errorf("entrée %d : ID = %s; want %s", i, e.ID, entries[i].ID)
		}
	}
}

func TestSearchAdjacentMatches(t *testing.T) {
	// deux occurrences adjacentes (entrées voisines) : indices 0 et 1,
	// pas d'entrée intermédiaire (le trou ne couvre que le séparateur)
	s := New(mkEntries("ha", "ha"))

	got, err := s.Search("ha")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entrées; want 2 : %v", len(got), rawTexts(got))
	}
	idx := matchIndices(got)
	if len(idx) != 2 || idx[0] != 0 || idx[1] != 1 {
		t.Fatalf("indices = %v; want [0 1]", idx)
	}
	if got[0].ID != "e1" || got[1].ID != "e2" {
		t.Errorf("attribution = %s, %s; want e1, e2", got[0].ID, got[1].ID)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	s := New(mkEntries("Foo BAR", "baz"))

	got, err := s.Search("bar")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	idx := matchIndices(got)
	if len(idx) != 1 {
		t.Fatalf("une occurrence attendue, got %v", rawTexts(got))
	}
	// le texte de l'occurrence garde la casse d'origine
	for _, e := range got {
		if e.SearchMatchIndex != nil && e.RawText != "BAR" {
			t.Errorf("RawText occurrence = %q; want %q", e.RawText, "BAR")
		}
	}
}

func TestSearchOverlapsSkipped(t *testing.T) {
	// "aaa" + terme "aa" : la recherche avance après chaque occurrence,
	// une seule occurrence (pas de chevauchement)
	s := New(mkEntries("aaa"))

	got, err := s.Search("aa")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if n := len(matchIndices(got)); n != 1 {
		t.Fatalf("%d occurrences; want 1 (chevauchement interdit)", n)
	}
}

func TestSearchEmptyTermRoundTrip(t *testing.T) {
	entries := mkEntries("foo bar baz", "boop bump", "snap pop")
	s := New(entries)

	got, err := s.Search("")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matchIndices(got)) != 0 {
		t.Fatalf("terme vide : aucune occurrence attendue")
	}

	// propriété aller-retour : les RawText joints par des espaces
	// redonnent le texte fusionné
	joined := strings.TrimSpace(strings.Join(rawTexts(got), " "))
	if joined != s.MergedText() {
		t.Fatalf("round-trip : %q != %q", joined, s.MergedText())
	}
}

func TestSearchNoEntries(t *testing.T) {
	s := New(nil)
	got, err := s.Search("foo")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("transcript vide : résultat vide attendu, got %v", rawTexts(got))
	}
}

func TestSearchMatchOnSeparatorDropped(t *testing.T) {
	// une occurrence qui démarre sur un espace séparateur n'est attribuable
	// à aucune entrée : abandonnée silencieusement, compteur inchangé
	s := New(mkEntries("a", "b"))

	got, err := s.Search(" ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matchIndices(got)) != 0 {
		t.Fatalf("occurrence sur séparateur : aucune entrée occurrence attendue, got %v", rawTexts(got))
	}
	want := []string{"a", "b"}
	if strings.Join(rawTexts(got), "|") != strings.Join(want, "|") {
		t.Fatalf("RawTexts = %v; want %v", rawTexts(got), want)
	}
}

func TestSearchRegexSyntaxAndLiteralFallback(t *testing.T) {
	s := New(mkEntries("cost 3.50 (approx)", "ok"))

	// métacaractères interprétés : "." matche n'importe quel caractère
	got, err := s.Search(`3.50`)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matchIndices(got)) != 1 {
		t.Fatalf("motif 3.50 : une occurrence attendue")
	}

	// motif mal formé -> ErrBadPattern, récupérable
	if _, err := s.Search("(approx"); !errors.Is(err, ErrBadPattern) {
		t.Fatalf("err = %v; want ErrBadPattern", err)
	}

	// SearchLiteral échappe les métacaractères
	got, err = s.SearchLiteral("(approx)")
	if err != nil {
		t.Fatalf("SearchLiteral: %v", err)
	}
	if len(matchIndices(got)) != 1 {
		t.Fatalf("SearchLiteral (approx) : une occurrence attendue, got %v", rawTexts(got))
	}
}

func TestSearchPartitionCompleteness(t *testing.T) {
	// tous les caractères hors séparateurs sont conservés, sans doublon :
	// la concaténation des RawText (séparateurs restaurés) reconstitue les
	// DisplayText d'origine
	entries := mkEntries("alpha beta", "beta gamma beta", "delta")
	s := New(entries)

	got, err := s.Search("beta")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	idx := matchIndices(got)
	if len(idx) != 3 {
		t.Fatalf("%d occurrences; want 3", len(idx))
	}
	for i, v := range idx {
		if v != i {
			t.Fatalf("indices = %v; want 0..2 croissants", idx)
		}
	}

	// reconstitution : coller les RawText dans l'ordre et comparer aux mots
	// du texte fusionné (le trim des sous-entrées ne perd que des espaces)
	wantWords := strings.Fields(s.MergedText())
	gotWords := strings.Fields(strings.Join(rawTexts(got), " "))
	if strings.Join(gotWords, " ") != strings.Join(wantWords, " ") {
		t.Fatalf("mots perdus ou dupliqués :\ngot  %v\nwant %v", gotWords, wantWords)
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	entries := mkEntries("foo bar", "baz")
	before := make([]model.Entry, len(entries))
	copy(before, entries)

	s := New(entries)
	if _, err := s.Search("bar"); err != nil {
		t.Fatalf("Search: %v", err)
	}

	for i := range entries {
		if entries[i] != before[i] {
			t.Fatalf("entrée %d modifiée : %+v -> %+v", i, before[i], entries[i])
		}
	}
}
