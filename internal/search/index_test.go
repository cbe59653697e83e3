package search

import (
	"testing"

	"github.com/patrickprogramme/subsearch/pkg/model"
)

// mkEntries construit des entrées de test à partir des textes donnés,
// avec des ID e1, e2, ... et des timestamps espacés de 1000 ms.
func mkEntries(texts ...string) []model.Entry {
	out := make([]model.Entry, 0, len(texts))
	for i, txt := range texts {
		out = append(out, model.Entry{
			ID:          "e" + string(rune('0'+i+1)),
			StartMs:     int64(i) * 1000,
			EndMs:       int64(i+1) * 1000,
			DisplayText: txt,
		})
	}
	return out
}

func TestBuildIndexMergedText(t *testing.T) {
	ix := BuildIndex(mkEntries("foo bar baz", "boop bump", "snap pop"))

	want := "foo bar baz boop bump snap pop"
	if ix.MergedText() != want {
		t.Fatalf("MergedText = %q; want %q", ix.MergedText(), want)
	}

	// intervalles attendus : contigus, séparés par exactement un espace
	wantSpans := []Range{
		{Start: 0, End: 11},
		{Start: 12, End: 21},
		{Start: 22, End: 30},
	}
	if len(ix.spans) != len(wantSpans) {
		t.Fatalf("got %d spans, want %d", len(ix.spans), len(wantSpans))
	}
	for i, ws := range wantSpans {
		if ix.spans[i].span != ws {
			t.Errorf("span %d = %v; want %v", i, ix.spans[i].span, ws)
		}
		// le texte couvert par chaque intervalle est le DisplayText d'origine
		got := ix.merged[ix.spans[i].span.Start:ix.spans[i].span.End]
		if got != ix.spans[i].entry.DisplayText {
			t.Errorf("span %d couvre %q; want %q", i, got, ix.spans[i].entry.DisplayText)
		}
	}
}

func TestBuildIndexEmptyEntryConsumesSeparator(t *testing.T) {
	// une entrée au texte vide produit un intervalle de longueur nulle
	// mais consomme quand même son espace séparateur
	ix := BuildIndex(mkEntries("ab", "", "cd"))

	if ix.MergedText() != "ab  cd" {
		t.Fatalf("MergedText = %q; want %q", ix.MergedText(), "ab  cd")
	}
	if got := ix.spans[1].span; got != (Range{Start: 3, End: 3}) {
		t.Errorf("span vide = %v; want [3,3)", got)
	}
	if got := ix.spans[2].span; got != (Range{Start: 4, End: 6}) {
		t.Errorf("span 3 = %v; want [4,6)", got)
	}
}

func TestBuildIndexNoEntries(t *testing.T) {
	ix := BuildIndex(nil)
	if ix.MergedText() != "" || ix.EntryCount() != 0 {
		t.Fatalf("index vide attendu, got merged=%q count=%d", ix.MergedText(), ix.EntryCount())
	}
}

func TestSpanAt(t *testing.T) {
	ix := BuildIndex(mkEntries("foo bar baz", "boop bump", "snap pop"))

	tests := []struct {
		offset int
		wantID string
		wantOk bool
	}{
		{offset: 0, wantID: "e1", wantOk: true},
		{offset: 10, wantID: "e1", wantOk: true},
		{offset: 11, wantOk: false}, // espace séparateur : aucune entrée
		{offset: 12, wantID: "e2", wantOk: true},
		{offset: 17, wantID: "e2", wantOk: true}, // début de "bump"
		{offset: 21, wantOk: false},              // séparateur
		{offset: 22, wantID: "e3", wantOk: true},
		{offset: 29, wantID: "e3", wantOk: true},
		{offset: 30, wantOk: false}, // hors borne
		{offset: -1, wantOk: false},
	}

	for _, tc := range tests {
		es, ok := ix.spanAt(tc.offset)
		if ok != tc.wantOk {
			t.Errorf("spanAt(%d) ok = %v; want %v", tc.offset, ok, tc.wantOk)
			continue
		}
		if ok && es.entry.ID != tc.wantID {
			t.Errorf("spanAt(%d) = %s; want %s", tc.offset, es.entry.ID, tc.wantID)
		}
	}
}

func TestSpanAtSkipsZeroLengthSpans(t *testing.T) {
	ix := BuildIndex(mkEntries("ab", "", "cd"))

	// offset 3 = intervalle de longueur nulle de l'entrée vide : non attribuable
	if _, ok := ix.spanAt(3); ok {
		t.Errorf("spanAt(3) devrait échouer sur un intervalle vide")
	}
	if es, ok := ix.spanAt(4); !ok || es.entry.ID != "e3" {
		t.Errorf("spanAt(4) = (%v, %v); want e3", es.entry.ID, ok)
	}
}
