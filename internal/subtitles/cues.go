package subtitles

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/patrickprogramme/subsearch/pkg/model"
)

var reMultiSpace = regexp.MustCompile(`\s+`)

// reBracketTag : cue ne contenant qu'une étiquette entre crochets,
// ex: "[Music]", "[Musique]", "[Applaudissements]".
var reBracketTag = regexp.MustCompile(`^\[[^\]]+\]$`)

// EventText assemble et nettoie le texte d'un event (ré-usage de cleanSeg).
func EventText(ev rawEvent) string {
	var parts []string
	for _, seg := range ev.Segs {
		txt := cleanSeg(seg.Utf8)
		if txt == "" {
			continue
		}
		parts = append(parts, txt)
	}
	return strings.Join(parts, " ")
}

// cleanSeg normalise un seg : convertit les "\n" et "\\n" en espaces,
// remplace les séquences d'espaces par un seul espace, et trim.
func cleanSeg(s string) string {
	s = strings.ReplaceAll(s, "\\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// isMusicCue détecte les cues "non parlées" : étiquette entre crochets
// seule ("[Music]") ou texte composé uniquement de notes de musique.
func isMusicCue(text string) bool {
	if reBracketTag.MatchString(text) {
		return true
	}
	stripped := strings.Map(func(r rune) rune {
		if r == '♪' || r == '♫' || r == ' ' {
			return -1
		}
		return r
	}, text)
	return text != "" && stripped == ""
}

// CuesFromRaw transforme une piste json3 en entrées du transcript, une par
// event non vide, dans l'ordre. Le texte est nettoyé (newlines -> espaces,
// espaces normalisés) et devient le DisplayText canonique de l'entrée.
//
// Fin de cue : tStartMs + dDurationMs ; si la durée est absente, on retombe
// sur le début de l'event suivant, et à défaut sur le début de la cue.
func CuesFromRaw(raw rawJSON3) []model.Entry {
	out := make([]model.Entry, 0, len(raw.Events))

	for i, ev := range raw.Events {
		if ev.IsNewlineOnly() {
			continue
		}
		text := EventText(ev)
		if text == "" {
			continue
		}

		start := ev.startMs()
		end := start
		if d := ev.durationMs(); d > 0 {
			end = start + d
		} else {
			// chercher le prochain event daté
			for _, next := range raw.Events[i+1:] {
				if next.TStartMs != nil {
					end = next.startMs()
					break
				}
			}
		}

		out = append(out, model.Entry{
			ID:          fmt.Sprintf("cue-%d", len(out)+1),
			StartMs:     start,
			EndMs:       end,
			DisplayText: text,
			IsMusic:     isMusicCue(text),
		})
	}

	return out
}
