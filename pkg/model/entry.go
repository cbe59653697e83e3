package model

import "fmt"

// Entry représente une cue horodatée du transcript.
//
// DisplayText est le texte canonique utilisé pour l'indexation et la
// recherche ; il n'est jamais modifié par le moteur. RawText est le champ
// de sortie : le moteur de recherche y écrit le texte re-découpé.
// SearchMatchIndex est nil sauf pour les entrées issues d'une occurrence
// de recherche (0 pour la première occurrence, 1 pour la suivante, etc.).
type Entry struct {
	ID          string `json:"id"`
	StartMs     int64  `json:"startMs"`
	EndMs       int64  `json:"endMs"`
	DisplayText string `json:"displayText"`
	RawText     string `json:"rawText,omitempty"`
	IsMusic     bool   `json:"isMusic,omitempty"`

	SearchMatchIndex *int `json:"searchMatchIndex,omitempty"`
}

// IsSearchMatch indique si l'entrée provient d'une occurrence de recherche.
func (e Entry) IsSearchMatch() bool {
	return e.SearchMatchIndex != nil
}

// StartSeconds retourne le début de l'entrée en Seconds (pour l'affichage).
func (e Entry) StartSeconds() Seconds {
	return MsToSeconds(e.StartMs)
}

func (e Entry) String() string {
	match := ""
	if e.SearchMatchIndex != nil {
		match = fmt.Sprintf(", match=%d", *e.SearchMatchIndex)
	}
	return fmt.Sprintf("Entry[%s %s %q%s]",
		e.ID, e.StartSeconds().TimestampHHMMSS(), e.DisplayText, match)
}
