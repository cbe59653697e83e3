package subtitles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/patrickprogramme/subsearch/internal/fsutil"
	"github.com/patrickprogramme/subsearch/pkg/model"
)

// Transcript représente une piste chargée : titre + cues ordonnées.
// C'est aussi le conteneur des résultats de recherche : WithEntries enveloppe
// la liste re-découpée produite par le moteur dans la même forme.
type Transcript struct {
	Title   string
	Lang    string
	Entries []model.Entry
}

// NewTranscript construit un Transcript à partir de données déjà prêtes.
// - pure function, pas d'I/O ni de parsing.
func NewTranscript(title, lang string, entries []model.Entry) Transcript {
	return Transcript{
		Title:   title,
		Lang:    lang,
		Entries: entries,
	}
}

// WithEntries retourne un nouveau Transcript portant les mêmes métadonnées
// mais d'autres entrées (ex: le résultat re-découpé d'une recherche).
func (t Transcript) WithEntries(entries []model.Entry) Transcript {
	return Transcript{
		Title:   t.Title,
		Lang:    t.Lang,
		Entries: entries,
	}
}

// Text retourne le texte affichable d'une entrée : RawText s'il a été
// renseigné (sortie du moteur de recherche), sinon DisplayText.
func Text(e model.Entry) string {
	if e.RawText != "" {
		return e.RawText
	}
	return e.DisplayText
}

// MatchCount compte les entrées issues d'une occurrence de recherche.
func (t Transcript) MatchCount() int {
	n := 0
	for _, e := range t.Entries {
		if e.IsSearchMatch() {
			n++
		}
	}
	return n
}

// Plain retourne le transcript au format lisible : une cue par ligne,
// précédée de son timestamp. Les occurrences de recherche sont encadrées
// de chevrons pour rester visibles en texte brut.
func (t Transcript) Plain() string {
	if len(t.Entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range t.Entries {
		b.WriteString(e.StartSeconds().TimestampHHMMSS())
		b.WriteString("  ")
		if e.IsSearchMatch() {
			b.WriteString(">> ")
			b.WriteString(Text(e))
			b.WriteString(" <<")
		} else {
			b.WriteString(Text(e))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SaveAs écrit le transcript dans le fichier `path` selon le format donné.
// Seul le format txt est géré ici ; le markdown passe par internal/render.
func (t Transcript) SaveAs(path string, format model.Format) error {
	switch format {
	case model.FormatTXT:
		data := []byte(t.Plain())
		if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
			return fmt.Errorf("échec écriture fichier %s : %w", path, err)
		}
		return nil
	case model.FormatJSON3:
		return errors.New("SaveAs format json3 non supporté depuis Transcript (conserver le fichier source)")
	default:
		return fmt.Errorf("format inconnu dans SaveAs: %s", format)
	}
}

// Filename compose un nom de fichier sûr pour ce transcript.
func (t Transcript) Filename(format model.Format) (string, error) {
	base := strings.TrimSpace(t.Title)
	base = fsutil.SanitizeFilename(base)
	if format.IsTextual() {
		return base + format.Extension(), nil
	}
	return "", fmt.Errorf("format inconnu dans Filename: %q", format)
}
