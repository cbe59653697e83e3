package subtitles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNoCues : le fichier a été parsé mais ne contient aucune cue exploitable.
var ErrNoCues = errors.New("aucune cue dans la piste de sous-titres")

// reLangSuffix : suffixe "(en)" / "(fr-FR)" que SubScribe ajoute au nom de
// fichier, ex: "The simplest tech stack (en).json".
var reLangSuffix = regexp.MustCompile(`\s*\(([A-Za-z-]+)\)$`)

// LoadFromFile lit un fichier json3 depuis le disque et construit le
// Transcript prêt à être indexé. Le titre (et la langue si présente) sont
// dérivés du nom de fichier.
func LoadFromFile(path string) (Transcript, error) {
	var empty Transcript

	data, err := os.ReadFile(path)
	if err != nil {
		return empty, fmt.Errorf("lecture du fichier de sous-titres %s : %w", path, err)
	}

	raw, err := ParseJSON3Bytes(data)
	if err != nil {
		return empty, fmt.Errorf("parse json3 %s : %w", path, err)
	}

	entries := CuesFromRaw(raw)
	if len(entries) == 0 {
		return empty, fmt.Errorf("%s : %w", path, ErrNoCues)
	}

	title, lang := titleFromFilename(path)
	return NewTranscript(title, lang, entries), nil
}

// titleFromFilename dérive (titre, langue) du nom de fichier :
// extension retirée, suffixe "(lang)" extrait s'il est présent.
func titleFromFilename(path string) (string, string) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSpace(base)

	lang := ""
	if m := reLangSuffix.FindStringSubmatch(base); m != nil {
		lang = m[1]
		base = strings.TrimSpace(reLangSuffix.ReplaceAllString(base, ""))
	}
	if base == "" {
		base = "transcript"
	}
	return base, lang
}
