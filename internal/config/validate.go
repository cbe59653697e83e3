package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/patrickprogramme/subsearch/pkg/model"
)

// Validate vérifie de manière statique les chemins et le format de sortie.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) Validate() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	// le format de résultat doit être connu et textuel
	format, ferr := model.ParseFormat(c.ResultFormat)
	if ferr != nil {
		return warnings, fmt.Errorf("result_format invalide : %w", ferr)
	}
	if !format.IsTextual() {
		return warnings, fmt.Errorf("result_format %q n'est pas un format de sortie textuel", c.ResultFormat)
	}

	// transcript_dir : absent n'est pas fatal (un chemin explicite peut être
	// passé en flag), mais on prévient
	if p := strings.TrimSpace(c.TranscriptDir); p != "" && p != "." {
		if st, serr := os.Stat(p); serr != nil {
			if os.IsNotExist(serr) {
				warnings = append(warnings, fmt.Sprintf("le dossier de transcripts n'existe pas : %s", p))
			} else {
				return warnings, fmt.Errorf("impossible d'accéder au dossier de transcripts %s : %w", p, serr)
			}
		} else if !st.IsDir() {
			return warnings, fmt.Errorf("transcript_dir n'est pas un répertoire : %s", p)
		}
	}

	// output_dir : doit être un répertoire s'il existe déjà
	if p := strings.TrimSpace(c.OutputDir); p != "" && p != "." {
		if st, serr := os.Stat(p); serr == nil && !st.IsDir() {
			return warnings, fmt.Errorf("output_dir n'est pas un répertoire : %s", p)
		}
	}

	return warnings, nil
}
