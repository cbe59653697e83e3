package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/patrickprogramme/subsearch/internal/clipboard"
	"github.com/patrickprogramme/subsearch/internal/fsutil"
	"github.com/patrickprogramme/subsearch/internal/render"
	"github.com/patrickprogramme/subsearch/internal/subtitles"
	"github.com/patrickprogramme/subsearch/pkg/model"
)

// taille maximale d'un contenu de presse-papier proposé comme terme
const maxClipboardTermLen = 64

// FindTranscriptFiles liste les fichiers .json du dossier donné (non récursif),
// triés par nom. Un dossier absent n'est pas une erreur : liste vide.
func FindTranscriptFiles(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// clipboardSuggestion retourne le contenu du presse-papier s'il ressemble à un
// terme de recherche (une seule ligne, court, non vide), sinon "".
func clipboardSuggestion() string {
	clip, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	clip = strings.TrimSpace(clip)
	if clip == "" || strings.ContainsAny(clip, "\r\n") {
		return ""
	}
	if len(clip) > maxClipboardTermLen {
		return ""
	}
	return clip
}

// showResults affiche le transcript re-découpé : une ligne par entrée,
// occurrences encadrées, puis le décompte.
func (a *App) showResults(ctx context.Context, tr subtitles.Transcript) {
	lines := make([]string, 0, len(tr.Entries))
	for _, e := range tr.Entries {
		if e.IsMusic && !a.cfg.ShowMusicCues {
			continue
		}
		line := e.StartSeconds().TimestampHHMMSS() + "  "
		if e.IsSearchMatch() {
			line += ">> " + subtitles.Text(e) + " <<"
		} else {
			line += subtitles.Text(e)
		}
		lines = append(lines, line)
	}

	a.ui.ShowResults(ctx, lines, a.cfg.MaxPreviewLines)
	a.ui.PrintInfo(ctx, fmt.Sprintf("%d occurrence(s) trouvée(s).", tr.MatchCount()))
}

// deliverResults sauvegarde et/ou copie les résultats selon la config.
func (a *App) deliverResults(ctx context.Context, tr subtitles.Transcript, term string) error {
	format, err := model.ParseFormat(a.cfg.ResultFormat)
	if err != nil {
		return err
	}

	// rendu du document de sortie
	data := render.NewResultsData(tr, term, a.cfg.ShowMusicCues)
	var content []byte
	switch format {
	case model.FormatMARKDOWN:
		content, err = a.renderer.Render("search_results.md.tmpl", data)
		if err != nil {
			return fmt.Errorf("render error: %w", err)
		}
	default:
		content = []byte(tr.Plain())
	}

	if a.cfg.CopyToClipboard {
		if err := clipboard.WriteAll(string(content)); err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie presse-papier impossible : %v", err))
		} else {
			a.ui.PrintInfo(ctx, "Résultats copiés dans le presse-papier.")
		}
	}

	save := false
	switch a.cfg.SaveResults {
	case "always":
		save = true
	case "ask":
		save, err = a.ui.AskYesNo(ctx, "Sauvegarder les résultats ?")
		if err != nil {
			return err
		}
	}
	if !save {
		return nil
	}

	if format == model.FormatMARKDOWN {
		outPath, err := fsutil.SaveMarkdownAtomic(a.cfg.OutputDir, data.Filename, content, false)
		if err != nil {
			return fmt.Errorf("cannot save file to disk: %w", err)
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Résultats écrits dans :\n%s", outPath))
		return nil
	}

	filename, err := tr.Filename(format)
	if err != nil {
		return err
	}
	outPath := filepath.Join(a.cfg.OutputDir, filename)
	if err := tr.SaveAs(outPath, format); err != nil {
		return err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Résultats écrits dans :\n%s", outPath))
	return nil
}
