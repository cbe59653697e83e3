package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/patrickprogramme/subsearch/internal/config"
	"github.com/patrickprogramme/subsearch/internal/render"
	"github.com/patrickprogramme/subsearch/internal/search"
	"github.com/patrickprogramme/subsearch/internal/subtitles"
	"github.com/patrickprogramme/subsearch/internal/ui"
	"github.com/patrickprogramme/subsearch/pkg/model"
)

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	Transcript string // chemin direct vers un fichier json3
	Term       string // terme de recherche (mode non interactif)
	Regex      bool   // interpréter le terme comme une expression régulière
}

// App orchestre les différentes dépendances (UI, moteur de recherche, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	renderer *render.Renderer
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, renderer *render.Renderer) *App {
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		renderer: renderer,
	}
}

// Run exécute le flux principal : chargement du transcript, construction de
// l'index, puis boucle de recherche (ou passe unique si -term est fourni).
func (a *App) Run(ctx context.Context) error {
	// validation statique de la config
	warnings, err := a.cfg.Validate()
	if err != nil {
		return fmt.Errorf("config invalide : %w", err)
	}
	for _, w := range warnings {
		a.ui.PrintError(ctx, "warning: "+w)
	}

	// Résolution du transcript : priorité flag > sélection dans transcript_dir
	path := a.flags.Transcript
	if path == "" {
		files, err := FindTranscriptFiles(a.cfg.TranscriptDir)
		if err != nil {
			return fmt.Errorf("listing des transcripts : %w", err)
		}
		path, err = a.ui.SelectTranscript(ctx, files)
		if err != nil {
			return fmt.Errorf("sélection du transcript : %w", err)
		}
	}

	tr, err := subtitles.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("chargement du transcript : %w", err)
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Transcript chargé : %q (%d cues)", tr.Title, len(tr.Entries)))

	// index construit une seule fois ; toutes les recherches partent de là
	searcher := search.New(tr.Entries)

	// mode non interactif : une passe et on sort
	if a.flags.Term != "" {
		results, err := a.runSearch(ctx, searcher, a.flags.Term)
		if err != nil {
			return err
		}
		resTr := tr.WithEntries(results)
		a.showResults(ctx, resTr)
		return a.deliverResults(ctx, resTr, a.flags.Term)
	}

	// boucle interactive ; la suggestion presse-papier ne vaut qu'au premier tour
	suggestion := ""
	if a.cfg.TermFromClipboard {
		suggestion = clipboardSuggestion()
	}
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		term, err := a.ui.GetSearchTerm(ctx, suggestion)
		suggestion = ""
		if err != nil {
			return fmt.Errorf("get term: %w", err)
		}
		if term == "" {
			return nil
		}

		results, err := a.runSearch(ctx, searcher, term)
		if err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("recherche impossible : %v", err))
			continue
		}

		resTr := tr.WithEntries(results)
		a.showResults(ctx, resTr)
		if err := a.deliverResults(ctx, resTr, term); err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("sauvegarde des résultats : %v", err))
		}
	}
}

// runSearch exécute la recherche selon le mode configuré. En mode motif, un
// terme mal formé n'est pas fatal : on retombe sur la recherche texte brut.
func (a *App) runSearch(ctx context.Context, s *search.Searcher, term string) ([]model.Entry, error) {
	if a.cfg.LiteralSearch && !a.flags.Regex {
		return s.SearchLiteral(term)
	}

	results, err := s.Search(term)
	if errors.Is(err, search.ErrBadPattern) {
		a.ui.PrintError(ctx, fmt.Sprintf("motif invalide (%v), recherche en texte brut", err))
		return s.SearchLiteral(term)
	}
	return results, err
}
