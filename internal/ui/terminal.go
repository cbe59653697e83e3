package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

func (t *terminalUI) SelectTranscript(ctx context.Context, paths []string) (string, error) {
	if len(paths) == 0 {
		// aucun fichier trouvé : demander un chemin directement
		for {
			fmt.Print("Chemin du fichier de sous-titres (json3) : ")
			input, err := t.reader.ReadString('\n')
			if err != nil {
				return "", fmt.Errorf("lecture stdin: %w", err)
			}
			path := strings.TrimSpace(input)
			if path != "" {
				return path, nil
			}
			fmt.Println("❌ Chemin vide. Essayez à nouveau.")
		}
	}

	fmt.Println("Transcripts disponibles :")
	for i, p := range paths {
		fmt.Printf("  %d) %s\n", i+1, filepath.Base(p))
	}
	for {
		fmt.Print("Numéro du transcript (ou chemin direct) : ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
		choice := strings.TrimSpace(input)
		if choice == "" {
			continue
		}
		if n, err := strconv.Atoi(choice); err == nil {
			if n >= 1 && n <= len(paths) {
				return paths[n-1], nil
			}
			fmt.Printf("❌ Numéro hors limite (1-%d).\n", len(paths))
			continue
		}
		// pas un numéro : traité comme un chemin
		return choice, nil
	}
}

func (t *terminalUI) GetSearchTerm(ctx context.Context, suggestion string) (string, error) {
	if suggestion != "" {
		fmt.Printf("Terme de recherche [Entrée = %q] : ", suggestion)
	} else {
		fmt.Print("Terme de recherche (vide pour terminer) : ")
	}
	input, err := t.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("lecture stdin: %w", err)
	}
	term := strings.TrimSpace(input)
	if term == "" && suggestion != "" {
		return suggestion, nil
	}
	return term, nil
}

func (t *terminalUI) AskYesNo(ctx context.Context, question string) (bool, error) {
	for {
		fmt.Printf("%s [o/n] : ", question)
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("lecture stdin: %w", err)
		}
		switch strings.TrimSpace(strings.ToLower(input)) {
		case "o", "oui", "y", "yes":
			return true, nil
		case "n", "non", "no":
			return false, nil
		default:
			fmt.Println("Réponse non reconnue.")
		}
	}
}

func (t *terminalUI) ShowResults(ctx context.Context, lines []string, maxLines int) {
	fmt.Println("────────────────────────")
	shown := len(lines)
	if maxLines > 0 && shown > maxLines {
		shown = maxLines
	}
	for _, line := range lines[:shown] {
		fmt.Println(line)
	}
	if rest := len(lines) - shown; rest > 0 {
		fmt.Printf("... (%d lignes supplémentaires, voir le fichier sauvegardé)\n", rest)
	}
	fmt.Println("────────────────────────")
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}

func (t *terminalUI) WaitForExit(ctx context.Context) error {
	fmt.Println("\n\nAppuyez sur Ctrl+C pour quitter.")

	// Prépare le canal pour les signaux d'interruption
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done(): // Context annulé ailleurs
		return ctx.Err()
	case <-sigCh: // Reçu Ctrl+C (SIGINT ou SIGTERM)
		return nil
	}
}
