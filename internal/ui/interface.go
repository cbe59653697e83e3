package ui

import "context"

type Interface interface {
	// SelectTranscript propose les fichiers trouvés et retourne le chemin
	// choisi (sélection par numéro, ou chemin saisi directement).
	SelectTranscript(ctx context.Context, paths []string) (string, error)

	// GetSearchTerm demande un terme de recherche. suggestion (souvent le
	// contenu du presse-papier) est reprise si l'utilisateur valide à vide ;
	// sans suggestion, une entrée vide signifie "terminer" et retourne "".
	GetSearchTerm(ctx context.Context, suggestion string) (string, error)

	// AskYesNo pose une question fermée (o/n).
	AskYesNo(ctx context.Context, question string) (bool, error)

	// ShowResults affiche les lignes de résultat, paginées à maxLines.
	ShowResults(ctx context.Context, lines []string, maxLines int)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// WaitForExit bloque jusqu'à ce qu'un signal d'annulation soit reçu via ctx (Ctrl+C).
	WaitForExit(ctx context.Context) error
}
