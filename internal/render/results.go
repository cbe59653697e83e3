package render

import (
	"fmt"
	"time"

	"github.com/patrickprogramme/subsearch/internal/fsutil"
	"github.com/patrickprogramme/subsearch/internal/subtitles"
)

// ResultLine : une ligne du rendu, occurrence ou segment ordinaire.
type ResultLine struct {
	Timestamp string
	Text      string
	IsMatch   bool
}

// ResultsData contient les données "brutes" pour le rendu des résultats.
type ResultsData struct {
	Title      string
	Term       string
	DateStr    string // formaté YYYY-MM-DD
	MatchCount int
	Lines      []ResultLine
	Filename   string
}

// NewResultsData construit ResultsData à partir d'un transcript re-découpé.
// showMusic=false filtre les cues non parlées ([Music], ...) des lignes.
func NewResultsData(tr subtitles.Transcript, term string, showMusic bool) ResultsData {
	now := time.Now()
	dateStr := now.Format("2006-01-02")

	lines := make([]ResultLine, 0, len(tr.Entries))
	for _, e := range tr.Entries {
		if e.IsMusic && !showMusic {
			continue
		}
		lines = append(lines, ResultLine{
			Timestamp: e.StartSeconds().TimestampHHMMSS(),
			Text:      subtitles.Text(e),
			IsMatch:   e.IsSearchMatch(),
		})
	}

	base := fsutil.SanitizeFilename(fmt.Sprintf("%s - recherche %s", tr.Title, term))
	filename := fmt.Sprintf("%s %s", base, dateStr)

	return ResultsData{
		Title:      fsutil.CapitalizeFirst(tr.Title),
		Term:       term,
		DateStr:    dateStr,
		MatchCount: tr.MatchCount(),
		Lines:      lines,
		Filename:   filename,
	}
}
