package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vytor/leetrecall/internal/models"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

// renderProblems prints the problem table. The progress column shows the
// review stage out of maxStage.
func renderProblems(out io.Writer, problems []models.Problem, maxStage int) error {
	w := newTable(out)
	fmt.Fprintln(w, "ID\tTitle\tDiff\tTopic\tProgress\tNext Review\tBest")
	fmt.Fprintln(w, "--\t-----\t----\t-----\t--------\t-----------\t----")
	for _, p := range problems {
		next := p.NextReview.String()
		if p.Status == models.Mastered {
			next = "Mastered"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Difficulty.Short(), p.Topic.Short(), p.ProgressBar(maxStage), next, p.BestTime())
	}
	return w.Flush()
}

func renderStats(out io.Writer, stats models.Stats) error {
	w := newTable(out)
	fmt.Fprintf(w, "Total\t%d\n", stats.Total)
	fmt.Fprintf(w, "Due today\t%d\n", stats.Due)
	fmt.Fprintf(w, "Mastered\t%d\n", stats.Mastered)
	return w.Flush()
}
