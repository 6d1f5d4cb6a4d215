package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/services"
)

const notFoundMessage = "Problem not found."

// titleArg joins the arguments so unquoted multi-word titles work.
func titleArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func newAddCmd() *cobra.Command {
	var difficulty, topic, url string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Log a newly solved problem",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			title := titleArg(args)
			added, err := app.Problems.Add(cmd.Context(), title, models.Difficulty(difficulty), models.Topic(topic), url)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "'%s' is already logged.\n", title)
				return nil
			}
			p, err := app.Problems.Find(cmd.Context(), title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added '%s' (next review: %s)\n", title, p.NextReview)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(models.Medium), "Easy, Medium or Hard")
	cmd.Flags().StringVarP(&topic, "topic", "t", string(models.UnknownTopic), "topic, e.g. \"Arrays & Hashing\"")
	cmd.Flags().StringVarP(&url, "url", "u", "", "link to the problem")
	return cmd
}

func newDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "Show problems due for review today",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			due, err := app.Problems.DueToday(cmd.Context())
			if err != nil {
				return err
			}
			if len(due) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No problems due today!")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d problems due today:\n\n", len(due))
			return renderProblems(cmd.OutOrStdout(), due, app.Intervals.MaxStage())
		}),
	}
}

func newListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every logged problem, newest first",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			all, err := app.Problems.AllRecords(cmd.Context())
			if err != nil {
				return err
			}
			return renderProblems(cmd.OutOrStdout(), services.Search(all, search), app.Intervals.MaxStage())
		}),
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by title or topic")
	return cmd
}

func newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <title>",
		Short: "Mark a due problem as reviewed",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			result, err := app.Problems.MarkReviewed(cmd.Context(), titleArg(args))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		}),
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <title>",
		Short: "Send a problem back to the first stage",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			result, err := app.Problems.ResetProblem(cmd.Context(), titleArg(args))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		}),
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			stats, err := app.Problems.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return renderStats(cmd.OutOrStdout(), stats)
		}),
	}
}

func newSampleCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Pick random problems for a mock interview",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			sample, err := app.Problems.RandomSample(cmd.Context(), n)
			if err != nil {
				return err
			}
			if len(sample) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to sample yet.")
				return nil
			}
			return renderProblems(cmd.OutOrStdout(), sample, app.Intervals.MaxStage())
		}),
	}

	cmd.Flags().IntVarP(&n, "count", "n", 3, "number of problems")
	return cmd
}

func newBestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best <title> <seconds|mm:ss>",
		Short: "Record a solve time, kept only if it beats the best",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			title := titleArg(args[:len(args)-1])
			seconds, err := parseDuration(args[len(args)-1])
			if err != nil {
				return err
			}

			result, err := app.Problems.UpdateBestTime(cmd.Context(), title, seconds)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case !result.Found:
				fmt.Fprintln(out, notFoundMessage)
			case result.Updated:
				fmt.Fprintf(out, "New best time for %s: %s\n", title, models.FormatDuration(result.Seconds))
			default:
				fmt.Fprintf(out, "Best time for %s stays %s\n", title, models.FormatDuration(result.Seconds))
			}
			return nil
		}),
	}
}

// parseDuration accepts whole seconds or mm:ss.
func parseDuration(s string) (int, error) {
	if mm, ss, ok := strings.Cut(s, ":"); ok {
		m, errM := strconv.Atoi(mm)
		sec, errS := strconv.Atoi(ss)
		if errM != nil || errS != nil || m < 0 || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("invalid time %q, want seconds or mm:ss", s)
		}
		return m*60 + sec, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid time %q, want seconds or mm:ss", s)
	}
	return n, nil
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <title>",
		Short: "Open the problem page in a browser",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			p, err := app.Problems.Find(cmd.Context(), titleArg(args))
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), notFoundMessage)
				return nil
			}
			return app.Browser.Open(p.URL)
		}),
	}
}
