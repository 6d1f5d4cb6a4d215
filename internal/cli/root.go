package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vytor/leetrecall/internal/logger"
)

type appKey struct{}

// NewRootCmd builds the recall command tree. factory is called once before
// any subcommand runs.
func NewRootCmd(factory AppFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "recall",
		Short: "Spaced repetition tracker for coding interview problems",
		Long: `Recall keeps a log of solved interview problems and schedules each one
for review on a fixed interval ladder until it is mastered.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			app, err := factory(ctx)
			if err != nil {
				return err
			}
			ctx = logger.NewContext(ctx, logger.Default().WithPrefix("recall"))
			cmd.SetContext(context.WithValue(ctx, appKey{}, app))
			return nil
		},
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			return cmd.Help()
		}),
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newAddCmd(),
		newDueCmd(),
		newListCmd(),
		newReviewCmd(),
		newResetCmd(),
		newStatsCmd(),
		newSampleCmd(),
		newBestCmd(),
		newOpenCmd(),
		newThemeCmd(),
		newConfigCmd(),
		newServeCmd(),
	)
	return root
}

func appFrom(cmd *cobra.Command) *App {
	return cmd.Context().Value(appKey{}).(*App)
}

// run adapts a command body to cobra and closes the App afterwards, also
// when the body fails.
func run(fn func(cmd *cobra.Command, app *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		err := fn(cmd, app, args)
		if cerr := app.Close(); err == nil {
			err = cerr
		}
		return err
	}
}

// Execute runs the CLI with configuration from the environment.
func Execute() {
	if err := NewRootCmd(DefaultFactory).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
