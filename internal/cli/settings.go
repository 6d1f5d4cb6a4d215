package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or change the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			if len(args) == 1 {
				if err := app.Settings.SetTheme(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
				return nil
			}

			theme, ok, err := app.Settings.Theme(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				theme = "default"
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		}),
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or write configuration keys",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			value, ok, err := app.Settings.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, app *App, args []string) error {
			return app.Settings.Set(cmd.Context(), args[0], args[1])
		}),
	})
	return cmd
}
