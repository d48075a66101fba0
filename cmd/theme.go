package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/prefstore"
	"github.com/Zachkp/folio/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [show|toggle]",
	Short:     "Shows or toggles the stored display theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"show", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		action := "show"
		if len(args) == 1 {
			action = args[0]
		}
		store, err := prefstore.Open(appConfig.PrefsDB)
		if err != nil {
			return fmt.Errorf("open preferences: %w", err)
		}
		defer store.Close()
		return runTheme(cmd.OutOrStdout(), store, action)
	},
}

func runTheme(w io.Writer, store theme.Store, action string) error {
	c := theme.NewController(store, nil)
	switch action {
	case "show":
	case "toggle":
		c.Toggle()
	default:
		return fmt.Errorf("unknown theme action %q", action)
	}
	_, err := fmt.Fprintln(w, c.Preference())
	return err
}
