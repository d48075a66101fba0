package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/content"
	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/profile"
	"github.com/Zachkp/folio/internal/web"
)

var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio site",
	Long: `folio serves a single-page portfolio with a project detail page per
catalog entry, or exports the same pages as static HTML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, exportCmd, themeCmd)
}

// loadSite reads the embedded profile and project catalog.
func loadSite() (*web.Site, error) {
	p, err := profile.Load(content.FS, content.ProfileFile)
	if err != nil {
		return nil, err
	}
	c, err := catalog.Load(content.FS, content.ProjectsDir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return web.NewSite(p, c), nil
}
