package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/prefstore"
	"github.com/Zachkp/folio/internal/theme"
	"github.com/Zachkp/folio/internal/web"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the portfolio as static HTML",
	Long: `export renders the listing page, one page per project and a 404 page
into the output directory, and copies the static, images and pdf folders
next to them. The initial theme is the one stored with "folio theme".
Run "go generate" first so static/ holds folio.wasm and wasm_exec.js.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}
		dark, err := storedDark(appConfig.PrefsDB)
		if err != nil {
			return err
		}
		return web.Export(site, exportDir, dark, map[string]string{
			"static": appConfig.StaticDir,
			"images": appConfig.ImagesDir,
			"pdf":    appConfig.PDFDir,
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "public", "output directory")
}

func storedDark(path string) (bool, error) {
	store, err := prefstore.Open(path)
	if err != nil {
		return false, fmt.Errorf("open preferences: %w", err)
	}
	defer store.Close()
	return theme.NewController(store, nil).Dark(), nil
}
