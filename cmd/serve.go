package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/web"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			appConfig.Port = servePort
		}
		gin.SetMode(appConfig.GinMode)

		site, err := loadSite()
		if err != nil {
			return err
		}
		var m *metrics.Metrics
		if appConfig.Metrics {
			m = metrics.New()
		}
		srv, err := web.NewServer(appConfig, site, m)
		if err != nil {
			return err
		}
		return srv.Run()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides PORT)")
}
