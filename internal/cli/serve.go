package cli

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"appstarter/internal/config"
	"appstarter/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(func(s *config.Settings) {
				if port != "" {
					s.Port = ":" + strings.TrimPrefix(port, ":")
				}
			})
			if err != nil {
				return err
			}
			defer app.Close()

			r := gin.Default()
			wire.RegisterRoutes(r, app)
			log.Printf("[INFO] Listening on %s", app.Settings.Port)
			return r.Run(app.Settings.Port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (overrides PORT)")
	return cmd
}
