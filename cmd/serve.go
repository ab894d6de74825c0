package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"blurbgen/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the description generator HTTP server",
	Long: `Starts an HTTP server with the product form (GET /), description
generation (POST /generate) and example inputs (GET /samples).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		defer appInstance.Close()

		cfg := appInstance.Config
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		router := apihandlers.NewRouter(appInstance)

		listenAddr := cfg.ListenAddr()
		log.Infof("Starting blurbgen server on http://%s (backend: %s)", listenAddr, appInstance.Generator.Name())

		// router.Run blocks unless an error occurs
		if err := router.Run(listenAddr); err != nil {
			log.Errorf("Failed to run server: %v", err)
			return fmt.Errorf("failed to run server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "0.0.0.0", "Address to listen on (overrides server.addr)")
	serveCmd.Flags().StringVar(&servePort, "port", "5000", "Port to listen on (overrides server.port)")
}
