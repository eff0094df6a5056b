package main

import (
	"fmt"

	"github.com/jonathan/talenthub/internal/config"
	"github.com/jonathan/talenthub/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the screening, posting and analytics endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	serverConfig, err := config.NewServerConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		serverConfig.Port = servePort
	}

	cfg := server.Config{
		Port:        serverConfig.Port,
		DatabaseURL: serverConfig.DatabaseURL,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
