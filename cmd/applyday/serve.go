package main

import (
	"fmt"
	"log"

	"github.com/jonathan/applyday/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the view server",
	Long: `Start an HTTP server that serves processed application views, filter options,
stats, xlsx exports and rendered reports, and proxies edits to the backend.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config, $PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := settings.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:    port,
		Backend: client,
		Verbose: settings.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Printf("[serve] proxying backend %s", client.BaseURL())
	return srv.Start()
}
