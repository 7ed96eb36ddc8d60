package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jonathan/applyday/internal/backend"
	"github.com/jonathan/applyday/internal/config"
	"github.com/jonathan/applyday/internal/observability"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "applyday",
	Short: "ApplyDay job application tracker client",
	Long: `applyday lists, filters, exports and edits job applications stored in an ApplyDay backend,
manages resumes and job-description extracts, and shows analytics reports.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

var (
	configPath     string
	backendURL     string
	timeoutSeconds int
	verbose        bool
)

// settings is the merged configuration for the running command.
var settings config.Config

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file (default $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend-url", "", "Backend base URL (default $"+config.EnvBackendURL+" or "+config.DefaultBackendURL+")")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "Backend request timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

// loadSettings merges flags over the config file over environment defaults.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()

	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if cmd.Flags().Changed("backend-url") {
		cfg.BackendURL = backendURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = timeoutSeconds
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	settings = cfg
	return nil
}

func newClient() (*backend.Client, error) {
	client, err := backend.New(settings.BackendURL, &backend.Options{
		Timeout: settings.Timeout(),
		Verbose: settings.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	return client, nil
}

func newPrinter(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.OutOrStdout())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}
