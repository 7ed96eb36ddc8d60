package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/applyday/internal/schemas"
	"github.com/jonathan/applyday/internal/types"
	"github.com/spf13/cobra"
)

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Get, create, update or delete a single application",
}

var appGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one application",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppGet,
}

var appCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an application",
	Args:  cobra.NoArgs,
	RunE:  runAppCreate,
}

var appUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an application; unset flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppUpdate,
}

var appDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppDelete,
}

// appFields are the editable application flags shared by create and update.
type appFields struct {
	company         string
	title           string
	status          string
	notes           string
	descriptionFile string
}

var (
	createFields   appFields
	updateFields   appFields
	createFromFile string
	appJSON        bool
)

func (f *appFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.company, "company", "", "Company name")
	cmd.Flags().StringVar(&f.title, "title", "", "Job title")
	cmd.Flags().StringVar(&f.status, "status", "", "Status (prepared, applied, interviewed, offered, rejected)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Stage notes")
	cmd.Flags().StringVar(&f.descriptionFile, "description-file", "", "File containing the job description")
}

// apply copies every set flag onto req.
func (f *appFields) apply(cmd *cobra.Command, req *types.ApplicationRequest) error {
	flags := cmd.Flags()
	if flags.Changed("company") {
		req.Company = strings.TrimSpace(f.company)
	}
	if flags.Changed("title") {
		req.JobTitle = strings.TrimSpace(f.title)
	}
	if flags.Changed("status") {
		req.Status = types.Status(strings.ToLower(strings.TrimSpace(f.status)))
	}
	if flags.Changed("notes") {
		req.StageNotes = f.notes
	}
	if flags.Changed("description-file") {
		data, err := os.ReadFile(f.descriptionFile)
		if err != nil {
			return fmt.Errorf("failed to read description file: %w", err)
		}
		req.JobDescription = string(data)
	}
	return nil
}

func init() {
	createFields.register(appCreateCmd)
	appCreateCmd.Flags().StringVarP(&createFromFile, "file", "f", "", "JSON application record; flags override its fields")
	updateFields.register(appUpdateCmd)
	appCmd.PersistentFlags().BoolVar(&appJSON, "json", false, "Print the application as JSON")

	appCmd.AddCommand(appGetCmd, appCreateCmd, appUpdateCmd, appDeleteCmd)
	rootCmd.AddCommand(appCmd)
}

func printApplication(cmd *cobra.Command, app *types.Application) error {
	if appJSON {
		return writeJSON(cmd.OutOrStdout(), app)
	}
	newPrinter(cmd).PrintApplication(app)
	return nil
}

func runAppGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	app, err := client.GetApplication(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printApplication(cmd, app)
}

func runAppCreate(cmd *cobra.Command, _ []string) error {
	var req types.ApplicationRequest
	if createFromFile != "" {
		data, err := os.ReadFile(createFromFile)
		if err != nil {
			return fmt.Errorf("failed to read application file: %w", err)
		}
		if err := schemas.ValidateApplication(data); err != nil {
			return fmt.Errorf("invalid application file %s: %w", createFromFile, err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("failed to parse application file: %w", err)
		}
	}
	if err := createFields.apply(cmd, &req); err != nil {
		return err
	}
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid application: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	app, err := client.CreateApplication(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printApplication(cmd, app)
}

// runAppUpdate fetches the current record first because the backend PUT is a
// full replacement.
func runAppUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	current, err := client.GetApplication(cmd.Context(), id)
	if err != nil {
		return err
	}
	req := types.ApplicationRequest{
		Company:        current.Company,
		JobTitle:       current.JobTitle,
		JobDescription: current.JobDescription,
		Status:         current.Status,
		StageNotes:     current.StageNotes,
	}
	if err := updateFields.apply(cmd, &req); err != nil {
		return err
	}
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid application: %w", err)
	}

	app, err := client.UpdateApplication(cmd.Context(), id, req)
	if err != nil {
		return err
	}
	return printApplication(cmd, app)
}

func runAppDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.DeleteApplication(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted application %d\n", id)
	return nil
}
