package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jdCmd = &cobra.Command{
	Use:   "jd",
	Short: "Inspect structured job descriptions produced by extraction",
}

var jdListCmd = &cobra.Command{
	Use:   "list",
	Short: "List structured job descriptions",
	Args:  cobra.NoArgs,
	RunE:  runJDList,
}

var jdDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a structured job description",
	Args:  cobra.ExactArgs(1),
	RunE:  runJDDelete,
}

var jdJSON bool

func init() {
	jdListCmd.Flags().BoolVar(&jdJSON, "json", false, "Print job descriptions as JSON")

	jdCmd.AddCommand(jdListCmd, jdDeleteCmd)
	rootCmd.AddCommand(jdCmd)
}

func runJDList(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	jds, err := client.ListJobDescriptions(cmd.Context())
	if err != nil {
		return err
	}
	if jdJSON {
		return writeJSON(cmd.OutOrStdout(), jds)
	}
	newPrinter(cmd).PrintJobDescriptions(jds)
	return nil
}

func runJDDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	if err := client.DeleteJobDescription(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted job description %d\n", id)
	return nil
}
