package main

import (
	"fmt"
	"log"

	"github.com/jonathan/applyday/internal/ingestion"
	"github.com/jonathan/applyday/internal/types"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Manage raw job-description extracts",
}

var extractListCmd = &cobra.Command{
	Use:   "list",
	Short: "List extracts",
	Args:  cobra.NoArgs,
	RunE:  runExtractList,
}

var extractAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a job description from text, a file or a URL",
	Long: `Add a job description extract. Provide exactly one of --text, --file or --url.
Pages fetched from --url are cleaned to their main text; with --browser, pages whose
static HTML yields too little text are rendered in headless Chrome.`,
	Args: cobra.NoArgs,
	RunE: runExtractAdd,
}

var extractProcessCmd = &cobra.Command{
	Use:   "process",
	Short: "Run structured extraction over extracts created in a date window",
	Args:  cobra.NoArgs,
	RunE:  runExtractProcess,
}

var extractUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace the text of an extract",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtractUpdate,
}

var extractDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an extract",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtractDelete,
}

var (
	extractText    string
	extractFile    string
	extractURL     string
	extractBrowser bool
	extractMeta    bool
	processStart   string
	processEnd     string
	updateText     string
	updateFile     string
)

func init() {
	extractAddCmd.Flags().StringVarP(&extractText, "text", "t", "", "Job description text")
	extractAddCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to a text file containing the job description")
	extractAddCmd.Flags().StringVarP(&extractURL, "url", "u", "", "URL of a job posting")
	extractAddCmd.Flags().BoolVar(&extractBrowser, "browser", false, "Render JavaScript pages with headless Chrome")
	extractAddCmd.Flags().BoolVar(&extractMeta, "meta", false, "Print ingestion metadata as JSON")
	extractAddCmd.MarkFlagsMutuallyExclusive("text", "file", "url")

	extractProcessCmd.Flags().StringVar(&processStart, "start", "", "Window start (ISO-8601)")
	extractProcessCmd.Flags().StringVar(&processEnd, "end", "", "Window end (ISO-8601)")
	_ = extractProcessCmd.MarkFlagRequired("start")
	_ = extractProcessCmd.MarkFlagRequired("end")

	extractUpdateCmd.Flags().StringVarP(&updateText, "text", "t", "", "New job description text")
	extractUpdateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "File containing the new text")
	extractUpdateCmd.MarkFlagsMutuallyExclusive("text", "file")
	extractUpdateCmd.MarkFlagsOneRequired("text", "file")

	extractCmd.AddCommand(extractListCmd, extractAddCmd, extractUpdateCmd, extractProcessCmd, extractDeleteCmd)
	rootCmd.AddCommand(extractCmd)
}

func runExtractList(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	extracts, err := client.ListExtracts(cmd.Context())
	if err != nil {
		return err
	}
	newPrinter(cmd).PrintExtracts(extracts)
	return nil
}

func runExtractAdd(cmd *cobra.Command, _ []string) error {
	var (
		text string
		meta *ingestion.Metadata
		err  error
	)

	switch {
	case extractFile != "":
		text, meta, err = ingestion.FromFile(extractFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	case extractURL != "":
		text, meta, err = ingestion.FromURL(cmd.Context(), extractURL, extractBrowser || settings.UseBrowser, settings.Verbose)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	case extractText != "":
		text, meta, err = ingestion.FromText(extractText)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("one of --text, --file or --url must be provided")
	}

	if settings.Verbose {
		log.Printf("[extract] source=%s chars=%d hash=%s", meta.Source, meta.Chars, meta.Hash)
	}

	req := types.ExtractRequest{Text: text}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid extract: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	extract, err := client.CreateExtract(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created extract %d (%d characters)\n", extract.ID, meta.Chars)
	if meta.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", meta.Title)
	}
	if extractMeta {
		data, err := meta.ToJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	}
	return nil
}

func runExtractProcess(cmd *cobra.Command, _ []string) error {
	req := types.ProcessExtractRequest{Start: processStart, End: processEnd}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid window: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	msg, err := client.ProcessExtracts(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func runExtractUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var text string
	if updateFile != "" {
		text, _, err = ingestion.FromFile(updateFile)
	} else {
		text, _, err = ingestion.FromText(updateText)
	}
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	extract, err := client.UpdateExtractText(cmd.Context(), id, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated extract %d (%d characters)\n", extract.ID, len([]rune(extract.Text)))
	return nil
}

func runExtractDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	if err := client.DeleteExtract(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted extract %d\n", id)
	return nil
}
