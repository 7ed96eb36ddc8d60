package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage uploaded resumes",
}

var resumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resumes",
	Args:  cobra.NoArgs,
	RunE:  runResumeList,
}

var resumeUploadCmd = &cobra.Command{
	Use:   "upload <file.pdf>",
	Short: "Upload a PDF resume; the backend extracts its text",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeUpload,
}

var resumeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeDelete,
}

var resumeName string

func init() {
	resumeUploadCmd.Flags().StringVar(&resumeName, "name", "", "Display name (default: file name without extension)")

	resumeCmd.AddCommand(resumeListCmd, resumeUploadCmd, resumeDeleteCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeList(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	resumes, err := client.ListResumes(cmd.Context())
	if err != nil {
		return err
	}
	newPrinter(cmd).PrintResumes(resumes)
	return nil
}

func runResumeUpload(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("resume must be a PDF file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open resume: %w", err)
	}
	defer func() { _ = f.Close() }()

	name := resumeName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	resume, err := client.UploadResume(cmd.Context(), name, filepath.Base(path), f)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded resume %d (%s), %d characters extracted\n",
		resume.ID, resume.Name, len([]rune(resume.Text)))
	return nil
}

func runResumeDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	if err := client.DeleteResume(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted resume %d\n", id)
	return nil
}
