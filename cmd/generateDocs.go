/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"ordergen/constants"
)

func newGenerateDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generateDocs [dir]",
		Short: "Generate and write CLI tool docs",
		Long:  `Generate and write CLI tool docs as Markdown, one file per command.`,
		Args:  invalidArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := constants.DefaultDocsDir
			if len(args) == 1 {
				dir = args[0]
			}
			if err := GenerateDocs(cmd.Root(), dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Documentation written to %s\n", dir)
			return nil
		},
	}
}

// GenerateDocs writes the Markdown docs for root into dir, creating it if needed
func GenerateDocs(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := doc.GenMarkdownTree(root, dir); err != nil {
		return fmt.Errorf("failed to generate documentation: %w", err)
	}
	return nil
}
