package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/syllabus/internal/docx"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.docx>",
	Short: "Print the outline of a generated document",
	Long: `Inspect reads a .docx file and prints its headings, paragraphs, bullets
and table rows as Markdown-like text. With --spacing each paragraph is
followed by its before/after spacing and each row by its after spacing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := docx.Open(args[0])
		if err != nil {
			return err
		}
		spacing, _ := cmd.Flags().GetBool("spacing")
		return printOutline(cmd.OutOrStdout(), doc, spacing)
	},
}

func init() {
	inspectCmd.Flags().Bool("spacing", false, "show paragraph and row spacing")

	rootCmd.AddCommand(inspectCmd)
}

// printOutline writes one line per paragraph or table row.
func printOutline(w io.Writer, doc *docx.Document, spacing bool) error {
	for _, b := range doc.Blocks() {
		switch el := b.(type) {
		case *docx.Paragraph:
			var line string
			switch level := docx.HeadingLevel(el.Style); {
			case level >= 0:
				line = strings.Repeat("#", level+1) + " " + el.Text
			case el.Style == docx.StyleListBullet:
				line = "- " + el.Text
			default:
				line = el.Text
			}
			if spacing && el.Spacing != nil {
				line += fmt.Sprintf("  [before=%d after=%d]", el.Spacing.Before, el.Spacing.After)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		case *docx.Table:
			for _, row := range el.Rows() {
				line := "| " + strings.Join(row.Cells, " | ") + " |"
				if spacing && row.Properties.SpacingAfter != nil {
					line += fmt.Sprintf("  [after=%d]", *row.Properties.SpacingAfter)
				}
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
