package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/syllabus/internal/catalog"
	"github.com/pdiddy/syllabus/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated documents",
	Long: `History lists the builds recorded in the catalog, newest first, with
the course title, instructor, topic count and schedule size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		store, err := catalog.Open(types.CatalogConfig{CatalogDir: viper.GetString("catalog_dir")})
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer store.Close()

		entries, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No builds recorded.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CREATED\tTITLE\tINSTRUCTOR\tTOPICS\tROWS\tPATH")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
				e.CreatedAt.Local().Format(time.DateTime), e.Title, e.Instructor, e.Topics, e.ScheduleRows, e.Path)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of builds to list")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(historyCmd)
}
