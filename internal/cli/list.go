package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

const (
	outputPlain = "plain"
	outputJSON  = "json"
)

func newListCmd() *cobra.Command {
	var f domain.BugFilter
	var page int
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bugs matching a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := getService(cmd)
			if err != nil {
				return err
			}

			mode := strings.ToLower(output)
			if mode != outputPlain && mode != outputJSON {
				return fmt.Errorf("invalid --output: %s", output)
			}
			if cmd.Flags().Changed("page") {
				f.PageIdx = &page
			}

			bugs, err := svc.Query(cmd.Context(), f)
			if err != nil {
				return err
			}

			if mode == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(bugs)
			}
			return writeTable(cmd.OutOrStdout(), bugs)
		},
	}

	cmd.Flags().StringVar(&f.Txt, "txt", "", "case-insensitive pattern matched against titles")
	cmd.Flags().IntVar(&f.MinSeverity, "min-severity", 0, "lowest severity to include (0 = any)")
	cmd.Flags().StringVar(&f.Labels, "label", "", "exact label the bug must carry")
	cmd.Flags().StringVar(&f.SortBy, "sort-by", "", "title|severity|createdAt")
	cmd.Flags().IntVar(&f.SortDir, "sort-dir", 1, "1 ascending, -1 descending")
	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index; omit for all results")
	cmd.Flags().StringVarP(&output, "output", "o", outputPlain, "plain|json")
	return cmd
}

func writeTable(w io.Writer, bugs []domain.Bug) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSEVERITY\tCREATED\tLABELS")
	for _, b := range bugs {
		created := "-"
		if !b.CreatedAt.IsZero() {
			created = b.CreatedAt.UTC().Format(time.DateOnly)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", b.ID, b.Title, b.Severity, created, strings.Join(b.Labels, ","))
	}
	return tw.Flush()
}
