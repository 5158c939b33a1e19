package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"campaign-dash/internal/core/query"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var (
		filters filterOptions
		format  string
		output  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole filtered campaign table as CSV or PDF",
		Long: `Export writes every row matching the filters, ignoring pagination.
The file defaults to campaign-data.csv or campaign-data.pdf in the current
directory; use -o - to write to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "csv" && format != "pdf" {
				return fmt.Errorf("invalid --format %q, must be csv or pdf", format)
			}
			q, err := filters.params().Query(query.DefaultPageSize)
			if err != nil {
				return err
			}

			svc, release, err := newService(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer release()

			// Rendered in memory so an empty export leaves no file behind.
			var buf bytes.Buffer
			if format == "pdf" {
				err = svc.ExportPDF(cmd.Context(), q, &buf)
			} else {
				err = svc.ExportCSV(cmd.Context(), q, &buf)
			}
			if err != nil {
				return err
			}

			if output == "-" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if output == "" {
				output = "campaign-data." + format
			}
			if err = os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return err
			}
			slog.Info("export written", slog.String("path", output), slog.Int("bytes", buf.Len()))
			return nil
		},
	}
	filters.register(cmd)
	cmd.Flags().StringVar(&format, "format", "csv", "export format: csv or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for standard output")
	return cmd
}
