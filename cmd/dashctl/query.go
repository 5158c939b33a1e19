package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campaign-dash/internal/core/export"
	"campaign-dash/internal/core/query"
)

// filterOptions are the table filters shared by query and export.
type filterOptions struct {
	search string
	status string
	sort   string
	dir    string
	from   string
	to     string
}

func (o *filterOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.search, "search", "", "case-insensitive substring of the campaign name")
	f.StringVar(&o.status, "status", "all", "status filter: all, active, paused or completed")
	f.StringVar(&o.sort, "sort", string(query.SortByRevenue), "sort column: campaign, revenue, users or conversions")
	f.StringVar(&o.dir, "dir", string(query.SortDesc), "sort direction: asc or desc")
	f.StringVar(&o.from, "from", "", "first date of the range (YYYY-MM-DD)")
	f.StringVar(&o.to, "to", "", "last date of the range (YYYY-MM-DD)")
}

func (o *filterOptions) params() query.Params {
	return query.Params{
		Search: o.search,
		Status: o.status,
		Sort:   o.sort,
		Dir:    o.dir,
		From:   o.from,
		To:     o.to,
	}
}

func newQueryCmd(opts *globalOptions) *cobra.Command {
	var (
		filters  filterOptions
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print one page of the filtered campaign table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := filters.params()
			p.Page = strconv.Itoa(page)
			p.PageSize = strconv.Itoa(pageSize)
			q, err := p.Query(query.DefaultPageSize)
			if err != nil {
				return err
			}

			svc, release, err := newService(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer release()

			result, err := svc.QueryCampaigns(cmd.Context(), q)
			if err != nil {
				return err
			}
			return renderPage(cmd.OutOrStdout(), result)
		},
	}
	filters.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", query.DefaultPageSize, "rows per page")
	return cmd
}

// renderPage prints p as an aligned table followed by the pagination
// summary.
func renderPage(w io.Writer, p query.Page) error {
	if p.TotalCount == 0 {
		_, err := fmt.Fprintln(w, "No campaigns found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCAMPAIGN\tREVENUE\tUSERS\tCONVERSIONS\tCTR\tSTATUS\tDATE\t")
	for _, r := range p.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.ID,
			r.Campaign,
			export.FormatCurrency(r.Revenue),
			export.FormatCount(r.Users),
			export.FormatCount(r.Conversions),
			export.FormatPercent(r.CTR),
			export.FormatStatus(r.Status),
			r.Date,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d to %d of %d results (page %d of %d)\n",
		p.From, p.To, p.TotalCount, p.Page, p.TotalPages)
	return err
}
