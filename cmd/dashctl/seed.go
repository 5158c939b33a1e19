package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"campaign-dash/internal/adapter/dataset"
	"campaign-dash/internal/db"
)

func newSeedCmd(opts *globalOptions) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load campaigns into PostgreSQL",
		Long: `Seed inserts the reference table, or the records of --dataset, into the
database named by --psql. Ids already present are kept unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.psql == "" {
				return errors.New("--psql is required")
			}

			records := dataset.Reference()
			if opts.dataset != "" {
				var err error
				if records, err = dataset.NewFileRepository(opts.dataset).ListCampaigns(cmd.Context()); err != nil {
					return err
				}
			}

			if migrate {
				if err := db.Migrate(opts.psql); err != nil {
					return err
				}
				slog.Info("migrations applied successfully")
			}

			pool, err := openPool(cmd.Context(), opts.psql)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err = db.Seed(cmd.Context(), pool, records); err != nil {
				return err
			}
			slog.Info("campaigns seeded", slog.Int("records", len(records)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply schema migrations first")
	return cmd
}
