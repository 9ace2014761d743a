package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/config"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// NewStatusCommand creates the status command. Unlike migrate it never
// applies anything: the store is opened directly and only the migration
// bookkeeping is read.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show schema versions without applying them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.loadEnv(cmd)
			if err != nil {
				return err
			}
			if e.cfg.Storage.Driver != config.DriverSQLite {
				return fmt.Errorf("status: %w", domain.ErrUnsupported)
			}

			ctx := cmd.Context()
			db, err := sqlite.Open(ctx, e.cfg.Storage)
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}
			defer db.Close()

			statuses, err := sqlite.InspectStatus(ctx, db)
			if err != nil {
				return err
			}
			for _, st := range statuses {
				if st.Applied {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  applied %s\n",
						st.Path, st.AppliedAt.Format("2006-01-02 15:04:05"))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  pending\n", st.Path)
				}
			}
			return nil
		},
	}
}
