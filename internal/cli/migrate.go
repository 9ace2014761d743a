package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Open the store and apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.app.Close()

			ctx := cmd.Context()
			if err := e.app.Init(ctx); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			statuses, err := e.app.Store.Status(ctx)
			if err != nil {
				return err
			}
			for _, st := range statuses {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  applied %s\n",
					st.Path, st.AppliedAt.Format("2006-01-02 15:04:05"))
			}

			version, err := e.app.Store.Version(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
			return nil
		},
	}
}
