package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWipeCommand creates the wipe command. Wipe drops every entity table
// for every scope and rebuilds the schema from scratch.
func NewWipeCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Drop every table and rebuild the schema empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("wipe: pass --yes to confirm dropping all data for all users")
			}

			e, err := opts.loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.app.Close()

			ctx := cmd.Context()
			if err := e.app.Init(ctx); err != nil {
				return fmt.Errorf("wipe: %w", err)
			}
			if err := e.app.Store.Wipe(ctx); err != nil {
				return fmt.Errorf("wipe: %w", err)
			}

			version, err := e.app.Store.Version(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "store wiped, schema rebuilt at version %d\n", version)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	return cmd
}
