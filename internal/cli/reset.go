package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// NewResetCommand creates the reset command. Reset deletes every row one
// scope owns across all entity tables; the schema and other scopes stay
// untouched.
func NewResetCommand(opts *RootOptions) *cobra.Command {
	var (
		userID string
		guest  bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all rows owned by one scope",
		Long: `Delete all rows owned by one scope across every entity table.

The deletion is irrecoverable and runs in a single transaction. Exactly one
of --user or --guest selects the scope, and --yes is required to proceed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (userID != "") == guest {
				return fmt.Errorf("reset: pass exactly one of --user or --guest")
			}
			if !yes {
				return fmt.Errorf("reset: pass --yes to confirm the irrecoverable deletion")
			}

			scope := domain.GuestScope()
			if userID != "" {
				scope = domain.UserScope(userID)
			}

			e, err := opts.loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.app.Close()

			ctx := cmd.Context()
			if err := e.app.Init(ctx); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			if err := e.app.Store.Reset(ctx, scope); err != nil {
				return fmt.Errorf("reset: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "reset complete for %s\n", scope)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id whose rows to delete")
	cmd.Flags().BoolVar(&guest, "guest", false, "delete the guest partition instead of a user's")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	return cmd
}
