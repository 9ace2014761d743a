package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

const dayFormat = "2006-01-02"

// NewCalendarCommand creates the calendar command.
func NewCalendarCommand(opts *RootOptions) *cobra.Command {
	var (
		fromStr string
		toStr   string
		userID  string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the per-day event index for a date range",
		Long: `Print the per-day event index for a date range.

Days run on the local wall clock: --from and --to are local dates, the
range covers them fully, and each event buckets under the local day its
timestamp falls on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.ParseInLocation(dayFormat, fromStr, time.Local)
			if err != nil {
				return fmt.Errorf("calendar: bad --from: %w", err)
			}
			to, err := time.ParseInLocation(dayFormat, toStr, time.Local)
			if err != nil {
				return fmt.Errorf("calendar: bad --to: %w", err)
			}
			if to.Before(from) {
				return fmt.Errorf("calendar: --to %s is before --from %s", toStr, fromStr)
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
				return fmt.Errorf("calendar: %w", err)
			}

			start := from.UnixMilli()
			end := to.AddDate(0, 0, 1).UnixMilli() - 1

			ix, err := e.app.Calendar.EventsInRange(ctx, scope, start, end)
			if err != nil {
				return fmt.Errorf("calendar: %w", err)
			}
			if len(ix) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no events")
				return nil
			}

			for _, day := range ix.Days() {
				parts := make([]string, 0, 4)
				for _, c := range ix.Counts(day) {
					parts = append(parts, fmt.Sprintf("%s x%d", c.Type, c.Count))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", day, strings.Join(parts, "  "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "first day, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&toStr, "to", "", "last day, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&userID, "user", "", "user id instead of the guest partition")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
