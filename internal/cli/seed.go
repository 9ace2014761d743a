package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/seeder"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a fortnight of sample data through the repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
				return fmt.Errorf("seed: %w", err)
			}

			s := seeder.New(e.log, seeder.Stores{
				Tx:               e.app.Tx,
				Tasks:            e.app.Tasks,
				Habits:           e.app.Habits,
				Completions:      e.app.Completions,
				FoodLogs:         e.app.FoodLogs,
				WaterLogs:        e.app.WaterLogs,
				MealPreps:        e.app.MealPreps,
				NutritionProfile: e.app.NutritionProfile,
				Manifestations:   e.app.Manifestations,
				Affirmations:     e.app.Affirmations,
				FinanceRecords:   e.app.FinanceRecords,
				FinanceNotes:     e.app.FinanceNotes,
				Workouts:         e.app.Workouts,
				Appointments:     e.app.Appointments,
				Notes:            e.app.Notes,
			}, time.Now())

			res, err := s.Run(ctx, scope)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			kinds := make([]string, 0, len(res.Created))
			for kind := range res.Created {
				kinds = append(kinds, kind)
			}
			sort.Strings(kinds)
			for _, kind := range kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %d\n", kind, res.Created[kind])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rows for %s\n", res.Total(), scope)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "seed this user id instead of the guest partition")

	return cmd
}
