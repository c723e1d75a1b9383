package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskhero/internal/engine"
	"taskhero/internal/ui"
)

func newGoalsCmd(a *app) *cobra.Command {
	goals := map[engine.Tier]*int{
		engine.TierBronze: new(int),
		engine.TierSilver: new(int),
		engine.TierGold:   new(int),
	}
	var tierName string
	var value int

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or set the task-count goal for each tier",
		Long: fmt.Sprintf(`Show or set the number of completed tasks each tier requires.

Goals are clamped to %d-%d. Tiers are checked independently, so a bronze goal
above the silver goal is allowed. Set one tier with --bronze/--silver/--gold,
or name it with --tier and --value.`, engine.MinGoal, engine.MaxGoal),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes := map[engine.Tier]int{}
			for _, tier := range engine.TiersDescending {
				if cmd.Flags().Changed(lowerTier(tier)) {
					changes[tier] = *goals[tier]
				}
			}
			if cmd.Flags().Changed("tier") != cmd.Flags().Changed("value") {
				return errors.New("--tier and --value must be given together")
			}
			if cmd.Flags().Changed("tier") {
				tier, err := engine.ParseTier(tierName)
				if err != nil {
					return err
				}
				changes[tier] = value
			}

			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, tier := range engine.TiersDescending {
				n, ok := changes[tier]
				if !ok {
					continue
				}
				stored, err := svc.SetGoal(ctx, tier, n)
				if err != nil {
					return err
				}
				a.logger.Debug("goal set", "tier", lowerTier(tier), "requested", n, "stored", stored)
			}

			snap, err := a.refresh(ctx, svc)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Goals"))
			for _, p := range snap.Progress {
				name := p.Tier.String()
				fmt.Fprintf(out, "- %s %d / %d tasks\n", ui.TierText(name, name+":"), p.Completed, p.Goal)
			}
			return nil
		},
	}

	for _, tier := range engine.TiersDescending {
		cmd.Flags().IntVar(goals[tier], lowerTier(tier), 0, fmt.Sprintf("%s goal (completed tasks)", tier))
	}
	cmd.Flags().StringVar(&tierName, "tier", "", "Tier to set (bronze|silver|gold)")
	cmd.Flags().IntVar(&value, "value", 0, "Goal for --tier")
	return cmd
}

func lowerTier(t engine.Tier) string {
	return strings.ToLower(t.String())
}
