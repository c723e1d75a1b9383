package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"taskhero/internal/engine"
	"taskhero/internal/ui"
)

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show points, challenge tiers and rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := a.refresh(ctx, svc)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	return cmd
}

func printStatus(out io.Writer, snap *engine.Snapshot) {
	st := snap.State

	fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Challenges (Points: %d)", st.Points)))
	fmt.Fprintln(out, st.AchievementMessage)
	fmt.Fprintln(out, "")

	for _, p := range snap.Progress {
		name := p.Tier.String()
		mark := ""
		if p.Reached {
			mark = " " + ui.IconSparkle
		}
		fmt.Fprintf(out, "%s %d points required | %d points to %s level | %d / %d tasks%s\n",
			ui.TierText(name, name+":"), p.PointsRequired, p.PointsToGo, name, p.Completed, p.Goal, mark)
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("Completed Challenges"))
	done := engine.CompletedChallenges(st.Points)
	if len(done) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("(none yet)"))
	}
	for _, t := range done {
		fmt.Fprintln(out, ui.TierText(t.String(), t.String()+" level challenge completed!"))
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render(ui.IconGift+" Daily reward"))
	fmt.Fprintf(out, "%s %s\n", ui.LabelValue("Reward", st.DailyReward), ui.Muted.Render("("+snap.Today+")"))
	fmt.Fprintln(out, st.DailyRewardMessage)
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render(ui.IconFlame+" Weekly challenge"))
	fmt.Fprintln(out, ui.WeekStrip(snap.Week[:]))
	fmt.Fprintln(out, st.WeeklyChallengeMessage)
}
