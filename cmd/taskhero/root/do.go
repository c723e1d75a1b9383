package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"taskhero/internal/ui"
)

func idArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return errors.New("id must be an integer")
	}
	return nil
}

func parseID(args []string) int64 {
	id, _ := strconv.ParseInt(args[0], 10, 64)
	return id
}

func newDoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
		Args:  idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteTask(ctx, parseID(args))
			if err != nil {
				return err
			}
			snap, err := a.refresh(ctx, svc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s #%d %s\n", ui.Good.Render(ui.IconDone+" Completed"), res.TaskID,
				ui.Muted.Render(fmt.Sprintf("(+%d pts on %s)", res.PointsAwarded, res.CompletedDate)))
			fmt.Fprintln(out, ui.LabelValue("Points", snap.State.Points))
			fmt.Fprintln(out, ui.LabelValue("Achievement", snap.State.AchievementMessage))
			if snap.State.DailyReward > 0 {
				fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s %s (+%d)", ui.IconGift, snap.State.DailyRewardMessage, snap.State.DailyReward)))
			}
			return nil
		},
	}

	return cmd
}
