package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskhero/internal/ui"
)

func newUndoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Mark a completed task as not done",
		Long: `Reopen a completed task.

This will:
- Clear the completed flag and the completion date
- Recompute points, tiers and rewards without the task

Use this to fix accidental completions.`,
		Args: idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			before, err := svc.State(ctx)
			if err != nil {
				return err
			}
			task, err := svc.ReopenTask(ctx, parseID(args))
			if err != nil {
				return err
			}
			snap, err := a.refresh(ctx, svc)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Warn.Render(ui.IconUndo+" Reopened"), task.ID, task.Name)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points", fmt.Sprintf("%d → %d", before.Points, snap.State.Points)))
			return nil
		},
	}

	return cmd
}
