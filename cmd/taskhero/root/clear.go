package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskhero/internal/ui"
)

func newClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete all tasks without --yes")
			}
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.ClearTasks(ctx)
			if err != nil {
				return err
			}
			if _, err := a.refresh(ctx, svc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s)\n", ui.Warn.Render(ui.IconTrash+" Cleared"), n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting every task")
	return cmd
}
