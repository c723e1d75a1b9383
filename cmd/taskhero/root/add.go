package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskhero/internal/engine"
	"taskhero/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	var desc string
	var due string
	var priority string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := svc.AddTask(ctx, engine.AddTaskInput{
				Name:        args[0],
				Description: desc,
				DueDate:     due,
				Priority:    engine.ParsePriority(priority),
			})
			if err != nil {
				return err
			}
			if _, err := a.refresh(ctx, svc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), task.ID, task.Name,
				ui.Muted.Render(fmt.Sprintf("(%s, %d pts, due %s)", task.Priority, task.Points(), task.DueDate)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description (required)")
	cmd.Flags().StringVar(&due, "due", "", "Due date, free-form (required)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "low", "Priority (low|medium|high or 1-3)")

	return cmd
}
