package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskhero/internal/engine"
	"taskhero/internal/ui"
)

func newEditCmd(a *app) *cobra.Command {
	var name, desc, due, priority string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's name, description, due date or priority",
		Args:  idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in engine.EditTaskInput
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = &name
			}
			if flags.Changed("desc") {
				in.Description = &desc
			}
			if flags.Changed("due") {
				in.DueDate = &due
			}
			if flags.Changed("priority") {
				p := engine.ParsePriority(priority)
				in.Priority = &p
			}
			if in == (engine.EditTaskInput{}) {
				return errors.New("nothing to edit: pass --name, --desc, --due or --priority")
			}

			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := svc.EditTask(ctx, parseID(args), in)
			if err != nil {
				return err
			}
			if _, err := a.refresh(ctx, svc); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Saved"))
			printTask(cmd.OutOrStdout(), *task)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority (low|medium|high or 1-3)")
	return cmd
}
