package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"taskhero/internal/engine"
	"taskhero/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	var openOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.Tasks(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHero, "Tasks"))
			shown := 0
			for _, t := range tasks {
				if openOnly && t.Completed {
					continue
				}
				printTask(out, t)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no tasks)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&openOnly, "open", false, "Only show tasks that are not completed")
	return cmd
}

func printTask(out io.Writer, t engine.Task) {
	line := fmt.Sprintf("%s #%d %s %s %s", ui.Checkbox(t.Completed), t.ID, t.Name,
		ui.PriorityText(t.Priority.String()), ui.Muted.Render("due "+t.DueDate))
	if t.CompletedDate != "" {
		line += " " + ui.Muted.Render("done "+t.CompletedDate)
	}
	fmt.Fprintln(out, line)
	if t.Description != "" {
		fmt.Fprintln(out, "    "+ui.Muted.Render(t.Description))
	}
}
