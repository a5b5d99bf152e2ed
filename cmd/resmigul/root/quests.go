package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resmigul/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Show today's quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.State()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Daily Quests"))
			for _, q := range st.Quests {
				mark := "[ ]"
				if q.Completed {
					mark = ui.Good.Render("[✓]")
				}
				fmt.Fprintf(out, "%s %s %s %s\n",
					mark, ui.Key.Render(q.Title),
					ui.ProgressBar(q.Current, q.Target, 12),
					ui.Muted.Render(fmt.Sprintf("%d/%d — reward %d %s", q.Current, q.Target, q.Reward, ui.IconCoin)))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("Quests reset every day."))
			return nil
		},
	}

	return cmd
}
