package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resmigul/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show archived days and records",
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
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "History"))

			best := 0
			for _, d := range st.History {
				if d.Count > best {
					best = d.Count
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Days recorded", len(st.History)))
			fmt.Fprintln(out, ui.LabelValue("Best day", best))
			fmt.Fprintln(out, ui.LabelValue("Lifetime total", st.TotalCount))
			fmt.Fprintln(out, "")

			if len(st.History) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No archived days yet."))
				return nil
			}

			// Newest first.
			start := len(st.History) - 1
			shown := 0
			for i := start; i >= 0 && (limit <= 0 || shown < limit); i-- {
				d := st.History[i]
				mark := ui.Warn.Render("○")
				if d.Completed {
					mark = ui.Good.Render("●")
				}
				fmt.Fprintf(out, "%s %s  %s %s\n",
					mark, ui.Key.Render(d.Date),
					fmt.Sprintf("%4d", d.Count),
					ui.Muted.Render(fmt.Sprintf("(goal %d)", d.Goal)))
				shown++
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 14, "Max days to list (0 = all)")

	return cmd
}
