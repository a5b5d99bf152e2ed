package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resmigul/internal/engine"
	"resmigul/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's progress, streak and balance",
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
			goal, err := svc.GoalToday()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Resmigul — "+st.User.Name))
			fmt.Fprintln(out, ui.Dim.Render("\""+engine.QuoteOfDay(st.CurrentDate)+"\""))
			fmt.Fprintln(out, ui.LabelValue("Date", st.CurrentDate))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d / %d  %s", st.TodayCount, goal, ui.ProgressBar(st.TodayCount, goal, 24))))
			remaining := goal - st.TodayCount
			if remaining <= 0 {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" goal complete"))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Remaining", remaining))
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d %s", st.Streak, ui.IconFlame)))
			fmt.Fprintln(out, ui.LabelValue("Total", st.TotalCount))
			fmt.Fprintln(out, ui.LabelValue("Balance", fmt.Sprintf("%d %s", st.Balance, ui.IconCoin)))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (xp %d/%d)", st.User.Level, st.User.XP, st.User.MaxXP)))
			fmt.Fprintln(out, "")

			if len(st.ActiveEffects) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconBolt+" Active boosts"))
				now := time.Now()
				for _, e := range st.ActiveEffects {
					left := e.ExpiresAt.Sub(now).Round(time.Second)
					if left < 0 {
						left = 0
					}
					fmt.Fprintf(out, "- %s ×%d %s\n", e.Kind, e.Value, ui.Muted.Render(left.String()))
				}
				fmt.Fprintln(out, "")
			}

			if engine.RewardClaimable(&st, time.Now()) {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconGift+" Daily reward available — run `resmigul claim`"))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Daily reward already claimed (streak "+fmt.Sprint(st.DailyRewardStreak)+")"))
			}

			return nil
		},
	}

	return cmd
}
