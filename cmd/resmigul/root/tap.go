package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resmigul/internal/engine"
	"resmigul/internal/ui"
)

func newTapCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "tap",
		Short: "Count one (or more) toward today's goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > 1000 {
				return errors.New("count must be between 1 and 1000")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var last *engine.TapResult
			accepted := 0
			for i := 0; i < count; i++ {
				if i > 0 {
					// Space repeated taps past the debounce window.
					time.Sleep(engine.TapDebounce + 10*time.Millisecond)
				}
				res, err := svc.Tap(ctx)
				if err != nil {
					return err
				}
				if !res.Accepted {
					continue
				}
				accepted++
				last = res

				if res.Critical {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconBolt+" CRITICAL! +"+fmt.Sprint(res.Increment)))
				}
				if res.FunBonus > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("%s fun bonus +%d", ui.IconSparkle, res.FunBonus)))
				}
				if res.LevelsGained > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(fmt.Sprintf("%s LEVEL UP — level %d", ui.IconTrophy, lastLevel(svc))))
				}
				for _, q := range res.QuestsCompleted {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s quest done: %s (+%d %s)", ui.IconQuest, q.Title, q.Reward, ui.IconCoin)))
				}
				if res.GoalReached {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Daily goal reached! (%d/%d)", ui.IconDone, res.TodayCount, res.Goal)))
				}
			}

			if last == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("tap debounced, nothing counted"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Today", fmt.Sprintf("%d / %d  %s", last.TodayCount, last.Goal, ui.ProgressBar(last.TodayCount, last.Goal, 20))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", fmt.Sprintf("%d %s", last.Balance, ui.IconCoin)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of taps (spaced past the debounce window)")

	return cmd
}

func lastLevel(svc *engine.Service) int {
	st, err := svc.State()
	if err != nil {
		return 0
	}
	return st.User.Level
}
