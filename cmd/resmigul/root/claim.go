package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"resmigul/internal/engine"
	"resmigul/internal/ui"
)

func newClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the daily reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ClaimDaily(ctx)
			if errors.Is(err, engine.ErrRewardAlreadyClaimed) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" already claimed today — come back tomorrow"))
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s Daily reward: +%d %s", ui.IconGift, res.Amount, ui.IconCoin)))
			fmt.Fprintln(out, ui.LabelValue("Claim streak", res.Streak))
			fmt.Fprintln(out, ui.LabelValue("Balance", fmt.Sprintf("%d %s", res.Balance, ui.IconCoin)))
			return nil
		},
	}

	return cmd
}
