package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resmigul/internal/engine"
	"resmigul/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "List purchasable boosts",
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
			fmt.Fprintln(out, ui.Heading(ui.IconCart, "Shop"))
			fmt.Fprintln(out, ui.LabelValue("Balance", fmt.Sprintf("%d %s", st.Balance, ui.IconCoin)))
			fmt.Fprintln(out, "")
			for _, it := range engine.Catalog() {
				affordable := ui.Good.Render("✔")
				if st.Balance < it.Price {
					affordable = ui.Bad.Render("✘")
				}
				fmt.Fprintf(out, "%s %s %s — %d %s, %s for %s %s\n",
					affordable, it.Icon, ui.Key.Render(it.Name),
					it.Price, ui.IconCoin,
					effectLabel(it), it.Duration, ui.Muted.Render("("+it.ID+")"))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("Buy with `resmigul buy <id>`"))
			return nil
		},
	}

	return cmd
}

func effectLabel(it engine.Item) string {
	switch it.Kind {
	case engine.EffectMultiplier:
		return fmt.Sprintf("×%d taps", it.Value)
	case engine.EffectAutoTap:
		return fmt.Sprintf("+%d/sec auto", it.Value)
	default:
		return string(it.Kind)
	}
}

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a boost from the shop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Buy(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s Bought %s %s for %d %s", ui.IconDone, res.Item.Icon, res.Item.Name, res.Item.Price, ui.IconCoin)))
			if res.Effect != nil {
				fmt.Fprintln(out, ui.LabelValue("Active until", res.Effect.ExpiresAt.Format("15:04:05")))
			}
			for _, q := range res.QuestsCompleted {
				fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s quest done: %s (+%d %s)", ui.IconQuest, q.Title, q.Reward, ui.IconCoin)))
			}
			fmt.Fprintln(out, ui.LabelValue("Balance", fmt.Sprintf("%d %s", res.Balance, ui.IconCoin)))
			return nil
		},
	}

	return cmd
}
