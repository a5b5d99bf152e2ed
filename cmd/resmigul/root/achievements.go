package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resmigul/internal/engine"
	"resmigul/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show earned and locked achievements",
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
			defs := engine.Achievements()
			earned := 0
			for _, def := range defs {
				if st.Unlocked[def.ID] {
					earned++
				}
			}
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", earned, len(defs))))
			for _, def := range defs {
				if st.Unlocked[def.ID] {
					fmt.Fprintf(out, "%s %s — %s\n", def.Icon, ui.Gold.Render(def.Title), ui.Muted.Render(def.Description))
					continue
				}
				fmt.Fprintf(out, "🔒 %s — %s\n", ui.Dim.Render(def.Title), ui.Dim.Render(def.Description))
			}
			return nil
		},
	}

	return cmd
}
