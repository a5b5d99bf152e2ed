package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resmigul/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "resmigul",
	Short:         "Resmigul — local-first gamified daily counter",
	Long:          "Resmigul is a local-first CLI/TUI daily counter with streaks, boosts, quests and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTapCmd(),
		newStatusCmd(),
		newShopCmd(),
		newBuyCmd(),
		newQuestsCmd(),
		newClaimCmd(),
		newHistoryCmd(),
		newAchievementsCmd(),
		newSettingsCmd(),
		newExportCmd(),
		newImportCmd(),
		newPlayCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
