package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resmigul/internal/engine"
	"resmigul/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	var (
		theme  string
		goal   int
		name   string
		avatar string
		sound  string
		haptic string
		fun    string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Flags().Changed("theme") {
				t, err := engine.ParseTheme(theme)
				if err != nil {
					return err
				}
				if err := svc.SetTheme(ctx, t); err != nil {
					return err
				}
				ui.Apply(string(t))
			}
			if cmd.Flags().Changed("goal") {
				if err := svc.SetCustomGoal(ctx, goal); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("name") {
				if err := svc.Rename(ctx, name); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("avatar") {
				if err := svc.SetAvatar(ctx, avatar); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("sound") {
				on, err := parseOnOff(sound)
				if err != nil {
					return err
				}
				if err := svc.SetSound(ctx, on); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("haptic") {
				on, err := parseOnOff(haptic)
				if err != nil {
					return err
				}
				if err := svc.SetHaptic(ctx, on); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("fun") {
				on, err := parseOnOff(fun)
				if err != nil {
					return err
				}
				if err := svc.SetFunMode(ctx, on); err != nil {
					return err
				}
			}

			st, err := svc.State()
			if err != nil {
				return err
			}
			goalToday, err := svc.GoalToday()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("⚙️", "Settings"))
			fmt.Fprintln(out, ui.LabelValue("Name", st.User.Name+" "+st.User.Avatar))
			fmt.Fprintln(out, ui.LabelValue("Member since", st.User.StartDate))
			fmt.Fprintln(out, ui.LabelValue("Theme", string(st.Settings.Theme)))
			if st.Settings.CustomGoal != nil {
				fmt.Fprintln(out, ui.LabelValue("Goal", fmt.Sprintf("%d (custom)", *st.Settings.CustomGoal)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Goal", fmt.Sprintf("%d (auto, +%d/day)", goalToday, engine.GoalStepPerDay)))
			}
			fmt.Fprintln(out, ui.LabelValue("Sound", onOff(st.Settings.SoundEnabled)))
			fmt.Fprintln(out, ui.LabelValue("Haptics", onOff(st.Settings.HapticEnabled)))
			fmt.Fprintln(out, ui.LabelValue("Fun mode", onOff(st.Settings.FunMode)))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Theme (crystal|dark|neon)")
	cmd.Flags().IntVar(&goal, "goal", 0, "Custom daily goal (0 = automatic)")
	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Profile avatar (emoji)")
	cmd.Flags().StringVar(&sound, "sound", "", "Sound feedback (on|off)")
	cmd.Flags().StringVar(&haptic, "haptic", "", "Haptic feedback (on|off)")
	cmd.Flags().StringVar(&fun, "fun", "", "Fun mode random bonuses (on|off)")

	return cmd
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected on|off, got %q", s)
	}
}

func onOff(b bool) string {
	if b {
		return ui.Good.Render("on")
	}
	return ui.Muted.Render("off")
}
