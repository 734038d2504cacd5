package cli

import (
	"fmt"

	"github.com/kintai-dev/kintai/internal/cli/formatter"
	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or change rounding and cutoff configuration",
	}

	cmd.AddCommand(newSettingsShowCmd(app), newSettingsSetCmd(app))

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Settings(s))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var interval, cutoffHour, cutoffMinute int
	var inDir, outDir string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("interval") {
				s.Rounding.IntervalMin = interval
			}
			if cmd.Flags().Changed("in-direction") {
				s.Rounding.InDirection = domain.RoundingDirection(inDir)
			}
			if cmd.Flags().Changed("out-direction") {
				s.Rounding.OutDirection = domain.RoundingDirection(outDir)
			}
			if cmd.Flags().Changed("cutoff-hour") {
				s.Cutoff.Hour = cutoffHour
			}
			if cmd.Flags().Changed("cutoff-minute") {
				s.Cutoff.Minute = cutoffMinute
			}

			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Settings(s))
			return nil
		},
	}

	cmd.Flags().IntVar(&interval, "interval", 0, "rounding interval in minutes: 0 (off), 15 or 30")
	cmd.Flags().StringVar(&inDir, "in-direction", "up", "rounding direction for clock-ins: up or down")
	cmd.Flags().StringVar(&outDir, "out-direction", "down", "rounding direction for clock-outs: up or down")
	cmd.Flags().IntVar(&cutoffHour, "cutoff-hour", 0, "business-date cutoff hour (0-11)")
	cmd.Flags().IntVar(&cutoffMinute, "cutoff-minute", 0, "business-date cutoff minute (0-59)")

	return cmd
}
