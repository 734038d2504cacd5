package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/kintai-dev/kintai/internal/cli/formatter"
	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/service"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Correct one work date's stamps",
	}

	cmd.AddCommand(newDayEditCmd(app))

	return cmd
}

func newDayEditCmd(app *App) *cobra.Command {
	var code, date string
	var pairSpecs []string
	var yes bool

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Replace a work date's stamps with hand-edited IN/OUT times",
		Long: `Replace every stamp of one work date with the supplied IN/OUT pairs.
Each --pair takes "IN,OUT" as HH:MM values; leave a side blank or use "-"
to skip it. The replacement is all-or-nothing: if any value fails to parse
or the daily cap would be exceeded, the prior stamps are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := make([]service.EditPair, 0, len(pairSpecs))
			for _, raw := range pairSpecs {
				in, out, found := strings.Cut(raw, ",")
				if !found {
					return fmt.Errorf("invalid --pair %q (want IN,OUT)", raw)
				}
				pairs = append(pairs, service.EditPair{In: strings.TrimSpace(in), Out: strings.TrimSpace(out)})
			}

			if !yes && app.IsInteractive != nil && app.IsInteractive() {
				confirmed := true
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Replace all stamps for %s on %s?", code, date)).
						Description("Existing stamps for this work date will be deleted.").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			events, err := app.Attendance.EditDay(cmd.Context(), code, date, pairs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Replaced %s with %d stamp(s)\n", date, len(events))
			fmt.Fprint(cmd.OutOrStdout(), formatter.DayDetail(&domain.DailySummary{
				EmployeeCode: code,
				WorkDate:     date,
				Events:       events,
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "employee code (required)")
	cmd.Flags().StringVar(&date, "date", "", "work date to edit, YYYY-MM-DD (required)")
	cmd.Flags().StringArrayVar(&pairSpecs, "pair", nil, `IN,OUT pair as HH:MM values (repeatable, e.g. --pair "09:00,17:30")`)
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
