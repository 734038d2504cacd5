package cli

import (
	"fmt"
	"time"

	"github.com/kintai-dev/kintai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var code, month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly attendance grid for one employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := time.Parse("2006-01", month)
			if err != nil {
				return fmt.Errorf("invalid month %q (want YYYY-MM): %w", month, err)
			}

			report, err := app.Attendance.MonthlyReport(cmd.Context(), code, ym.Year(), ym.Month())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.MonthlyReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "employee code (required)")
	cmd.Flags().StringVar(&month, "month", time.Now().Format("2006-01"), "month to report (YYYY-MM)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
