package cli

import (
	"github.com/kintai-dev/kintai/internal/faceid"
	"github.com/kintai-dev/kintai/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Attendance service.AttendanceService
	Employees  service.EmployeeService
	Settings   service.SettingsService

	// Extractor turns frame data into feature vectors for stamping and
	// enrollment.
	Extractor faceid.Extractor

	// IsInteractive reports whether stdin is attached to a terminal.
	// Confirmation prompts are skipped (treated as confirmed) when it
	// returns false, so the terminal can run scripted.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "kintai" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "kintai",
		Short: "Time-attendance terminal with biometric identification",
	}

	root.AddCommand(
		newStampCmd(app),
		newEmployeeCmd(app),
		newReportCmd(app),
		newDayCmd(app),
		newSettingsCmd(app),
	)

	return root
}
