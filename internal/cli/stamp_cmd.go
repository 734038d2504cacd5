package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/kintai-dev/kintai/internal/cli/formatter"
	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/faceid"
	"github.com/spf13/cobra"
)

func newStampCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Record a clock-in or clock-out",
	}

	cmd.AddCommand(
		newStampKindCmd(app, "in", domain.StampIn),
		newStampKindCmd(app, "out", domain.StampOut),
	)

	return cmd
}

func newStampKindCmd(app *App, use string, kind domain.StampKind) *cobra.Command {
	var code string
	var frames []string
	var yes bool

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Record a clock-%s stamp", use),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if code == "" && len(frames) == 0 {
				return fmt.Errorf("either --code or --face is required")
			}

			if len(frames) > 0 {
				match, err := identifyFromFrames(ctx, app, frames)
				if err != nil {
					return err
				}
				if match == nil {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.NoMatch())
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Matched(match))
				code = match.Employee.Code
			}

			now := time.Now()
			preview, err := app.Attendance.PreviewStamp(ctx, code, kind, now)
			if err != nil {
				return err
			}

			emp, err := app.Employees.GetByCode(ctx, code)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.StampPreview(emp, preview))

			if preview.Sequence == domain.SequenceDuplicate {
				return fmt.Errorf("already recorded: a %s stamp exists for %s on %s", kind, code, preview.Event.WorkDate)
			}

			if !yes && app.IsInteractive != nil && app.IsInteractive() {
				confirmed := true
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Record clock-%s for %s at %s?", use, emp.Name, now.Format("15:04:05"))).
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

			result, err := app.Attendance.RecordStamp(ctx, code, kind, now)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.StampRecorded(emp, result))
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "employee code")
	cmd.Flags().StringSliceVar(&frames, "face", nil, "feature vector file(s) from the external extractor; polled in order")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

// identifyFromFrames polls the supplied frame files against the gallery.
// Frames with no detectable face are skipped, and the one-shot session makes
// the first accepted match final, the way a live capture loop stops on its
// first hit.
func identifyFromFrames(ctx context.Context, app *App, frames []string) (*faceid.Match, error) {
	session := faceid.NewSession()
	for _, frame := range frames {
		if session.Done() {
			break
		}
		vector, err := extractVectorFile(ctx, app.Extractor, frame)
		if errors.Is(err, faceid.ErrNoFace) {
			continue
		}
		if err != nil {
			return nil, err
		}
		match, err := app.Employees.Identify(ctx, vector)
		if err != nil {
			return nil, err
		}
		session.TryAccept(match)
	}
	return session.Accepted(), nil
}
