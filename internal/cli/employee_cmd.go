package cli

import (
	"fmt"
	"os"

	"github.com/kintai-dev/kintai/internal/cli/formatter"
	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage enrolled employees",
	}

	cmd.AddCommand(
		newEmployeeAddCmd(app),
		newEmployeeListCmd(app),
		newEmployeeShowCmd(app),
		newEmployeeUpdateCmd(app),
		newEmployeeRemoveCmd(app),
		newEmployeeEnrollCmd(app),
	)

	return cmd
}

func newEmployeeAddCmd(app *App) *cobra.Command {
	var code, name, gender, address, nfcID string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := &domain.Employee{
				Code:    code,
				Name:    name,
				Gender:  gender,
				Address: address,
				NfcID:   nfcID,
			}
			if err := app.Employees.Create(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered employee %s (%s)\n", e.Name, e.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "employee code (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&gender, "gender", "", "gender")
	cmd.Flags().StringVar(&address, "address", "", "address")
	cmd.Flags().StringVar(&nfcID, "nfc", "", "NFC card identifier")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEmployeeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Employees.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.EmployeeTable(employees))
			return nil
		},
	}
}

func newEmployeeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Employees.GetByCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.EmployeeDetail(e))
			return nil
		},
	}
}

func newEmployeeUpdateCmd(app *App) *cobra.Command {
	var name, gender, address, nfcID string

	cmd := &cobra.Command{
		Use:   "update <code>",
		Short: "Update an employee's master record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Employees.GetByCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				e.Name = name
			}
			if cmd.Flags().Changed("gender") {
				e.Gender = gender
			}
			if cmd.Flags().Changed("address") {
				e.Address = address
			}
			if cmd.Flags().Changed("nfc") {
				e.NfcID = nfcID
			}
			if err := app.Employees.Update(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated employee %s\n", e.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&gender, "gender", "", "gender")
	cmd.Flags().StringVar(&address, "address", "", "address")
	cmd.Flags().StringVar(&nfcID, "nfc", "", "NFC card identifier")

	return cmd
}

func newEmployeeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <code>",
		Short: "Delete an employee and their attendance log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Employees.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed employee %s\n", args[0])
			return nil
		},
	}
}

func newEmployeeEnrollCmd(app *App) *cobra.Command {
	var vectorFile, photoFile string
	var clear bool

	cmd := &cobra.Command{
		Use:   "enroll <code>",
		Short: "Store an employee's biometric feature vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			if clear {
				if err := app.Employees.Enroll(cmd.Context(), code, nil); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared enrollment for %s\n", code)
				return nil
			}

			if vectorFile != "" {
				vector, err := extractVectorFile(cmd.Context(), app.Extractor, vectorFile)
				if err != nil {
					return err
				}
				if err := app.Employees.Enroll(cmd.Context(), code, vector); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Enrolled %s with a %d-dimension vector\n", code, len(vector))
			}

			if photoFile != "" {
				photo, err := os.ReadFile(photoFile)
				if err != nil {
					return fmt.Errorf("reading photo: %w", err)
				}
				if err := app.Employees.SetPhoto(cmd.Context(), code, photo); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stored photo for %s\n", code)
			}

			if vectorFile == "" && photoFile == "" {
				return fmt.Errorf("nothing to do: pass --vector, --photo or --clear")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vectorFile, "vector", "", "feature vector file from the external extractor")
	cmd.Flags().StringVar(&photoFile, "photo", "", "photo file to store for confirmation screens")
	cmd.Flags().BoolVar(&clear, "clear", false, "remove the stored vector, excluding the employee from matching")

	return cmd
}
