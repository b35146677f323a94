package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/termsh/internal/domain"
)

func newDoctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the termsh environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			report := container.Doctor.Run(cmd.Context())

			out := cmd.OutOrStdout()
			for _, check := range report.Checks {
				fmt.Fprintf(out, "%s %-20s %s\n", statusSymbol(check.Status), check.Name, check.Details)
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found problems")
			}
			fmt.Fprintln(out, "\nAll checks passed")
			return nil
		},
	}
}

func statusSymbol(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return "✓"
	case domain.HealthWarn:
		return "!"
	default:
		return "✗"
	}
}
