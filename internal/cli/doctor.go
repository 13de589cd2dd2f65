package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/mongovault/internal/tools"
	"github.com/artisanexperiences/mongovault/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for the MongoDB Database Tools",
	Long: `Checks whether the external MongoDB Database Tools that mongovault
shells out to are installed, and prints their paths and versions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		statuses, validateErr := tools.NewValidator(logger).Validate(tools.BackupTools())

		rows := make([][]string, len(statuses))
		for i, status := range statuses {
			state := "missing"
			version := "-"
			if status.Available {
				state = "ok"
				version = status.Version
				if version == "" {
					version = "unknown"
				}
			}
			rows[i] = []string{status.Name, state, version}
		}

		fmt.Println(ui.RenderToolTable(rows))

		if validateErr != nil {
			return validateErr
		}

		ui.PrintSuccess("All required tools are installed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
