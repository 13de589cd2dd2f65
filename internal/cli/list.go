package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/mongovault/internal/config"
	"github.com/artisanexperiences/mongovault/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the databases available on the server",
	Long: `Connects to the MongoDB server and prints its database names in a
table. System databases (admin, config, local) are hidden unless --all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		url, err := resolveURL(cmd, cfg)
		if err != nil {
			return err
		}

		names, err := listDatabases(cmd.Context(), url, mustGetBool(cmd, "all"))
		if err != nil {
			return err
		}

		if len(names) == 0 {
			ui.PrintInfo("No databases found.")
			return nil
		}

		rows := make([][]string, len(names))
		for i, name := range names {
			rows[i] = []string{name}
		}

		fmt.Println(ui.RenderTable([]string{"DATABASE"}, rows))
		ui.PrintInfo(fmt.Sprintf("%d database(s)", len(names)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("all", false, "Include system databases (admin, config, local)")
}
