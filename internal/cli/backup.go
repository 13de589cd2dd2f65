package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/mongovault/internal/backup"
	"github.com/artisanexperiences/mongovault/internal/config"
	"github.com/artisanexperiences/mongovault/internal/tools"
	"github.com/artisanexperiences/mongovault/internal/ui"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up selected databases with mongodump",
	Long: `Backs up a subset of the databases on a MongoDB server.

Without --databases an interactive checkbox UI lists every database on the
server (system databases excluded unless --all) for selection. With
--databases the given names are validated against the server and backed up
directly, which is the mode to use from cron.

Each database is dumped by the external mongodump utility into
<output>/<timestamp>/<database>/. With --zip the finished run is compressed
into a single archive and the uncompressed directory is removed.`,
	Example: `  # Interactive selection
  mongovault backup --url mongodb://localhost:27017

  # Non-interactive, for cron
  mongovault backup --url mongodb://localhost:27017 --databases orders,users --zip`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		url, err := resolveURL(cmd, cfg)
		if err != nil {
			return err
		}

		output := mustGetString(cmd, "output")
		if output == "" {
			output = cfg.Output
		}

		archive := mustGetBool(cmd, "zip") || cfg.Zip
		includeSystem := mustGetBool(cmd, "all")
		quiet := mustGetBool(cmd, "quiet")
		yes := mustGetBool(cmd, "yes")
		interactive := ui.IsInteractive() && !mustGetBool(cmd, "no-interactive")

		requested, err := cmd.Flags().GetStringSlice("databases")
		if err != nil {
			return err
		}

		// Warn up front when mongodump is absent; the run itself would
		// only discover it one failure at a time.
		if _, err := tools.NewValidator(logger).Validate(tools.BackupTools()); err != nil {
			ui.PrintWarning(err.Error())
		}

		ctx := cmd.Context()

		names, err := listDatabases(ctx, url, includeSystem)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			ui.PrintInfo("No databases found.")
			return nil
		}

		var selected []string
		if len(requested) > 0 {
			if err := validateDatabases(requested, names); err != nil {
				return err
			}
			selected = requested
		} else {
			if !interactive {
				return fmt.Errorf("interactive selection requires a terminal - pass --databases to choose non-interactively")
			}

			selected, err = ui.SelectDatabases(names)
			if errors.Is(err, ui.ErrCancelled) {
				ui.PrintInfo("Backup cancelled.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("interactive selection: %w", err)
			}

			if !yes {
				confirmed, err := ui.ConfirmBackup(len(selected), output, archive)
				if err != nil {
					return err
				}
				if !confirmed {
					ui.PrintInfo("Backup cancelled.")
					return nil
				}
			}
		}

		runner := backup.NewRunner(url, output, logger)
		if !quiet {
			runner.Progress = printProgress
			ui.PrintStep(fmt.Sprintf("Starting backup of %d database(s)", len(selected)))
		}

		summary, err := runner.Run(ctx, selected, archive)
		if err != nil {
			return err
		}

		if !quiet {
			printSummary(summary)
		}

		shouldSave := mustGetBool(cmd, "save")
		if !shouldSave && interactive && !yes && cfg.URL == "" {
			// Offer to persist settings the first time a run succeeds
			// without any configured connection.
			confirmed, err := ui.ConfirmSaveConfig()
			if err != nil {
				return err
			}
			shouldSave = confirmed
		}

		if shouldSave {
			if err := config.Save(&config.Config{URL: url, Output: output, Zip: archive}); err != nil {
				ui.PrintError(fmt.Sprintf("Failed to save settings: %v", err))
			} else {
				ui.PrintSuccess("Saved settings to mongovault.yaml")
			}
		}

		return nil
	},
}

func printProgress(databaseName string, err error) {
	if err != nil {
		ui.PrintError(fmt.Sprintf("Backing up '%s': %v", databaseName, err))
		return
	}
	ui.PrintSuccess(fmt.Sprintf("Backed up '%s'", databaseName))
}

func printSummary(summary *backup.Summary) {
	fmt.Println()
	ui.PrintDone("Backup complete!")
	ui.PrintInfo(fmt.Sprintf("  Successful: %d/%d", summary.Succeeded, summary.Attempted))
	if len(summary.Failed) > 0 {
		ui.PrintWarning(fmt.Sprintf("  Failed: %d - %s", len(summary.Failed), strings.Join(summary.Failed, ", ")))
	}
	if summary.ArchiveErr != nil {
		ui.PrintWarning("  Archive was not created; the uncompressed backup is retained")
	}
	ui.PrintInfo(fmt.Sprintf("  Location: %s", summary.Location))
}

func init() {
	rootCmd.AddCommand(backupCmd)

	backupCmd.Flags().StringSliceP("databases", "d", nil, "Specific databases to back up (skips interactive mode)")
	backupCmd.Flags().StringP("output", "o", "", "Output directory for backups (default: ./backups)")
	backupCmd.Flags().Bool("all", false, "Include system databases (admin, config, local)")
	backupCmd.Flags().Bool("zip", false, "Compress the run into a single zip archive and remove the uncompressed files")
	backupCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	backupCmd.Flags().Bool("save", false, "Persist url, output, and zip settings to mongovault.yaml")
}
