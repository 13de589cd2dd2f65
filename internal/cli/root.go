package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/artisanexperiences/mongovault/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "mongovault",
	Short: "Selective MongoDB backups with an interactive database picker",
	Long: `Mongovault backs up a chosen subset of the databases on a MongoDB
server using the external mongodump utility. Databases are picked in an
interactive terminal checkbox UI, or passed explicitly for cron use, and
a finished run can be compressed into a single zip archive.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if mustGetBool(cmd, "verbose") {
			logger.SetLevel(log.DebugLevel)
		} else if mustGetBool(cmd, "quiet") {
			logger.SetLevel(log.ErrorLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor || !ui.IsInteractive() {
			return cmd.Help()
		}
		printBanner()
		return nil
	},
}

var noColor bool

// logger is the shared structured logger; level follows --verbose/--quiet.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Level:           log.WarnLevel,
})

func printBanner() {
	// Big block letters for "VAULT" with gradient colors
	blockLetters := [][]string{
		// V
		{
			"██╗   ██╗",
			"██║   ██║",
			"██║   ██║",
			"╚██╗ ██╔╝",
			" ╚████╔╝ ",
			"  ╚═══╝  ",
		},
		// A
		{
			" █████╗ ",
			"██╔══██╗",
			"███████║",
			"██╔══██║",
			"██║  ██║",
			"╚═╝  ╚═╝",
		},
		// U
		{
			"██╗   ██╗",
			"██║   ██║",
			"██║   ██║",
			"██║   ██║",
			"╚██████╔╝",
			" ╚═════╝ ",
		},
		// L
		{
			"██╗     ",
			"██║     ",
			"██║     ",
			"██║     ",
			"███████╗",
			"╚══════╝",
		},
		// T
		{
			"████████╗",
			"╚══██╔══╝",
			"   ██║   ",
			"   ██║   ",
			"   ██║   ",
			"   ╚═╝   ",
		},
	}

	// Gradient colors - 5 colors for 5 letters
	colors := []lipgloss.Color{
		lipgloss.Color("#B9F6CA"), // Lightest green
		lipgloss.Color("#69F0AE"),
		lipgloss.Color("#00ED64"), // MongoDB green
		lipgloss.Color("#00C853"),
		lipgloss.Color("#00A843"), // Darkest green
	}

	// Render each row of the block letters
	for row := 0; row < 6; row++ {
		var lineParts []string
		for letterIdx := 0; letterIdx < len(blockLetters); letterIdx++ {
			style := lipgloss.NewStyle().
				Foreground(colors[letterIdx]).
				Bold(true)
			lineParts = append(lineParts, style.Render(blockLetters[letterIdx][row]))
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Left, lineParts...))
	}

	versionStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginTop(1)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginBottom(1)

	commandsStyle := lipgloss.NewStyle().
		Foreground(ui.Text)

	commands := `
Commands:
  backup    Back up selected databases with mongodump
  list      List the databases available on the server
  doctor    Check for the MongoDB Database Tools
  version   Show mongovault version

Run 'mongovault <command> --help' for more information.`

	versionLine := fmt.Sprintf("Version %s (commit: %s, built: %s)", Version, Commit, BuildDate)
	fmt.Println(versionStyle.Render(versionLine))
	fmt.Println(subtitleStyle.Render("Selective MongoDB Backups"))
	fmt.Println(commandsStyle.Render(commands))
}

func Execute() error {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		if ui.IsAbort(err) {
			return nil
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringP("url", "u", "", "MongoDB connection URL (e.g., mongodb://localhost:27017)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("no-interactive", false, "Disable interactive prompts")
}

func mustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: flag %q not defined: %v", name, err))
	}
	return value
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: flag %q not defined: %v", name, err))
	}
	return value
}
