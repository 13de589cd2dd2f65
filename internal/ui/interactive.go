package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ConfirmBackup asks the user to confirm the run before any dump starts.
func ConfirmBackup(count int, output string, archive bool) (bool, error) {
	description := fmt.Sprintf("Dump %d database(s) to %s", count, output)
	if archive {
		description += " and compress into a single zip archive"
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start backup?").
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, NormalizeAbort(err)
	}

	return confirmed, nil
}

// ConfirmSaveConfig asks whether to persist the connection settings.
func ConfirmSaveConfig() (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save settings?").
				Description("Persist url, output directory, and zip preference to mongovault.yaml").
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, NormalizeAbort(err)
	}

	return confirmed, nil
}

// WithSpinner runs fn behind a spinner when attached to a terminal, or
// plainly otherwise, so slow server round trips always show feedback.
func WithSpinner(title string, fn func()) error {
	if !IsInteractive() {
		fn()
		return nil
	}
	return spinner.New().Title(title).Action(fn).Run()
}
