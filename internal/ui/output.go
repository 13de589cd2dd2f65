package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
)

// ErrCancelled is returned when the user backs out of an interactive flow,
// whether by quitting the selector, declining a confirmation, or Ctrl+C.
var ErrCancelled = errors.New("cancelled by user")

// IsInteractive reports whether stdout is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

// IsAbort reports whether err represents a user-initiated cancellation.
func IsAbort(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, huh.ErrUserAborted)
}

// NormalizeAbort maps huh's abort error onto ErrCancelled so callers only
// have one cancellation sentinel to check.
func NormalizeAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

func PrintInfo(msg string) {
	fmt.Println(MutedStyle.Render(msg))
}

func PrintStep(msg string) {
	fmt.Println(InfoStyle.Render("→ " + msg))
}

func PrintSuccess(msg string) {
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}

func PrintWarning(msg string) {
	fmt.Println(WarningStyle.Render("! " + msg))
}

func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ "+msg))
}

func PrintDone(msg string) {
	fmt.Println(DoneStyle.Render(msg))
}
