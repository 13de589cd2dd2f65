package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/mongovault/internal/config"
	"github.com/artisanexperiences/mongovault/internal/database"
	"github.com/artisanexperiences/mongovault/internal/ui"
)

// resolveURL picks the connection URL: flag first, then config/env.
func resolveURL(cmd *cobra.Command, cfg *config.Config) (string, error) {
	url := mustGetString(cmd, "url")
	if url == "" {
		url = cfg.URL
	}
	if url == "" {
		return "", fmt.Errorf("MongoDB connection URL required - pass --url, set MONGOVAULT_URL, or save it with 'mongovault backup --save'")
	}
	return url, nil
}

// listDatabases fetches the sorted database names, behind a spinner when
// attached to a terminal.
func listDatabases(ctx context.Context, url string, includeSystem bool) ([]string, error) {
	var (
		names   []string
		listErr error
	)

	err := ui.WithSpinner("Connecting to MongoDB...", func() {
		names, listErr = database.ListNames(ctx, url, includeSystem)
	})
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}
	if listErr != nil {
		return nil, listErr
	}

	return names, nil
}

// validateDatabases rejects requested names the server does not have,
// listing every valid alternative in the diagnostic.
func validateDatabases(requested, available []string) error {
	known := make(map[string]struct{}, len(available))
	for _, name := range available {
		known[name] = struct{}{}
	}

	var unknown []string
	for _, name := range requested {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) > 0 {
		return fmt.Errorf("databases not found: %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(available, ", "))
	}

	return nil
}
