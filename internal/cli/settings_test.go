package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisanexperiences/mongovault/internal/config"
)

func urlTestCmd(flagValue string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String("url", "", "")
	if flagValue != "" {
		_ = cmd.Flags().Set("url", flagValue)
	}
	return cmd
}

func TestResolveURL(t *testing.T) {
	t.Run("flag wins over config", func(t *testing.T) {
		url, err := resolveURL(urlTestCmd("mongodb://flag:27017"), &config.Config{URL: "mongodb://file:27017"})

		require.NoError(t, err)
		assert.Equal(t, "mongodb://flag:27017", url)
	})

	t.Run("falls back to config", func(t *testing.T) {
		url, err := resolveURL(urlTestCmd(""), &config.Config{URL: "mongodb://file:27017"})

		require.NoError(t, err)
		assert.Equal(t, "mongodb://file:27017", url)
	})

	t.Run("errors when nothing is set", func(t *testing.T) {
		_, err := resolveURL(urlTestCmd(""), &config.Config{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--url")
	})
}

func TestValidateDatabases(t *testing.T) {
	available := []string{"events", "orders", "users"}

	t.Run("accepts known names", func(t *testing.T) {
		assert.NoError(t, validateDatabases([]string{"orders", "users"}, available))
	})

	t.Run("rejects unknown names and lists the alternatives", func(t *testing.T) {
		err := validateDatabases([]string{"orders", "ghosts"}, available)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghosts")
		assert.NotContains(t, err.Error(), "not found: orders")
		assert.Contains(t, err.Error(), "events, orders, users")
	})

	t.Run("names every unknown database", func(t *testing.T) {
		err := validateDatabases([]string{"ghosts", "phantoms"}, available)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghosts, phantoms")
	})
}
