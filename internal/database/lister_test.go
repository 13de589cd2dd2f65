package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterAndSort(t *testing.T) {
	t.Run("filters reserved system databases", func(t *testing.T) {
		names := []string{"orders", "admin", "local", "users", "config"}

		result := FilterAndSort(names, false)

		assert.Equal(t, []string{"orders", "users"}, result)
	})

	t.Run("keeps system databases when requested", func(t *testing.T) {
		names := []string{"orders", "admin", "local", "users", "config"}

		result := FilterAndSort(names, true)

		assert.Equal(t, []string{"admin", "config", "local", "orders", "users"}, result)
	})

	t.Run("sorts alphabetically", func(t *testing.T) {
		result := FilterAndSort([]string{"zeta", "alpha", "mid"}, false)

		assert.Equal(t, []string{"alpha", "mid", "zeta"}, result)
	})

	t.Run("handles an empty list", func(t *testing.T) {
		result := FilterAndSort(nil, false)

		assert.Empty(t, result)
	})

	t.Run("server consisting only of system databases filters to nothing", func(t *testing.T) {
		result := FilterAndSort([]string{"admin", "config", "local"}, false)

		assert.Empty(t, result)
	})
}
