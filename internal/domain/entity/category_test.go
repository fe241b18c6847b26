package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, category := range Categories() {
		parsed, err := ParseCategory(string(category))
		require.NoError(t, err)
		assert.Equal(t, category, parsed)
	}

	for _, raw := range []string{"", "museos", "Cafeterias", "cafeterias "} {
		_, err := ParseCategory(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}
