package rdx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyStable(t *testing.T) {
	type params struct {
		Origin      string
		Destination string
	}

	a := CacheKey("flightsearch", params{"NYC", "PAR"})
	b := CacheKey("flightsearch", params{"NYC", "PAR"})
	c := CacheKey("flightsearch", params{"NYC", "ROM"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "flightsearch:")
}

func TestCacheKeyPrefixSeparatesNamespaces(t *testing.T) {
	type params struct{ Destination string }

	assert.NotEqual(t,
		CacheKey("flightsearch", params{"PAR"}),
		CacheKey("hotelsearch", params{"PAR"}),
	)
}
