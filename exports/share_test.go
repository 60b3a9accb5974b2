package exports

import (
	"context"
	"testing"
	"time"

	"next24/models"
	"next24/rdx"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// with the share store down, no success (and no URL) may be reported.
func TestCreateShareLinkFailsWhenStoreUnavailable(t *testing.T) {
	prev := rdx.Conn
	rdx.Conn = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdx.Conn = prev })

	it := &models.Itinerary{ItineraryID: "trip1", IsPublic: true}

	shareID, url, err := CreateShareLink(context.Background(), it)
	assert.Error(t, err)
	assert.Empty(t, shareID)
	assert.Empty(t, url)
}

func TestResolveShareUnknownID(t *testing.T) {
	prev := rdx.Conn
	rdx.Conn = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdx.Conn = prev })

	_, err := ResolveShare(context.Background(), "no-such-share")
	assert.Error(t, err)
}
