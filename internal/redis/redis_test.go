package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDRESS not set")
	}
	ctx := context.Background()
	c := New(addr, "", "", "namaz-test:")
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	type payload struct {
		Fajr string `json:"fajr"`
	}

	var out payload
	found, err := c.Get(ctx, "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "27-Aug-2025", payload{Fajr: "04:41"}, time.Minute))
	found, err = c.Get(ctx, "27-Aug-2025", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "04:41", out.Fajr)
}
