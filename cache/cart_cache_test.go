package cart_cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

func withFrozenClock(t *testing.T) func(d time.Duration) {
	t.Helper()

	current := time.Now()
	now = func() time.Time { return current }
	t.Cleanup(func() {
		now = time.Now
		Invalidate()
	})
	Invalidate()

	return func(d time.Duration) { current = current.Add(d) }
}

func TestGetOrCreate_ReturnsSameCartPerSession(t *testing.T) {
	withFrozenClock(t)

	a := GetOrCreate("session-a")
	require.NotNil(t, a)
	require.NoError(t, a.AddItem(models.Product{ID: 1, Price: 10}, "M", "Black", 1))

	again := GetOrCreate("session-a")
	assert.Same(t, a, again)
	assert.Equal(t, 1, again.ItemCount())

	b := GetOrCreate("session-b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 0, b.ItemCount())
}

func TestGet_DoesNotCreate(t *testing.T) {
	withFrozenClock(t)

	_, ok := Get("missing")
	assert.False(t, ok)

	created := GetOrCreate("present")
	got, ok := Get("present")
	require.True(t, ok)
	assert.Same(t, created, got)
}

func TestIdleSessionsExpire(t *testing.T) {
	advance := withFrozenClock(t)

	stale := GetOrCreate("stale")
	require.NoError(t, stale.AddItem(models.Product{ID: 1, Price: 10}, "", "", 1))

	advance(TTL + time.Minute)

	_, ok := Get("stale")
	assert.False(t, ok)

	// a fresh GetOrCreate sweeps the dead entry and starts over
	fresh := GetOrCreate("stale")
	assert.Equal(t, 0, fresh.ItemCount())
}

func TestAccessRefreshesTTL(t *testing.T) {
	advance := withFrozenClock(t)

	cart := GetOrCreate("active")
	require.NoError(t, cart.AddItem(models.Product{ID: 1, Price: 10}, "", "", 1))

	advance(TTL - time.Minute)
	_, ok := Get("active") // touch
	require.True(t, ok)

	advance(TTL - time.Minute)
	got, ok := Get("active")
	require.True(t, ok)
	assert.Equal(t, 1, got.ItemCount())
}

func TestDrop(t *testing.T) {
	withFrozenClock(t)

	GetOrCreate("doomed")
	Drop("doomed")

	_, ok := Get("doomed")
	assert.False(t, ok)
}
