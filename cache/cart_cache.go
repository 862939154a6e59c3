package cart_cache

import (
	"sync"
	"time"

	"github.com/Modave-Commerce/modave-storefront-backend/services"
)

// TTL is how long an idle session keeps its cart. Carts live only in
// process memory and never survive a restart.
const TTL = 30 * time.Minute

type entry struct {
	cart     *services.Cart
	lastSeen time.Time
}

var (
	mu    sync.Mutex
	carts = make(map[string]*entry)

	// test hook
	now = time.Now
)

// GetOrCreate returns the cart bound to the session, creating an empty
// one on first use. Access refreshes the session's TTL.
func GetOrCreate(sessionID string) *services.Cart {
	mu.Lock()
	defer mu.Unlock()

	sweepLocked()

	e, ok := carts[sessionID]
	if !ok {
		e = &entry{cart: services.NewCart()}
		carts[sessionID] = e
	}
	e.lastSeen = now()
	return e.cart
}

// Get returns the session's cart without creating one.
func Get(sessionID string) (*services.Cart, bool) {
	mu.Lock()
	defer mu.Unlock()

	e, ok := carts[sessionID]
	if !ok || now().Sub(e.lastSeen) >= TTL {
		return nil, false
	}
	e.lastSeen = now()
	return e.cart, true
}

// Drop discards the session's cart.
func Drop(sessionID string) {
	mu.Lock()
	defer mu.Unlock()
	delete(carts, sessionID)
}

// Invalidate discards every session cart.
func Invalidate() {
	mu.Lock()
	defer mu.Unlock()
	carts = make(map[string]*entry)
}

// sweepLocked evicts idle sessions. Called opportunistically on
// GetOrCreate; session counts are small enough that a full scan is fine.
func sweepLocked() {
	cutoff := now().Add(-TTL)
	for id, e := range carts {
		if e.lastSeen.Before(cutoff) {
			delete(carts, id)
		}
	}
}
