package actions

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultConfirmTTL is how long a delete confirmation stays valid
const DefaultConfirmTTL = 2 * time.Minute

type pendingDelete struct {
	resource string
	targetID string
	extraID  string
	expires  time.Time
}

// Confirmer makes destructive actions two-phase: Request records the intent
// and hands out a token, only Confirm with a live token releases the target.
// No mutation may fire without this exchange.
type Confirmer struct {
	mu      sync.Mutex
	pending map[string]pendingDelete
	ttl     time.Duration
	now     func() time.Time
}

// NewConfirmer creates a confirmer with the given token lifetime
func NewConfirmer(ttl time.Duration) *Confirmer {
	if ttl <= 0 {
		ttl = DefaultConfirmTTL
	}
	return &Confirmer{
		pending: make(map[string]pendingDelete),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Request records a pending deletion of (resource, targetID) and returns the
// confirmation token. extraID carries a secondary key for composite targets.
func (c *Confirmer) Request(resource, targetID, extraID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweep()

	token := uuid.NewString()
	c.pending[token] = pendingDelete{
		resource: resource,
		targetID: targetID,
		extraID:  extraID,
		expires:  c.now().Add(c.ttl),
	}
	return token
}

// Confirm consumes a token, returning the recorded target. A token that is
// unknown, expired or issued for another resource confirms nothing. A
// resource mismatch leaves the pending entry intact, only a successful
// consume, a cancel or expiry removes it.
func (c *Confirmer) Confirm(resource, token string) (targetID, extraID string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, found := c.pending[token]
	if !found {
		return "", "", false
	}
	if c.now().After(p.expires) {
		delete(c.pending, token)
		return "", "", false
	}
	if p.resource != resource {
		return "", "", false
	}

	delete(c.pending, token)
	return p.targetID, p.extraID, true
}

// Cancel discards a pending confirmation without acting on it
func (c *Confirmer) Cancel(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, token)
}

// sweep drops expired entries, caller holds the lock
func (c *Confirmer) sweep() {
	now := c.now()
	for token, p := range c.pending {
		if now.After(p.expires) {
			delete(c.pending, token)
		}
	}
}
