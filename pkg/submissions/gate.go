package submissions

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// Store is the key-value slot the gate keeps last-submission timestamps in.
// A missing key returns ("", nil). Production wiring uses Redis (pkg/cache).
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Gate enforces a per-email cool-down between accepted submissions. It is
// advisory: it dampens accidental double-submits, it does not defend against
// a determined adversary.
type Gate struct {
	store  Store
	window time.Duration
	now    func() time.Time
}

// NewGate creates a submission gate. A nil clock means time.Now.
func NewGate(store Store, window time.Duration, clock func() time.Time) *Gate {
	if clock == nil {
		clock = time.Now
	}
	return &Gate{
		store:  store,
		window: window,
		now:    clock,
	}
}

// Allow reports whether a submission for this email is inside the cool-down
// window. It does not record anything; call Record once the submission has
// actually been persisted.
func (g *Gate) Allow(ctx context.Context, email string) (bool, error) {
	raw, err := g.store.Get(ctx, gateKey(email))
	if err != nil {
		return false, err
	}
	if raw == "" {
		return true, nil
	}

	last, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Unreadable timestamp: treat as absent.
		return true, nil
	}

	return g.now().Sub(time.Unix(last, 0)) > g.window, nil
}

// Record stores now as the last accepted submission time for this email.
func (g *Gate) Record(ctx context.Context, email string) error {
	ts := strconv.FormatInt(g.now().Unix(), 10)
	return g.store.Set(ctx, gateKey(email), ts, g.window)
}

func gateKey(email string) string {
	return "submission-gate:" + strings.ToLower(strings.TrimSpace(email))
}
