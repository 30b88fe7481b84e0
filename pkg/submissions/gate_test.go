package submissions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	data map[string]string
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.data[key], nil
}

func (f *fakeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	return nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestGate(window time.Duration) (*Gate, *fakeStore, *fakeClock) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewGate(store, window, clock.Now), store, clock
}

func TestGate_FirstSubmissionAllowed(t *testing.T) {
	gate, _, _ := newTestGate(5 * time.Minute)

	ok, err := gate.Allow(context.Background(), "dana@acme.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGate_SecondSubmissionInsideWindowRejected(t *testing.T) {
	gate, _, clock := newTestGate(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, gate.Record(ctx, "dana@acme.com"))

	clock.Advance(2 * time.Minute)

	ok, err := gate.Allow(ctx, "dana@acme.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGate_AllowedAgainAfterWindow(t *testing.T) {
	gate, _, clock := newTestGate(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, gate.Record(ctx, "dana@acme.com"))

	clock.Advance(5*time.Minute + time.Second)

	ok, err := gate.Allow(ctx, "dana@acme.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGate_EmailNormalized(t *testing.T) {
	gate, _, _ := newTestGate(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, gate.Record(ctx, "Dana@Acme.com "))

	ok, err := gate.Allow(ctx, "dana@acme.com")
	require.NoError(t, err)
	assert.False(t, ok, "case and whitespace variants share one slot")
}

func TestGate_DifferentEmailsIndependent(t *testing.T) {
	gate, _, _ := newTestGate(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, gate.Record(ctx, "dana@acme.com"))

	ok, err := gate.Allow(ctx, "sam@acme.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGate_AllowDoesNotRecord(t *testing.T) {
	gate, store, _ := newTestGate(5 * time.Minute)

	_, err := gate.Allow(context.Background(), "dana@acme.com")
	require.NoError(t, err)
	assert.Empty(t, store.data)
}

func TestGate_UnreadableTimestampTreatedAsAbsent(t *testing.T) {
	gate, store, _ := newTestGate(5 * time.Minute)
	store.data["submission-gate:dana@acme.com"] = "garbage"

	ok, err := gate.Allow(context.Background(), "dana@acme.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGate_StoreErrorSurfaces(t *testing.T) {
	gate, store, _ := newTestGate(5 * time.Minute)
	store.err = assert.AnError

	_, err := gate.Allow(context.Background(), "dana@acme.com")
	assert.Error(t, err)
}
