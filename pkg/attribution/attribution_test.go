package attribution

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store. Missing keys return ("", nil).
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

// fakeClock returns a controllable now function.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

const window = 90 * 24 * time.Hour

func newTestExtractor() (*Extractor, *fakeStore, *fakeClock) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewExtractor(store, window, clock.Now), store, clock
}

func TestResolve_FirstVisitWithUTM(t *testing.T) {
	e, store, clock := newTestExtractor()
	ctx := context.Background()

	rec, err := e.Resolve(ctx, "v1",
		"https://vivwell.co/?utm_source=linkedin&utm_medium=cpc&utm_campaign=q3", "")
	require.NoError(t, err)

	assert.Equal(t, "linkedin", rec.Source)
	assert.Equal(t, "cpc", rec.Medium)
	assert.Equal(t, "q3", rec.Campaign)
	assert.Equal(t, clock.now.Add(window), rec.ExpiresAt)

	// The blob is persisted with epoch-ms expiration.
	var blob storedBlob
	require.NoError(t, json.Unmarshal([]byte(store.data["attribution:v1"]), &blob))
	assert.Equal(t, "linkedin", blob.Params.Source)
	assert.Equal(t, clock.now.Add(window).UnixMilli(), blob.Expiration)
}

func TestResolve_MergeKeepsStoredKeysURLOverrides(t *testing.T) {
	e, _, _ := newTestExtractor()
	ctx := context.Background()

	_, err := e.Resolve(ctx, "v1",
		"https://vivwell.co/?utm_source=facebook&utm_medium=paid&utm_term=wellness", "")
	require.NoError(t, err)

	// Second tagged visit overrides source/campaign but the stored term
	// survives because this URL doesn't carry one.
	rec, err := e.Resolve(ctx, "v1",
		"https://vivwell.co/?utm_source=google&utm_campaign=search", "")
	require.NoError(t, err)

	assert.Equal(t, "google", rec.Source)
	assert.Equal(t, "paid", rec.Medium)
	assert.Equal(t, "search", rec.Campaign)
	assert.Equal(t, "wellness", rec.Term)
}

func TestResolve_StoredBlobUsedAsIsWithoutUTM(t *testing.T) {
	e, store, clock := newTestExtractor()
	ctx := context.Background()

	_, err := e.Resolve(ctx, "v1", "https://vivwell.co/?utm_source=linkedin", "")
	require.NoError(t, err)
	saved := store.data["attribution:v1"]

	clock.Advance(24 * time.Hour)

	// A plain visit reads the stored record without rewriting it or
	// extending its expiry.
	rec, err := e.Resolve(ctx, "v1", "https://vivwell.co/contact", "")
	require.NoError(t, err)

	assert.Equal(t, "linkedin", rec.Source)
	assert.Equal(t, saved, store.data["attribution:v1"])

	var blob storedBlob
	require.NoError(t, json.Unmarshal([]byte(saved), &blob))
	assert.Equal(t, blob.Expiration, rec.ExpiresAt.UnixMilli())
}

func TestResolve_ExpiredBlobTreatedAsAbsent(t *testing.T) {
	e, _, clock := newTestExtractor()
	ctx := context.Background()

	_, err := e.Resolve(ctx, "v1", "https://vivwell.co/?utm_source=facebook", "")
	require.NoError(t, err)

	clock.Advance(window + time.Minute)

	rec, err := e.Resolve(ctx, "v1", "https://vivwell.co/contact", "")
	require.NoError(t, err)

	assert.Equal(t, "direct", rec.Source)
	assert.Equal(t, "none", rec.Medium)
}

func TestResolve_ReferrerFallback(t *testing.T) {
	tests := []struct {
		name       string
		referrer   string
		wantSource string
	}{
		{"facebook", "https://www.facebook.com/groups/hr", "facebook"},
		{"facebook share", "https://l.facebook.com/l.php?u=x", "facebook"},
		{"instagram", "https://l.instagram.com/", "instagram"},
		{"linkedin", "https://www.linkedin.com/feed/", "linkedin"},
		{"linkedin short", "https://lnkd.in/xyz", "linkedin"},
		{"twitter", "https://t.co/abc", "twitter"},
		{"google", "https://www.google.com/search?q=chair+massage", "google"},
		{"bing", "https://www.bing.com/", "bing"},
		{"unknown host keeps hostname", "https://blog.hrweekly.example/post", "blog.hrweekly.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestExtractor()

			rec, err := e.Resolve(context.Background(), "v1", "https://vivwell.co/contact", tt.referrer)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSource, rec.Source)
			assert.Equal(t, "referral", rec.Medium)
		})
	}
}

func TestResolve_ReferrerDoesNotPersist(t *testing.T) {
	e, store, _ := newTestExtractor()

	_, err := e.Resolve(context.Background(), "v1", "https://vivwell.co/contact", "https://www.facebook.com/")
	require.NoError(t, err)

	assert.Empty(t, store.data, "referrer-only visits must not write the blob")
}

func TestResolve_DirectVisit(t *testing.T) {
	e, _, _ := newTestExtractor()

	rec, err := e.Resolve(context.Background(), "v1", "https://vivwell.co/", "")
	require.NoError(t, err)

	assert.Equal(t, "direct", rec.Source)
	assert.Equal(t, "none", rec.Medium)
	assert.True(t, rec.ExpiresAt.IsZero())
}

func TestResolve_UTMOverridesStoredAndReferrer(t *testing.T) {
	e, _, _ := newTestExtractor()
	ctx := context.Background()

	_, err := e.Resolve(ctx, "v1", "https://vivwell.co/?utm_source=facebook", "")
	require.NoError(t, err)

	rec, err := e.Resolve(ctx, "v1",
		"https://vivwell.co/?utm_source=newsletter&utm_medium=email",
		"https://www.linkedin.com/feed/")
	require.NoError(t, err)

	assert.Equal(t, "newsletter", rec.Source)
	assert.Equal(t, "email", rec.Medium)
	assert.Equal(t, "linkedin.com", rec.ReferrerDomain)
}

func TestResolve_MalformedBlobIgnored(t *testing.T) {
	e, store, _ := newTestExtractor()
	store.data["attribution:v1"] = "{not json"

	rec, err := e.Resolve(context.Background(), "v1", "https://vivwell.co/", "")
	require.NoError(t, err)

	assert.Equal(t, "direct", rec.Source)
}

func TestResolve_StoreErrorPropagates(t *testing.T) {
	store := newFakeStore()
	store.err = assert.AnError
	e := NewExtractor(store, window, nil)

	_, err := e.Resolve(context.Background(), "v1", "https://vivwell.co/", "")
	assert.Error(t, err)
}
