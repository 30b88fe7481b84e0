package attribution

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Store is the key-value slot attribution blobs live in. A missing key
// returns an empty string with a nil error. Production wiring uses Redis
// (pkg/cache); tests inject an in-memory fake.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Params holds the recognized UTM keys. Absent keys stay empty and are
// omitted from the stored blob.
type Params struct {
	Source   string `json:"utm_source,omitempty"`
	Medium   string `json:"utm_medium,omitempty"`
	Campaign string `json:"utm_campaign,omitempty"`
	Term     string `json:"utm_term,omitempty"`
	Content  string `json:"utm_content,omitempty"`
}

// IsZero reports whether no UTM key is set.
func (p Params) IsZero() bool {
	return p == Params{}
}

// storedBlob is the persisted wire format: one JSON object per visitor slot,
// expiration in epoch milliseconds.
type storedBlob struct {
	Params     Params `json:"params"`
	Expiration int64  `json:"expiration"`
}

// Record is the effective attribution for a single page view or submission.
type Record struct {
	Source         string
	Medium         string
	Campaign       string
	Term           string
	Content        string
	ReferrerDomain string
	CapturedAt     time.Time
	ExpiresAt      time.Time
}

// knownReferrers maps referrer hostnames to attribution sources for visits
// that carry no UTM parameters.
var knownReferrers = map[string]string{
	"facebook.com":    "facebook",
	"fb.com":          "facebook",
	"m.facebook.com":  "facebook",
	"instagram.com":   "instagram",
	"l.instagram.com": "instagram",
	"linkedin.com":    "linkedin",
	"lnkd.in":         "linkedin",
	"twitter.com":     "twitter",
	"x.com":           "twitter",
	"t.co":            "twitter",
	"youtube.com":     "youtube",
	"pinterest.com":   "pinterest",
	"tiktok.com":      "tiktok",
	"reddit.com":      "reddit",
	"google.com":      "google",
	"bing.com":        "bing",
	"duckduckgo.com":  "duckduckgo",
	"yahoo.com":       "yahoo",
}

// Extractor resolves the effective attribution for a visit and maintains the
// per-visitor stored blob.
type Extractor struct {
	store  Store
	window time.Duration
	now    func() time.Time
}

// NewExtractor creates an attribution extractor. A nil clock means time.Now.
func NewExtractor(store Store, window time.Duration, clock func() time.Time) *Extractor {
	if clock == nil {
		clock = time.Now
	}
	return &Extractor{
		store:  store,
		window: window,
		now:    clock,
	}
}

// Resolve determines the attribution for the current visit and persists the
// merged blob when the page URL carried UTM parameters. The stored blob is a
// single slot per visitor: last write wins, expired blobs are treated as
// absent and replaced wholesale.
func (e *Extractor) Resolve(ctx context.Context, visitorID, pageURL, referrer string) (Record, error) {
	now := e.now()
	urlParams := parseUTM(pageURL)

	stored, storedOK, err := e.load(ctx, visitorID, now)
	if err != nil {
		return Record{}, fmt.Errorf("failed to load attribution blob: %w", err)
	}

	rec := Record{
		CapturedAt:     now,
		ReferrerDomain: hostOf(referrer),
	}

	if !urlParams.IsZero() {
		// URL keys override stored keys one by one; stored values fill gaps.
		merged := merge(stored.Params, urlParams)
		expiresAt := now.Add(e.window)

		if err := e.save(ctx, visitorID, merged, expiresAt); err != nil {
			return Record{}, fmt.Errorf("failed to persist attribution blob: %w", err)
		}

		rec.applyParams(merged)
		rec.ExpiresAt = expiresAt
		return rec, nil
	}

	if storedOK {
		// No UTM keys on this visit: the stored record is used exactly as-is
		// and its expiry is not extended.
		rec.applyParams(stored.Params)
		rec.ExpiresAt = time.UnixMilli(stored.Expiration)
		return rec, nil
	}

	if referrer != "" {
		rec.Source = referrerSource(referrer)
		rec.Medium = "referral"
		return rec, nil
	}

	rec.Source = "direct"
	rec.Medium = "none"
	return rec, nil
}

// load reads the stored blob for a visitor, treating expired or malformed
// blobs as absent.
func (e *Extractor) load(ctx context.Context, visitorID string, now time.Time) (storedBlob, bool, error) {
	raw, err := e.store.Get(ctx, blobKey(visitorID))
	if err != nil {
		return storedBlob{}, false, err
	}
	if raw == "" {
		return storedBlob{}, false, nil
	}

	var blob storedBlob
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		return storedBlob{}, false, nil
	}
	if blob.Expiration <= now.UnixMilli() {
		return storedBlob{}, false, nil
	}

	return blob, true, nil
}

func (e *Extractor) save(ctx context.Context, visitorID string, params Params, expiresAt time.Time) error {
	blob := storedBlob{
		Params:     params,
		Expiration: expiresAt.UnixMilli(),
	}

	raw, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("failed to marshal attribution blob: %w", err)
	}

	return e.store.Set(ctx, blobKey(visitorID), string(raw), e.window)
}

func blobKey(visitorID string) string {
	return "attribution:" + visitorID
}

// merge overlays url onto stored key by key.
func merge(stored, url Params) Params {
	out := stored
	if url.Source != "" {
		out.Source = url.Source
	}
	if url.Medium != "" {
		out.Medium = url.Medium
	}
	if url.Campaign != "" {
		out.Campaign = url.Campaign
	}
	if url.Term != "" {
		out.Term = url.Term
	}
	if url.Content != "" {
		out.Content = url.Content
	}
	return out
}

func (r *Record) applyParams(p Params) {
	r.Source = p.Source
	r.Medium = p.Medium
	r.Campaign = p.Campaign
	r.Term = p.Term
	r.Content = p.Content
}

// parseUTM extracts the recognized UTM keys from a page URL. Unparseable
// URLs yield no parameters.
func parseUTM(pageURL string) Params {
	u, err := url.Parse(pageURL)
	if err != nil {
		return Params{}
	}

	q := u.Query()
	return Params{
		Source:   q.Get("utm_source"),
		Medium:   q.Get("utm_medium"),
		Campaign: q.Get("utm_campaign"),
		Term:     q.Get("utm_term"),
		Content:  q.Get("utm_content"),
	}
}

// referrerSource maps a referrer URL to a source tag. Hosts not in the known
// table fall back to the bare hostname so the channel is still visible in
// reporting.
func referrerSource(referrer string) string {
	host := hostOf(referrer)
	if host == "" {
		return "referral"
	}

	if src, ok := knownReferrers[host]; ok {
		return src
	}

	// Subdomain match (www.google.co.uk, l.facebook.com, ...).
	for domain, src := range knownReferrers {
		if strings.HasSuffix(host, "."+domain) || strings.HasPrefix(host, domain+".") {
			return src
		}
	}

	return host
}

func hostOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}
