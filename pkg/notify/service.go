package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/notificationendpoint"
	"github.com/vivwell/api/pkg/metrics"
)

// Service fans a notification out to the configured chat webhooks and to the
// customer-managed generic endpoints. Delivery is best-effort: one attempt
// per destination, failures are logged and dropped, and nothing here ever
// fails the operation that produced the notification.
type Service struct {
	db         *ent.Client
	chats      []ChatClient
	httpClient *http.Client
}

// NewService creates a notification service. Chat clients for unset webhook
// URLs should simply not be passed in.
func NewService(db *ent.Client, chats ...ChatClient) *Service {
	return &Service{
		db:    db,
		chats: chats,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Dispatch delivers a notification everywhere it is subscribed. It returns
// nothing: per the pipeline contract, notification failures never surface.
func (s *Service) Dispatch(ctx context.Context, n Notification) {
	text := Format(n)

	for _, chat := range s.chats {
		if err := chat.SendMessage(ctx, text); err != nil {
			log.Printf("⚠️  %s notification failed (event: %s): %v", chat.Name(), n.Kind, err)
			metrics.NotificationFailuresTotal.Inc()
		}
	}

	endpoints, err := s.db.NotificationEndpoint.Query().
		Where(notificationendpoint.Active(true)).
		All(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to query notification endpoints for event %s: %v", n.Kind, err)
		return
	}

	for _, ep := range endpoints {
		if !subscribed(ep.Kinds, n.Kind) {
			continue
		}
		s.deliver(ctx, ep, n)
	}
}

// deliver posts one signed payload to one endpoint. Single attempt, no
// retries: a dead endpoint only costs its timeout.
func (s *Service) deliver(ctx context.Context, ep *ent.NotificationEndpoint, n Notification) {
	body, err := json.Marshal(n.payload(time.Now()))
	if err != nil {
		log.Printf("⚠️  Failed to marshal notification payload: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL, bytes.NewReader(body))
	if err != nil {
		log.Printf("⚠️  Failed to create notification request: %v", err)
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VivWell-Signature", Sign(body, ep.Secret))
	req.Header.Set("X-VivWell-Event", string(n.Kind))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("⚠️  Notification delivery failed: %s (event: %s): %v", ep.URL, n.Kind, err)
		metrics.NotificationFailuresTotal.Inc()
		s.recordResult(ep.ID, false)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("⚠️  Notification endpoint returned status %d: %s (event: %s)", resp.StatusCode, ep.URL, n.Kind)
		metrics.NotificationFailuresTotal.Inc()
		s.recordResult(ep.ID, false)
		return
	}

	s.recordResult(ep.ID, true)
}

// recordResult updates the delivery counters on an endpoint. Uses a fresh
// context so a canceled request context does not lose the bookkeeping.
func (s *Service) recordResult(endpointID int, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.db.NotificationEndpoint.UpdateOneID(endpointID).
		SetLastTriggeredAt(time.Now())
	if ok {
		update.AddSuccessCount(1)
	} else {
		update.AddFailureCount(1)
	}

	if _, err := update.Save(ctx); err != nil {
		log.Printf("⚠️  Failed to update notification endpoint counters: %v", err)
	}
}

// CreateEndpoint registers a new generic notification endpoint and generates
// its signing secret.
func (s *Service) CreateEndpoint(ctx context.Context, url string, kinds []string, description string) (*ent.NotificationEndpoint, error) {
	secret, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	ep, err := s.db.NotificationEndpoint.Create().
		SetURL(url).
		SetKinds(kinds).
		SetSecret(secret).
		SetDescription(description).
		SetActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification endpoint: %w", err)
	}

	return ep, nil
}

// ListEndpoints lists all configured endpoints, newest first.
func (s *Service) ListEndpoints(ctx context.Context) ([]*ent.NotificationEndpoint, error) {
	endpoints, err := s.db.NotificationEndpoint.Query().
		Order(ent.Desc(notificationendpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification endpoints: %w", err)
	}

	return endpoints, nil
}

// UpdateEndpoint updates URL, subscriptions or active flag. Nil means leave
// unchanged.
func (s *Service) UpdateEndpoint(ctx context.Context, id int, url *string, kinds []string, active *bool) (*ent.NotificationEndpoint, error) {
	update := s.db.NotificationEndpoint.UpdateOneID(id)

	if url != nil {
		update.SetURL(*url)
	}
	if kinds != nil {
		update.SetKinds(kinds)
	}
	if active != nil {
		update.SetActive(*active)
	}

	ep, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("notification endpoint not found")
		}
		return nil, fmt.Errorf("failed to update notification endpoint: %w", err)
	}

	return ep, nil
}

// DeleteEndpoint removes an endpoint.
func (s *Service) DeleteEndpoint(ctx context.Context, id int) error {
	if err := s.db.NotificationEndpoint.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("notification endpoint not found")
		}
		return fmt.Errorf("failed to delete notification endpoint: %w", err)
	}

	return nil
}

// Sign computes the hex HMAC-SHA256 signature for a payload.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature verifies a payload signature in constant time.
func VerifySignature(payload []byte, signature, secret string) bool {
	expected := Sign(payload, secret)
	return hmac.Equal([]byte(signature), []byte(expected))
}

func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func subscribed(kinds []string, kind Kind) bool {
	for _, k := range kinds {
		if k == string(kind) {
			return true
		}
	}
	return false
}
