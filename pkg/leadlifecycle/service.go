package leadlifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/lead"
	"github.com/vivwell/api/ent/leadstatushistory"
)

// Service handles lead follow-up status operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new lead lifecycle service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// LeadStatus represents valid lead statuses.
type LeadStatus string

const (
	StatusNew        LeadStatus = "new"
	StatusContacted  LeadStatus = "contacted"
	StatusFollowedUp LeadStatus = "followed_up"
	StatusClosed     LeadStatus = "closed"
)

// UpdateStatusRequest represents a request to update lead status.
// The normal path walks new → contacted → followed_up → closed, but moving
// backward is intentionally not rejected.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted followed_up closed"`
	Reason string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

// StatusHistoryResponse represents a status change event.
type StatusHistoryResponse struct {
	ID        int       `json:"id"`
	LeadID    int       `json:"lead_id"`
	ChangedBy string    `json:"changed_by"`
	OldStatus *string   `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadStatusResponse represents a lead's current status.
type LeadStatusResponse struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Status          string    `json:"status"`
	StatusChangedAt time.Time `json:"status_changed_at"`
}

// UpdateLeadStatus updates the status of a lead and records the change in
// history. Score, value and attribution are never touched here.
func (s *Service) UpdateLeadStatus(ctx context.Context, changedBy string, leadID int, req UpdateStatusRequest) (*LeadStatusResponse, error) {
	current, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	// No-op when the status is unchanged.
	if current.Status == lead.Status(req.Status) {
		return toStatusResponse(current), nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	oldStatus := string(current.Status)
	now := time.Now()

	updated, err := tx.Lead.
		UpdateOne(current).
		SetStatus(lead.Status(req.Status)).
		SetStatusChangedAt(now).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}

	historyBuilder := tx.LeadStatusHistory.
		Create().
		SetLeadID(leadID).
		SetChangedBy(changedBy).
		SetOldStatus(leadstatushistory.OldStatus(oldStatus)).
		SetNewStatus(leadstatushistory.NewStatus(req.Status))

	if req.Reason != "" {
		historyBuilder.SetReason(req.Reason)
	}

	if _, err := historyBuilder.Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toStatusResponse(updated), nil
}

// GetLeadStatusHistory retrieves the status change history for a lead,
// newest first.
func (s *Service) GetLeadStatusHistory(ctx context.Context, leadID int) ([]StatusHistoryResponse, error) {
	exists, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("lead not found")
	}

	history, err := s.client.LeadStatusHistory.
		Query().
		Where(leadstatushistory.LeadID(leadID)).
		Order(ent.Desc(leadstatushistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status history: %w", err)
	}

	response := make([]StatusHistoryResponse, len(history))
	for i, h := range history {
		var oldStatus *string
		if h.OldStatus != nil && *h.OldStatus != "" {
			os := string(*h.OldStatus)
			oldStatus = &os
		}

		var reason *string
		if h.Reason != "" {
			reason = &h.Reason
		}

		response[i] = StatusHistoryResponse{
			ID:        h.ID,
			LeadID:    h.LeadID,
			ChangedBy: h.ChangedBy,
			OldStatus: oldStatus,
			NewStatus: string(h.NewStatus),
			Reason:    reason,
			CreatedAt: h.CreatedAt,
		}
	}

	return response, nil
}

// GetStatusCounts returns the number of leads in each status.
func (s *Service) GetStatusCounts(ctx context.Context) (map[string]int, error) {
	statuses := []LeadStatus{StatusNew, StatusContacted, StatusFollowedUp, StatusClosed}
	counts := make(map[string]int)

	for _, status := range statuses {
		count, err := s.client.Lead.
			Query().
			Where(lead.StatusEQ(lead.Status(status))).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count leads for status %s: %w", status, err)
		}
		counts[string(status)] = count
	}

	return counts, nil
}

func toStatusResponse(l *ent.Lead) *LeadStatusResponse {
	return &LeadStatusResponse{
		ID:              l.ID,
		Name:            l.FirstName + " " + l.LastName,
		Email:           l.Email,
		Status:          string(l.Status),
		StatusChangedAt: l.StatusChangedAt,
	}
}
