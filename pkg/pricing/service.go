package pricing

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/proposal"
	"github.com/vivwell/api/pkg/notify"
)

// Notifier receives proposal lifecycle notifications.
type Notifier interface {
	Dispatch(ctx context.Context, n notify.Notification)
}

// Service handles proposal creation, pricing recalculation and lifecycle.
type Service struct {
	db       *ent.Client
	notifier Notifier
}

// NewService creates a new pricing service. notifier may be nil.
func NewService(db *ent.Client, notifier Notifier) *Service {
	return &Service{
		db:       db,
		notifier: notifier,
	}
}

// CreateProposalRequest represents a new proposal draft.
type CreateProposalRequest struct {
	CompanyName        string  `json:"company_name" validate:"required,min=1,max=200"`
	ContactName        string  `json:"contact_name" validate:"omitempty,max=200"`
	ContactEmail       string  `json:"contact_email" validate:"required,email"`
	ServiceType        string  `json:"service_type" validate:"required,max=100"`
	AppointmentCount   int     `json:"appointment_count" validate:"required,min=1,max=10000"`
	RatePerAppointment float64 `json:"rate_per_appointment" validate:"required,gt=0"`
	DiscountPct        float64 `json:"discount_pct" validate:"omitempty,min=0,max=100"`
}

// UpdateProposalRequest updates the priced fields of a draft. Nil means
// leave unchanged; the total is always recalculated.
type UpdateProposalRequest struct {
	AppointmentCount   *int     `json:"appointment_count" validate:"omitempty,min=1,max=10000"`
	RatePerAppointment *float64 `json:"rate_per_appointment" validate:"omitempty,gt=0"`
	DiscountPct        *float64 `json:"discount_pct" validate:"omitempty,min=0,max=100"`
}

// ProposalResponse represents a proposal in API responses.
type ProposalResponse struct {
	ID                   int     `json:"id"`
	CompanyName          string  `json:"company_name"`
	ContactName          string  `json:"contact_name,omitempty"`
	ContactEmail         string  `json:"contact_email"`
	ServiceType          string  `json:"service_type"`
	AppointmentCount     int     `json:"appointment_count"`
	RatePerAppointment   float64 `json:"rate_per_appointment"`
	DiscountPct          float64 `json:"discount_pct"`
	Total                float64 `json:"total"`
	Status               string  `json:"status"`
	ViewToken            string  `json:"view_token,omitempty"`
	StripeInvoiceID      string  `json:"stripe_invoice_id,omitempty"`
	DocusealSubmissionID string  `json:"docuseal_submission_id,omitempty"`
	CreatedAt            string  `json:"created_at"`
}

// Total computes the proposal total: appointments times rate, minus the
// percentage discount, rounded to cents. Deterministic so a proposal can be
// repriced at any time and land on the same number.
func Total(appointmentCount int, ratePerAppointment, discountPct float64) float64 {
	subtotal := float64(appointmentCount) * ratePerAppointment
	total := subtotal * (1 - discountPct/100)
	return math.Round(total*100) / 100
}

// Create creates a proposal draft with a fresh view token.
func (s *Service) Create(ctx context.Context, req CreateProposalRequest) (*ProposalResponse, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate view token: %w", err)
	}

	p, err := s.db.Proposal.Create().
		SetCompanyName(req.CompanyName).
		SetContactName(req.ContactName).
		SetContactEmail(req.ContactEmail).
		SetServiceType(req.ServiceType).
		SetAppointmentCount(req.AppointmentCount).
		SetRatePerAppointment(req.RatePerAppointment).
		SetDiscountPct(req.DiscountPct).
		SetTotal(Total(req.AppointmentCount, req.RatePerAppointment, req.DiscountPct)).
		SetViewToken(token).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	resp := toResponse(p, true)
	return &resp, nil
}

// Update reprices a proposal. Only drafts and sent proposals can change.
func (s *Service) Update(ctx context.Context, id int, req UpdateProposalRequest) (*ProposalResponse, error) {
	p, err := s.db.Proposal.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("proposal not found")
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	if p.Status != proposal.StatusDraft && p.Status != proposal.StatusSent {
		return nil, fmt.Errorf("proposal can no longer be repriced (status: %s)", p.Status)
	}

	count := p.AppointmentCount
	rate := p.RatePerAppointment
	discount := p.DiscountPct

	if req.AppointmentCount != nil {
		count = *req.AppointmentCount
	}
	if req.RatePerAppointment != nil {
		rate = *req.RatePerAppointment
	}
	if req.DiscountPct != nil {
		discount = *req.DiscountPct
	}

	updated, err := s.db.Proposal.UpdateOne(p).
		SetAppointmentCount(count).
		SetRatePerAppointment(rate).
		SetDiscountPct(discount).
		SetTotal(Total(count, rate, discount)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}

	resp := toResponse(updated, true)
	return &resp, nil
}

// List returns proposals, newest first.
func (s *Service) List(ctx context.Context) ([]ProposalResponse, error) {
	proposals, err := s.db.Proposal.Query().
		Order(ent.Desc(proposal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	out := make([]ProposalResponse, len(proposals))
	for i, p := range proposals {
		out[i] = toResponse(p, true)
	}

	return out, nil
}

// Get retrieves a proposal by ID.
func (s *Service) Get(ctx context.Context, id int) (*ProposalResponse, error) {
	p, err := s.db.Proposal.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("proposal not found")
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	resp := toResponse(p, true)
	return &resp, nil
}

// Send marks a draft as sent and notifies.
func (s *Service) Send(ctx context.Context, id int) (*ProposalResponse, error) {
	p, err := s.db.Proposal.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("proposal not found")
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	if p.Status != proposal.StatusDraft {
		return nil, fmt.Errorf("only draft proposals can be sent (status: %s)", p.Status)
	}

	updated, err := s.db.Proposal.UpdateOne(p).
		SetStatus(proposal.StatusSent).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark proposal sent: %w", err)
	}

	s.notifyStatus(ctx, updated, "sent")

	resp := toResponse(updated, true)
	return &resp, nil
}

// View retrieves a proposal by its public token for the client-facing page.
// The first view moves a sent proposal to viewed and stamps viewed_at.
func (s *Service) View(ctx context.Context, token string) (*ProposalResponse, error) {
	p, err := s.db.Proposal.Query().
		Where(proposal.ViewToken(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("proposal not found")
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	if p.Status == proposal.StatusSent && p.ViewedAt == nil {
		p, err = s.db.Proposal.UpdateOne(p).
			SetStatus(proposal.StatusViewed).
			SetViewedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark proposal viewed: %w", err)
		}

		s.notifyStatus(ctx, p, "viewed")
	}

	resp := toResponse(p, false)
	return &resp, nil
}

// Approve records client approval via the public token.
func (s *Service) Approve(ctx context.Context, token string) (*ProposalResponse, error) {
	p, err := s.db.Proposal.Query().
		Where(proposal.ViewToken(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("proposal not found")
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	switch p.Status {
	case proposal.StatusSent, proposal.StatusViewed:
		// approvable
	default:
		return nil, fmt.Errorf("proposal cannot be approved (status: %s)", p.Status)
	}

	updated, err := s.db.Proposal.UpdateOne(p).
		SetStatus(proposal.StatusApproved).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to approve proposal: %w", err)
	}

	s.notifyStatus(ctx, updated, "approved")

	resp := toResponse(updated, false)
	return &resp, nil
}

// MarkSigned moves a proposal to signed when its e-signature completes.
// Called from the DocuSeal webhook handler.
func (s *Service) MarkSigned(ctx context.Context, submissionID, signerEmail string) (*ent.Proposal, error) {
	p, err := s.db.Proposal.Query().
		Where(proposal.DocusealSubmissionID(submissionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("no proposal for submission %s", submissionID)
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}

	updated, err := s.db.Proposal.UpdateOne(p).
		SetStatus(proposal.StatusSigned).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark proposal signed: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Dispatch(ctx, notify.NewAgreementSigned(notify.AgreementEvent{
			ProposalID:   updated.ID,
			CompanyName:  updated.CompanyName,
			SubmissionID: submissionID,
			SignerEmail:  signerEmail,
		}))
	}

	return updated, nil
}

// MarkPaid moves a proposal to paid when its invoice settles. Called from
// the Stripe webhook handler.
func (s *Service) MarkPaid(ctx context.Context, invoiceID string, amountPaid float64) (*ent.Proposal, error) {
	p, err := s.db.Proposal.Query().
		Where(proposal.StripeInvoiceID(invoiceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("no proposal for invoice %s", invoiceID)
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}

	updated, err := s.db.Proposal.UpdateOne(p).
		SetStatus(proposal.StatusPaid).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark proposal paid: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Dispatch(ctx, notify.NewInvoicePaid(notify.InvoiceEvent{
			ProposalID:  updated.ID,
			CompanyName: updated.CompanyName,
			InvoiceID:   invoiceID,
			AmountPaid:  amountPaid,
		}))
	}

	return updated, nil
}

// LinkInvoice attaches a Stripe invoice to a proposal.
func (s *Service) LinkInvoice(ctx context.Context, id int, invoiceID string) error {
	_, err := s.db.Proposal.UpdateOneID(id).
		SetStripeInvoiceID(invoiceID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("proposal not found")
		}
		return fmt.Errorf("failed to link invoice: %w", err)
	}
	return nil
}

// LinkSubmission attaches a DocuSeal submission to a proposal.
func (s *Service) LinkSubmission(ctx context.Context, id int, submissionID string) error {
	_, err := s.db.Proposal.UpdateOneID(id).
		SetDocusealSubmissionID(submissionID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("proposal not found")
		}
		return fmt.Errorf("failed to link submission: %w", err)
	}
	return nil
}

func (s *Service) notifyStatus(ctx context.Context, p *ent.Proposal, status string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Dispatch(ctx, notify.NewProposalEvent(notify.ProposalEvent{
		ProposalID:  p.ID,
		CompanyName: p.CompanyName,
		Status:      status,
	}))
}

// toResponse converts an ent proposal. The view token is only included on
// the internal surface, never on the public one.
func toResponse(p *ent.Proposal, includeToken bool) ProposalResponse {
	resp := ProposalResponse{
		ID:                 p.ID,
		CompanyName:        p.CompanyName,
		ContactName:        p.ContactName,
		ContactEmail:       p.ContactEmail,
		ServiceType:        p.ServiceType,
		AppointmentCount:   p.AppointmentCount,
		RatePerAppointment: p.RatePerAppointment,
		DiscountPct:        p.DiscountPct,
		Total:              p.Total,
		Status:             string(p.Status),
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
	if includeToken {
		resp.ViewToken = p.ViewToken
		resp.StripeInvoiceID = p.StripeInvoiceID
		resp.DocusealSubmissionID = p.DocusealSubmissionID
	}
	return resp
}

func generateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
