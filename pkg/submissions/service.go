package submissions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vivwell/api/ent"
	entlead "github.com/vivwell/api/ent/lead"
	"github.com/vivwell/api/pkg/attribution"
	"github.com/vivwell/api/pkg/botfilter"
	"github.com/vivwell/api/pkg/metrics"
	"github.com/vivwell/api/pkg/models"
	"github.com/vivwell/api/pkg/notify"
	"github.com/vivwell/api/pkg/phone"
	"github.com/vivwell/api/pkg/scoring"
)

var (
	// ErrBotRejected is returned when the user agent looks automated. The
	// caller should answer with a generic "not allowed" and nothing else.
	ErrBotRejected = errors.New("submission not allowed")
	// ErrRateLimited is returned when the email is inside its cool-down
	// window.
	ErrRateLimited = errors.New("please wait before submitting again")
)

// Notifier receives the finalized lead record after persistence. Dispatch is
// best-effort and must never fail the submission.
type Notifier interface {
	Dispatch(ctx context.Context, n notify.Notification)
}

// Mailer sends the post-submission emails. Both calls are best-effort.
type Mailer interface {
	SendLeadConfirmation(ctx context.Context, toEmail, toName string) error
	SendLeadAlert(ctx context.Context, lead models.LeadResponse) error
}

// Alerter pushes an out-of-band alert for leads above the score threshold.
type Alerter interface {
	SendHighScoreAlert(ctx context.Context, lead models.LeadResponse) error
}

// Service runs the submission pipeline: attribution, bot filter, gate,
// scoring, persistence, then fire-and-forget fanout.
type Service struct {
	db        *ent.Client
	extractor *attribution.Extractor
	gate      *Gate

	// All optional; nil disables the corresponding fanout step.
	notifier Notifier
	mailer   Mailer
	alerter  Alerter

	highScoreThreshold int
}

// NewService creates the submission pipeline service.
func NewService(db *ent.Client, extractor *attribution.Extractor, gate *Gate) *Service {
	return &Service{
		db:        db,
		extractor: extractor,
		gate:      gate,
	}
}

// WithNotifier wires the notification fanout.
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

// WithMailer wires the confirmation/alert emails.
func (s *Service) WithMailer(m Mailer) *Service {
	s.mailer = m
	return s
}

// WithAlerter wires the high-score SMS alert.
func (s *Service) WithAlerter(a Alerter, threshold int) *Service {
	s.alerter = a
	s.highScoreThreshold = threshold
	return s
}

// Submit runs one submission through the pipeline. The user agent and client
// IP come from the HTTP layer; the visitor ID (falling back to the client
// IP) keys the attribution slot.
func (s *Service) Submit(ctx context.Context, req models.SubmitLeadRequest, userAgent, clientIP string) (*models.LeadResponse, error) {
	visitorKey := req.VisitorID
	if visitorKey == "" {
		visitorKey = clientIP
	}

	attr, err := s.extractor.Resolve(ctx, visitorKey, req.PageURL, req.Referrer)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to resolve attribution: %w", err)
	}

	if botfilter.Detect(userAgent) {
		metrics.SubmissionsTotal.WithLabelValues("bot").Inc()
		return nil, ErrBotRejected
	}

	allowed, err := s.gate.Allow(ctx, req.Email)
	if err != nil {
		// The gate is advisory; if its store is unreachable, let the
		// submission through rather than losing a lead.
		log.Printf("⚠️  Submission gate check failed for %s: %v", req.Email, err)
		allowed = true
	}
	if !allowed {
		metrics.SubmissionsTotal.WithLabelValues("rate_limited").Inc()
		return nil, ErrRateLimited
	}

	score, value := scoring.Score(scoring.Input{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Company:          req.Company,
		ServiceType:      req.ServiceType,
		EventDate:        req.EventDate,
		AppointmentCount: req.AppointmentCount,
		Message:          req.Message,
		Source:           attr.Source,
		Campaign:         attr.Campaign,
		Referrer:         req.Referrer,
	})

	lead, err := s.persist(ctx, req, attr, userAgent, score, value)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to persist lead: %w", err)
	}

	// Only an accepted, persisted submission arms the cool-down; a failed
	// persist above leaves the user free to retry immediately.
	if err := s.gate.Record(ctx, req.Email); err != nil {
		log.Printf("⚠️  Failed to record submission gate timestamp for %s: %v", req.Email, err)
	}

	metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()

	resp := toLeadResponse(lead)

	// Fanout is fire-and-forget: the submitter sees success as soon as the
	// lead is stored.
	go s.fanout(resp)

	return &resp, nil
}

func (s *Service) persist(ctx context.Context, req models.SubmitLeadRequest, attr attribution.Record, userAgent string, score int, value float64) (*ent.Lead, error) {
	create := s.db.Lead.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetEmail(req.Email).
		SetLeadScore(score).
		SetConversionValue(value)

	if req.Phone != "" {
		create.SetPhone(phone.Normalize(req.Phone, phone.DefaultRegion))
	}
	if req.Company != "" {
		create.SetCompany(req.Company)
	}
	if req.Location != "" {
		create.SetLocation(req.Location)
	}
	if req.ServiceType != "" {
		create.SetServiceType(req.ServiceType)
	}
	if req.EventDate != "" {
		if d, err := time.Parse("2006-01-02", req.EventDate); err == nil {
			create.SetEventDate(d)
		}
	}
	if req.AppointmentCount > 0 {
		create.SetAppointmentCount(req.AppointmentCount)
	}
	if req.Message != "" {
		create.SetMessage(req.Message)
	}
	if req.Platform != "" {
		create.SetPlatform(entlead.Platform(req.Platform))
	}
	if req.CampaignID != "" {
		create.SetCampaignID(req.CampaignID)
	}
	if req.AdSetID != "" {
		create.SetAdSetID(req.AdSetID)
	}
	if req.AdID != "" {
		create.SetAdID(req.AdID)
	}

	if attr.Source != "" {
		create.SetUtmSource(attr.Source)
	}
	if attr.Medium != "" {
		create.SetUtmMedium(attr.Medium)
	}
	if attr.Campaign != "" {
		create.SetUtmCampaign(attr.Campaign)
	}
	if attr.Term != "" {
		create.SetUtmTerm(attr.Term)
	}
	if attr.Content != "" {
		create.SetUtmContent(attr.Content)
	}
	if req.Referrer != "" {
		create.SetReferrer(req.Referrer)
	}
	if userAgent != "" {
		create.SetUserAgent(userAgent)
	}

	return create.Save(ctx)
}

// fanout runs the best-effort post-persist steps on a detached context so an
// early client disconnect cannot cancel them.
func (s *Service) fanout(lead models.LeadResponse) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.notifier != nil {
		s.notifier.Dispatch(ctx, notify.NewLead(notify.LeadEvent{
			ID:              lead.ID,
			Name:            lead.FirstName + " " + lead.LastName,
			Email:           lead.Email,
			Company:         lead.Company,
			ServiceType:     lead.ServiceType,
			Source:          lead.UTMSource,
			Campaign:        lead.UTMCampaign,
			LeadScore:       lead.LeadScore,
			ConversionValue: lead.ConversionValue,
		}))
	}

	if s.mailer != nil {
		if err := s.mailer.SendLeadConfirmation(ctx, lead.Email, lead.FirstName); err != nil {
			log.Printf("⚠️  Failed to send lead confirmation email to %s: %v", lead.Email, err)
		}
		if err := s.mailer.SendLeadAlert(ctx, lead); err != nil {
			log.Printf("⚠️  Failed to send internal lead alert: %v", err)
		}
	}

	if s.alerter != nil && lead.LeadScore >= s.highScoreThreshold {
		if err := s.alerter.SendHighScoreAlert(ctx, lead); err != nil {
			log.Printf("⚠️  Failed to send high-score SMS alert: %v", err)
		}
	}
}

func toLeadResponse(l *ent.Lead) models.LeadResponse {
	resp := models.LeadResponse{
		ID:              l.ID,
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Email:           l.Email,
		Phone:           l.Phone,
		Company:         l.Company,
		Location:        l.Location,
		ServiceType:     l.ServiceType,
		Message:         l.Message,
		Platform:        string(l.Platform),
		CampaignID:      l.CampaignID,
		AdSetID:         l.AdSetID,
		AdID:            l.AdID,
		Status:          string(l.Status),
		UTMSource:       l.UtmSource,
		UTMMedium:       l.UtmMedium,
		UTMCampaign:     l.UtmCampaign,
		UTMTerm:         l.UtmTerm,
		UTMContent:      l.UtmContent,
		Referrer:        l.Referrer,
		UserAgent:       l.UserAgent,
		LeadScore:       l.LeadScore,
		ConversionValue: l.ConversionValue,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
	}

	if l.EventDate != nil {
		resp.EventDate = l.EventDate.Format("2006-01-02")
	}
	if l.AppointmentCount > 0 {
		resp.AppointmentCount = l.AppointmentCount
	}

	return resp
}

// List returns leads for the sales dashboard, newest first.
func (s *Service) List(ctx context.Context, req models.LeadListRequest) (*models.LeadListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 50
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	query := s.db.Lead.Query()

	if req.Status != "" {
		query = query.Where(entlead.StatusEQ(entlead.Status(req.Status)))
	}
	if req.Source != "" {
		query = query.Where(entlead.UtmSourceEQ(req.Source))
	}
	if req.MinScore > 0 {
		query = query.Where(entlead.LeadScoreGTE(req.MinScore))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	totalPages := (total + req.Limit - 1) / req.Limit

	leads, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(entlead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}

	data := make([]models.LeadResponse, len(leads))
	for i, l := range leads {
		data[i] = toLeadResponse(l)
	}

	return &models.LeadListResponse{
		Data: data,
		Pagination: models.PaginationInfo{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// GetByID retrieves a single lead.
func (s *Service) GetByID(ctx context.Context, id int) (*models.LeadResponse, error) {
	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	resp := toLeadResponse(l)
	return &resp, nil
}
