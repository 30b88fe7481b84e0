package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/vivwell/api/pkg/models"
)

// SubmissionGeneratorConfig configures fake form submission generation
type SubmissionGeneratorConfig struct {
	Count         int
	PhoneChance   float64 // 0.0-1.0 (probability of having phone)
	CompanyChance float64
	MessageChance float64
	UTMChance     float64 // probability of arriving from a tagged campaign
}

var serviceTypes = []string{
	"chair-massage", "wellness-day", "ergonomics-workshop",
	"flu-shots", "health-screening", "yoga-class",
}

var campaignSources = []struct {
	Source   string
	Medium   string
	Campaign string
}{
	{"linkedin", "cpc", "q3_corporate_wellness"},
	{"facebook", "paid", "spring_wellness"},
	{"instagram", "paid", "spring_wellness"},
	{"google", "cpc", "chair_massage_search"},
	{"newsletter", "email", "monthly_digest"},
}

var messageTemplates = []string{
	"We're looking for a wellness day for our %s office.",
	"Can you quote chair massage for roughly %d employees?",
	"Interested in a recurring program. Please call me.",
	"Our holiday party is coming up and we'd love on-site massages.",
	"HR asked me to compare corporate wellness vendors.",
}

// GenerateSubmission builds one fake form submission.
func GenerateSubmission(config SubmissionGeneratorConfig) models.SubmitLeadRequest {
	req := models.SubmitLeadRequest{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     strings.ToLower(gofakeit.Email()),
		Location:  gofakeit.City(),
		Platform:  "website",
	}

	if rand.Float64() < config.PhoneChance {
		req.Phone = gofakeit.Phone()
	}
	if rand.Float64() < config.CompanyChance {
		req.Company = gofakeit.Company()
		req.ServiceType = serviceTypes[rand.Intn(len(serviceTypes))]
		req.AppointmentCount = 5 + rand.Intn(80)
	}
	if rand.Float64() < config.MessageChance {
		tmpl := messageTemplates[rand.Intn(len(messageTemplates))]
		if strings.Contains(tmpl, "%d") {
			req.Message = fmt.Sprintf(tmpl, 10+rand.Intn(200))
		} else if strings.Contains(tmpl, "%s") {
			req.Message = fmt.Sprintf(tmpl, gofakeit.City())
		} else {
			req.Message = tmpl
		}
	}
	if rand.Float64() < config.UTMChance {
		src := campaignSources[rand.Intn(len(campaignSources))]
		req.PageURL = fmt.Sprintf("https://vivwell.co/?utm_source=%s&utm_medium=%s&utm_campaign=%s",
			src.Source, src.Medium, src.Campaign)
	} else {
		req.PageURL = "https://vivwell.co/contact"
		req.Referrer = "https://www.google.com/"
	}
	req.VisitorID = gofakeit.UUID()

	return req
}

// GenerateSubmissions builds a batch of fake submissions.
func GenerateSubmissions(config SubmissionGeneratorConfig) []models.SubmitLeadRequest {
	out := make([]models.SubmitLeadRequest, config.Count)
	for i := range out {
		out[i] = GenerateSubmission(config)
	}
	return out
}

// Submitter persists submissions; satisfied by the submissions service.
type Submitter interface {
	Submit(ctx context.Context, req models.SubmitLeadRequest, userAgent, clientIP string) (*models.LeadResponse, error)
}

// SeedLeads pushes generated submissions through the full pipeline so dev
// environments get realistic attribution and scores.
func SeedLeads(ctx context.Context, svc Submitter, count int) (int, error) {
	config := SubmissionGeneratorConfig{
		Count:         count,
		PhoneChance:   0.7,
		CompanyChance: 0.6,
		MessageChance: 0.5,
		UTMChance:     0.4,
	}

	inserted := 0
	for _, req := range GenerateSubmissions(config) {
		ua := gofakeit.UserAgent()
		ip := gofakeit.IPv4Address()
		if _, err := svc.Submit(ctx, req, ua, ip); err != nil {
			continue
		}
		inserted++
	}

	if inserted == 0 && count > 0 {
		return 0, fmt.Errorf("failed to seed any leads")
	}
	return inserted, nil
}
