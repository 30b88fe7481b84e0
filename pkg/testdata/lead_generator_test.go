package testdata

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivwell/api/pkg/models"
)

type fakeSubmitter struct {
	received []models.SubmitLeadRequest
	err      error
}

func (f *fakeSubmitter) Submit(_ context.Context, req models.SubmitLeadRequest, _, _ string) (*models.LeadResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.received = append(f.received, req)
	return &models.LeadResponse{Email: req.Email}, nil
}

func TestGenerateSubmission(t *testing.T) {
	for i := 0; i < 20; i++ {
		req := GenerateSubmission(SubmissionGeneratorConfig{
			PhoneChance:   1,
			CompanyChance: 1,
			MessageChance: 1,
			UTMChance:     1,
		})

		assert.NotEmpty(t, req.FirstName)
		assert.NotEmpty(t, req.LastName)
		assert.Contains(t, req.Email, "@")
		assert.Equal(t, req.Email, strings.ToLower(req.Email))
		assert.NotEmpty(t, req.Phone)
		assert.NotEmpty(t, req.Company)
		assert.GreaterOrEqual(t, req.AppointmentCount, 5)
		assert.NotEmpty(t, req.Message)
		assert.Contains(t, req.PageURL, "utm_source=")
		assert.NotEmpty(t, req.VisitorID)
		assert.Equal(t, "website", req.Platform)
	}
}

func TestGenerateSubmission_UntaggedVisit(t *testing.T) {
	req := GenerateSubmission(SubmissionGeneratorConfig{UTMChance: 0})

	assert.NotContains(t, req.PageURL, "utm_source=")
	assert.NotEmpty(t, req.Referrer)
}

func TestGenerateSubmissions_Count(t *testing.T) {
	batch := GenerateSubmissions(SubmissionGeneratorConfig{Count: 7})
	assert.Len(t, batch, 7)
}

func TestSeedLeads(t *testing.T) {
	t.Run("pushes every submission through the submitter", func(t *testing.T) {
		submitter := &fakeSubmitter{}

		inserted, err := SeedLeads(context.Background(), submitter, 10)
		require.NoError(t, err)
		assert.Equal(t, 10, inserted)
		assert.Len(t, submitter.received, 10)
	})

	t.Run("errors when nothing could be inserted", func(t *testing.T) {
		submitter := &fakeSubmitter{err: errors.New("db down")}

		_, err := SeedLeads(context.Background(), submitter, 5)
		require.Error(t, err)
	})

	t.Run("zero count is a no-op", func(t *testing.T) {
		inserted, err := SeedLeads(context.Background(), &fakeSubmitter{}, 0)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})
}
