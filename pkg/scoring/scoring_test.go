package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_FullLinkedInHolidaySubmission(t *testing.T) {
	// Every form field filled, LinkedIn campaign with a holiday promo.
	in := Input{
		FirstName:   "Dana",
		LastName:    "Rivera",
		Email:       "dana@acme.com",
		Phone:       "+13105550134",
		Company:     "Acme Corp",
		ServiceType: "chair-massage",
		EventDate:   "2026-12-18",
		Message:     strings.Repeat("We need massages for our holiday party ", 2), // > 50 chars
		Source:      "linkedin",
		Campaign:    "holiday-2025",
	}

	score, value := Score(in)

	assert.Equal(t, 80, score)
	assert.Equal(t, 175.0, value)
}

func TestScore_MinimalDirectSubmission(t *testing.T) {
	in := Input{
		FirstName: "Sam",
		LastName:  "Ortiz",
		Email:     "sam@example.com",
		Source:    "direct",
	}

	score, value := Score(in)

	assert.Equal(t, 20, score)
	assert.Equal(t, 0.0, value)
}

func TestScore_SourceBonuses(t *testing.T) {
	base := Input{FirstName: "A", LastName: "B", Email: "a@b.com"} // 20 points

	tests := []struct {
		source    string
		wantScore int
		wantValue float64
	}{
		{"linkedin", 35, 150},
		{"facebook", 30, 100},
		{"instagram", 30, 100},
		{"google", 32, 120},
		{"LinkedIn", 35, 150}, // case-insensitive
		{"newsletter", 20, 0},
		{"direct", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			in := base
			in.Source = tt.source

			score, value := Score(in)

			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestScore_CampaignKeywordsStack(t *testing.T) {
	in := Input{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Source:    "google",
		Campaign:  "enterprise-holiday-blast",
	}

	score, value := Score(in)

	// 20 + 12 (google) + 5 (holiday) + 10 (enterprise)
	assert.Equal(t, 47, score)
	// 120 + 25 + 50
	assert.Equal(t, 195.0, value)
}

func TestScore_LinkedInReferrerBonus(t *testing.T) {
	in := Input{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Referrer:  "https://www.linkedin.com/feed/",
	}

	score, _ := Score(in)
	assert.Equal(t, 25, score)

	// The referrer bonus applies even when a UTM override points elsewhere.
	in.Source = "google"
	score, _ = Score(in)
	assert.Equal(t, 37, score)

	// Shortener domain counts too.
	in.Source = ""
	in.Referrer = "https://lnkd.in/abc123"
	score, _ = Score(in)
	assert.Equal(t, 25, score)

	// Lookalike domains do not.
	in.Referrer = "https://notlinkedin.com/feed"
	score, _ = Score(in)
	assert.Equal(t, 20, score)
}

func TestScore_MessageLengthThreshold(t *testing.T) {
	in := Input{FirstName: "A", LastName: "B", Email: "a@b.com"}

	in.Message = strings.Repeat("x", 50)
	score, _ := Score(in)
	assert.Equal(t, 20, score, "50 chars is not over the threshold")

	in.Message = strings.Repeat("x", 51)
	score, _ = Score(in)
	assert.Equal(t, 30, score)
}

func TestScore_ClampsAt100(t *testing.T) {
	in := Input{
		FirstName:        "Dana",
		LastName:         "Rivera",
		Email:            "dana@acme.com",
		Phone:            "+13105550134",
		Company:          "Acme Corp",
		ServiceType:      "wellness-day",
		EventDate:        "2026-12-18",
		AppointmentCount: 40,
		Message:          strings.Repeat("long message ", 10),
		Source:           "linkedin",
		Campaign:         "enterprise-holiday",
		Referrer:         "https://linkedin.com/company/vivwell",
	}

	score, value := Score(in)

	assert.Equal(t, 100, score)
	assert.Equal(t, 225.0, value)
}

func TestScore_Deterministic(t *testing.T) {
	in := Input{
		FirstName: "Sam",
		LastName:  "Ortiz",
		Email:     "sam@example.com",
		Phone:     "+13105550199",
		Source:    "facebook",
	}

	s1, v1 := Score(in)
	s2, v2 := Score(in)

	assert.Equal(t, s1, s2)
	assert.Equal(t, v1, v2)
}
