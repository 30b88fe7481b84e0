package scoring

import (
	"net/url"
	"strings"
)

// Input carries the submitted form fields and resolved attribution a score
// is computed from. Absent optional fields are zero values.
type Input struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Company          string
	ServiceType      string
	EventDate        string
	AppointmentCount int
	Message          string

	// Resolved attribution for the visit.
	Source   string
	Campaign string

	// Raw referrer URL at submission time, independent of attribution.
	Referrer string
}

// Source bonuses: score points and conversion value base per channel.
var sourceBonuses = map[string]struct {
	score int
	value float64
}{
	"linkedin":  {15, 150},
	"facebook":  {10, 100},
	"instagram": {10, 100},
	"google":    {12, 120},
}

var linkedinDomains = []string{"linkedin.com", "lnkd.in"}

// Score computes the lead quality score and estimated conversion value.
// It is pure: the same input always yields the same result, and the score
// is clamped to [0, 100].
func Score(in Input) (int, float64) {
	score := 10 // every submission starts here
	value := 0.0

	if in.FirstName != "" && in.LastName != "" {
		score += 5
	}
	if in.Email != "" {
		score += 5
	}
	if in.Phone != "" {
		score += 10
	}
	if in.Company != "" {
		score += 5
	}

	if in.ServiceType != "" {
		score += 5
	}
	if in.EventDate != "" {
		score += 10
	}
	if in.AppointmentCount > 0 {
		score += 5
	}
	if len(in.Message) > 50 {
		score += 10
	}

	if bonus, ok := sourceBonuses[strings.ToLower(in.Source)]; ok {
		score += bonus.score
		value += bonus.value
	}

	// Campaign keyword bonuses are independent; one campaign can match both.
	campaign := strings.ToLower(in.Campaign)
	if strings.Contains(campaign, "holiday") {
		score += 5
		value += 25
	}
	if strings.Contains(campaign, "enterprise") {
		score += 10
		value += 50
	}

	// A LinkedIn referrer counts even when a UTM override points elsewhere.
	if referrerHostIn(in.Referrer, linkedinDomains) {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score, value
}

// referrerHostIn reports whether the referrer URL's host matches one of the
// given domains, including subdomains.
func referrerHostIn(referrer string, domains []string) bool {
	if referrer == "" {
		return false
	}

	u, err := url.Parse(referrer)
	if err != nil || u.Hostname() == "" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}

	return false
}
