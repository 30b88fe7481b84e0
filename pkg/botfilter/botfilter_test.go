package botfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      bool
	}{
		{"googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1)", true},
		{"linkedinbot", "LinkedInBot/1.0", true},
		{"mac safari", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15)", false},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"curl", "curl/8.4.0", true},
		{"wget", "Wget/1.21", true},
		{"python requests", "python-requests/2.31.0", true},
		{"headless chrome", "Mozilla/5.0 HeadlessChrome/120.0", true},
		{"lighthouse", "Mozilla/5.0 Chrome-Lighthouse", true},
		{"facebook preview", "facebookexternalhit/1.1", true},
		{"ahrefs", "Mozilla/5.0 (compatible; AhrefsBot/7.0)", true},
		{"uppercase bot", "SOMEBOT/1.0", true},
		{"windows edge", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Edg/120.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.userAgent))
		})
	}
}
