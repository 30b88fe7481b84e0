package botfilter

import "strings"

// patterns are matched case-insensitively as substrings of the user agent.
// This is a best-effort heuristic to keep crawlers out of the lead table,
// not a security boundary.
var patterns = []string{
	"bot",
	"crawler",
	"spider",
	"scraper",
	"slurp",
	"curl",
	"wget",
	"python-requests",
	"headless",
	"lighthouse",
	"facebookexternalhit",
	"whatsapp",
	"telegram",
	"pingdom",
	"phantomjs",
}

// Detect reports whether the user agent looks like an automated client.
// An empty user agent is treated as a bot.
func Detect(userAgent string) bool {
	if strings.TrimSpace(userAgent) == "" {
		return true
	}

	ua := strings.ToLower(userAgent)
	for _, p := range patterns {
		if strings.Contains(ua, p) {
			return true
		}
	}

	return false
}
