package phone

import (
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed for numbers submitted without a country prefix.
const DefaultRegion = "US"

// Normalize returns the E.164 form of a submitted phone number. Numbers that
// cannot be parsed or are not valid are returned unchanged: the lead is
// stored either way, normalization is only a bonus.
func Normalize(number, region string) string {
	if number == "" {
		return ""
	}
	if region == "" {
		region = DefaultRegion
	}

	parsed, err := phonenumbers.Parse(number, region)
	if err != nil {
		return number
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return number
	}

	return phonenumbers.Format(parsed, phonenumbers.E164)
}

// IsValid reports whether the number parses as a valid phone number for the
// region.
func IsValid(number, region string) bool {
	if region == "" {
		region = DefaultRegion
	}

	parsed, err := phonenumbers.Parse(number, region)
	if err != nil {
		return false
	}

	return phonenumbers.IsValidNumber(parsed)
}
