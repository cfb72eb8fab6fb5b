package domain

import (
	"regexp"
	"strconv"
)

// Grammar of the provider's duration token: every group optional, digits
// only, no fractional or negative components.
var durationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseISODuration converts a token like "PT1H2M10S" into total seconds.
// A bare "PT" normalizes to 0 and is accepted; a token with no match at
// all fails with ErrMalformedDuration.
func ParseISODuration(token string) (int, error) {
	m := durationRe.FindStringSubmatch(token)
	if m == nil {
		return 0, ErrMalformedDuration
	}

	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	return hours*3600 + minutes*60 + seconds, nil
}

// atoiOrZero: the regex guarantees digits, so a failed parse only means
// the group was absent.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
