package tally

import (
	"fmt"
	"regexp"
)

var (
	urlIDPattern     = regexp.MustCompile(`/(?:proposal|draft)/(\d+)`)
	numericIDPattern = regexp.MustCompile(`^\d+$`)
)

// ResolveIdentifier extracts a proposal id from a Tally URL (`.../proposal/<digits>` or
// `.../draft/<digits>`) or returns a purely numeric input unchanged.
func ResolveIdentifier(input string) (string, error) {
	if m := urlIDPattern.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	if numericIDPattern.MatchString(input) {
		return input, nil
	}

	return "", fmt.Errorf("%w: cannot parse proposal id from %q", ErrInvalidIdentifier, input)
}
