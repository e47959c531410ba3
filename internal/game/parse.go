package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Reasons a line is rejected as a guess.
const (
	ReasonEmpty      = "cannot parse a number from empty input"
	ReasonInvalid    = "invalid digit found in input"
	ReasonNegative   = "negative numbers are not allowed"
	ReasonOutOfRange = "number too large to fit"
)

// ParseError reports a line that could not be read as a guess. It is the
// recoverable failure of the loop: the player is told and asked again.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseCandidate trims line and reads it as a non-negative base-10 integer.
// Any failure is a *ParseError.
func ParseCandidate(line string) (int, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return 0, &ParseError{Reason: ReasonEmpty}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		reason := ReasonInvalid
		if errors.Is(err, strconv.ErrRange) {
			reason = ReasonOutOfRange
		}
		return 0, &ParseError{Input: text, Reason: reason, Err: err}
	}
	if n < 0 {
		return 0, &ParseError{Input: text, Reason: ReasonNegative}
	}
	return n, nil
}
