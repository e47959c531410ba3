package game

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		reason string
	}{
		{name: "plain", input: "42", want: 42},
		{name: "trailing newline", input: "7\n", want: 7},
		{name: "surrounding whitespace", input: "  13 \r\n", want: 13},
		{name: "zero", input: "0", want: 0},
		{name: "letters", input: "abc", reason: ReasonInvalid},
		{name: "mixed", input: "4two", reason: ReasonInvalid},
		{name: "decimal", input: "4.5", reason: ReasonInvalid},
		{name: "empty", input: "\n", reason: ReasonEmpty},
		{name: "negative", input: "-3", reason: ReasonNegative},
		{name: "overflow", input: "99999999999999999999999", reason: ReasonOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCandidate(tt.input)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
			assert.Equal(t, tt.reason, perr.Reason)
		})
	}
}

func TestParseErrorUnwrapsStrconv(t *testing.T) {
	_, err := ParseCandidate("abc")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `"abc"`)

	_, err = ParseCandidate("99999999999999999999999")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = ParseCandidate("   ")
	assert.Equal(t, ReasonEmpty, err.Error())
}
