package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProfit(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1,000,000", 1000000, true},
		{"5000", 5000, true},
		{"0", 0, true},
		{" 12,345 ", 12345, true},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{",,,", 0, false},
		{"1.5", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseProfit(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.out, got, "input %q", tc.in)
	}
}

func TestFormatSilver(t *testing.T) {
	assert.Equal(t, "0", FormatSilver(0))
	assert.Equal(t, "999", FormatSilver(999))
	assert.Equal(t, "5,000", FormatSilver(5000))
	assert.Equal(t, "1,000,000", FormatSilver(1000000))
}
