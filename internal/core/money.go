package core

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// CurrencyUnit is the in-game currency every profit is counted in.
const CurrencyUnit = "silver"

// ParseProfit accepts free-form profit text such as "1,000,000".
// Thousand separators are stripped; only non-negative integers are accepted.
func ParseProfit(text string) (int64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if s == "" {
		return 0, false
	}
	profit, err := strconv.ParseInt(s, 10, 64)
	if err != nil || profit < 0 {
		return 0, false
	}
	return profit, true
}

// FormatSilver renders an amount with thousands separators, e.g. "5,000".
func FormatSilver(amount int64) string {
	return humanize.Comma(amount)
}
