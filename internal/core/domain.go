package core

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// DateLayout is the canonical on-disk format of a session date.
const DateLayout = "2006-01-02"

type (
	// Session is one fishing outing as it is stored in the ledger.
	Session struct {
		Date            string `json:"date"`
		FishingLocation string `json:"fishing_location"`
		SellLocation    string `json:"sell_location"`
		Profit          int64  `json:"profit"`
	}

	// Ledger maps a month-key ("April 2025") to its sessions in append order.
	Ledger map[string][]Session
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrNegativeProfit  = errors.New("profit must not be negative")
	ErrEmptyMonthKey   = errors.New("empty month key")
	ErrInvalidMonthKey = errors.New("invalid month key")
)

func (s Session) Validate() error {
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return ErrInvalidDate
	}
	if s.Profit < 0 {
		return ErrNegativeProfit
	}
	return nil
}

// ValidateMonthKey only rejects blank keys. Month-keys that do not parse
// are still storable; the logging flow reports them when it needs the calendar.
func ValidateMonthKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyMonthKey
	}
	return nil
}

// Keys returns the month-keys sorted lexicographically.
func (l Ledger) Keys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether a month log exists under key.
func (l Ledger) Has(key string) bool {
	_, ok := l[key]
	return ok
}

// Clone returns a deep copy so callers can't alias a store's slices.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, sessions := range l {
		cp := make([]Session, len(sessions))
		copy(cp, sessions)
		out[k] = cp
	}
	return out
}
