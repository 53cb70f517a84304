package services

import (
	"fmt"

	"fishledger/internal/core"
)

type (
	// CreateStatus tells a fresh month apart from one that already existed.
	CreateStatus int
	// DeleteStatus tells a removed month apart from an unknown key.
	DeleteStatus int
)

const (
	Created CreateStatus = iota + 1
	AlreadyExists
)

const (
	Deleted DeleteStatus = iota + 1
	NotFound
)

func (s CreateStatus) String() string {
	switch s {
	case Created:
		return "created"
	case AlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// Message is the line printed after a create attempt.
func (s CreateStatus) Message(key string) string {
	if s == AlreadyExists {
		return fmt.Sprintf("Log for %s already exists.", key)
	}
	return fmt.Sprintf("New log created for %s.", key)
}

func (s DeleteStatus) String() string {
	switch s {
	case Deleted:
		return "deleted"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Message is the line printed after a delete attempt.
func (s DeleteStatus) Message(key string) string {
	if s == NotFound {
		return fmt.Sprintf("No log found for %s.", key)
	}
	return fmt.Sprintf("Log for %s deleted.", key)
}

func MonthTotalMessage(key string, total int64, found bool) string {
	if !found {
		return fmt.Sprintf("No logs found for %s.", key)
	}
	return fmt.Sprintf("Total profits for %s: %s %s", key, core.FormatSilver(total), core.CurrencyUnit)
}

// LifetimeMessage reports "no logs" only when there are no months at all;
// months without sessions still print a zero total.
func LifetimeMessage(total int64, months int) string {
	if months == 0 {
		return fmt.Sprintf("No fishing logs found. Lifetime profit: 0 %s.", core.CurrencyUnit)
	}
	return fmt.Sprintf("Lifetime profit: %s %s", core.FormatSilver(total), core.CurrencyUnit)
}

// SessionLoggedMessage confirms a logged session.
func SessionLoggedMessage(profit int64) string {
	return fmt.Sprintf("Session logged! Profit: %s %s", core.FormatSilver(profit), core.CurrencyUnit)
}
