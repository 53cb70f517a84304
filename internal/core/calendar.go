// Package core provides the ledger domain types and the calendar helpers used
// by the guided logging flow.
//
// This file parses month-keys such as "April 2025" and validates day numbers
// and assembled dates against the real calendar, leap years included.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMonthKey splits a "<MonthName> <Year>" label into its month and year.
// ok is false when the label is not exactly two tokens, the month is not an
// English month name or the year is not an integer in 1..9999.
func ParseMonthKey(key string) (month time.Month, year int, ok bool) {
	fields := strings.Fields(key)
	if len(fields) != 2 {
		return 0, 0, false
	}

	month, ok = monthByName(fields[0])
	if !ok {
		return 0, 0, false
	}

	year, err := strconv.Atoi(fields[1])
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, false
	}
	return month, year, true
}

// MonthKey formats a month and year the way ParseMonthKey reads them.
func MonthKey(month time.Month, year int) string {
	return fmt.Sprintf("%s %d", month, year)
}

func monthByName(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// DaysIn returns the number of days of month in year.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidateDay parses a day token and checks it against the length of the month.
func ValidateDay(token string, month time.Month, year int) (int, bool) {
	day, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, false
	}
	if day < 1 || day > DaysIn(year, month) {
		return 0, false
	}
	return day, true
}

// AssembleDate builds the canonical YYYY-MM-DD string and re-parses it so a
// date the calendar doesn't have is never accepted.
func AssembleDate(year int, month time.Month, day int) (string, bool) {
	date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", false
	}
	return date, true
}
