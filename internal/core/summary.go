package core

// MonthTotal sums the profit of every session logged under key.
// found is false when the ledger has no such month.
func (l Ledger) MonthTotal(key string) (total int64, found bool) {
	sessions, ok := l[key]
	if !ok {
		return 0, false
	}
	for _, s := range sessions {
		total += s.Profit
	}
	return total, true
}

// LifetimeTotal sums every session of every month. Zero for an empty ledger.
func (l Ledger) LifetimeTotal() int64 {
	var total int64
	for key := range l {
		t, _ := l.MonthTotal(key)
		total += t
	}
	return total
}

// SessionCount returns the number of sessions across all months.
func (l Ledger) SessionCount() int {
	n := 0
	for _, sessions := range l {
		n += len(sessions)
	}
	return n
}
