package models

import "github.com/shopspring/decimal"

// ClientAccount is the per-client balance snapshot. Total is derived from
// Available and Held and never stored independently, so the
// total == available + held invariant holds by construction.
type ClientAccount struct {
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// Total is the sum of available and held funds.
func (a ClientAccount) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}
