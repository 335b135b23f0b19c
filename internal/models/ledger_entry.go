package models

import "github.com/shopspring/decimal"

// DisputeStage is the lifecycle state of a ledger entry. It only ever
// advances None -> Open -> ChargedBack; ChargedBack is terminal.
type DisputeStage int

const (
	StageNone DisputeStage = iota
	StageOpen
	StageChargedBack
)

func (s DisputeStage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageOpen:
		return "open"
	case StageChargedBack:
		return "chargedback"
	default:
		return "unknown"
	}
}

// LedgerEntry records a single fund movement (a deposit or a successful
// withdrawal) so a later dispute can reference it by transaction id.
type LedgerEntry struct {
	Client ClientID        // owning client, immutable after creation
	Amount decimal.Decimal // magnitude moved at creation time, always >= 0
	Stage  DisputeStage
}
