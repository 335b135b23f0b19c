package engine

// Disposition reports what Apply did with a record. Every discard path has
// its own value so callers and tests can observe why a record was dropped;
// none of them is an error, the feed is untrusted and a bad record must
// never abort the run.
type Disposition int

const (
	Applied Disposition = iota
	SkippedLockedClient
	SkippedUnknownType
	SkippedDuplicateTx
	SkippedMissingAmount
	SkippedUnknownClient
	SkippedUnknownTx
	SkippedClientMismatch
	SkippedStageMismatch
	SkippedInsufficientFunds
)

func (d Disposition) String() string {
	switch d {
	case Applied:
		return "applied"
	case SkippedLockedClient:
		return "skipped: client locked"
	case SkippedUnknownType:
		return "skipped: unknown record type"
	case SkippedDuplicateTx:
		return "skipped: duplicate transaction id"
	case SkippedMissingAmount:
		return "skipped: missing amount"
	case SkippedUnknownClient:
		return "skipped: unknown client"
	case SkippedUnknownTx:
		return "skipped: unknown transaction id"
	case SkippedClientMismatch:
		return "skipped: client does not own transaction"
	case SkippedStageMismatch:
		return "skipped: dispute stage mismatch"
	case SkippedInsufficientFunds:
		return "skipped: insufficient funds"
	default:
		return "unknown disposition"
	}
}

// Skipped reports whether the record was discarded without touching state.
func (d Disposition) Skipped() bool {
	return d != Applied
}
