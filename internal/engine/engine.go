package engine

import (
	"github.com/sachinparyani/TransactionProcessor/internal/models"
)

// ResolvePolicy controls what happens to a ledger entry's dispute stage
// when an open dispute is resolved. The upstream behavior leaves the entry
// at Open, which makes a resolved entry non-re-disputable; whether that is
// intended is an open product question, so both readings are supported.
type ResolvePolicy int

const (
	// ResolveRetainsStage keeps the entry at StageOpen after the held
	// funds are released. This is the default.
	ResolveRetainsStage ResolvePolicy = iota
	// ResolveReopensEntry returns the entry to StageNone, making it
	// eligible for a fresh dispute.
	ResolveReopensEntry
)

// Engine is the transaction state machine and ledger. It exclusively owns
// the per-client accounts and the per-transaction ledger entries for the
// duration of a run and applies records one at a time, in input order.
// It is not safe for concurrent use; there is exactly one logical writer.
type Engine struct {
	accounts      map[models.ClientID]*models.ClientAccount
	entries       map[models.TxID]*models.LedgerEntry
	resolvePolicy ResolvePolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolvePolicy overrides the default ResolveRetainsStage policy.
func WithResolvePolicy(p ResolvePolicy) Option {
	return func(e *Engine) {
		e.resolvePolicy = p
	}
}

// New creates an empty Engine. Multiple engines are fully independent;
// there is no shared state between instances.
func New(opts ...Option) *Engine {
	e := &Engine{
		accounts: make(map[models.ClientID]*models.ClientAccount),
		entries:  make(map[models.TxID]*models.LedgerEntry),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply runs one record through the state machine and reports its
// disposition. A record for a locked client is discarded before the type
// is even looked at.
func (e *Engine) Apply(rec models.Record) Disposition {
	if acct, ok := e.accounts[rec.Client]; ok && acct.Locked {
		return SkippedLockedClient
	}

	switch rec.Type {
	case models.TypeDeposit:
		return e.applyDeposit(rec)
	case models.TypeWithdrawal:
		return e.applyWithdrawal(rec)
	case models.TypeDispute:
		return e.applyDispute(rec)
	case models.TypeResolve:
		return e.applyResolve(rec)
	case models.TypeChargeback:
		return e.applyChargeback(rec)
	default:
		return SkippedUnknownType
	}
}

// applyDeposit credits the amount to the client's available funds, lazily
// creating the account, and records a ledger entry for later disputes.
func (e *Engine) applyDeposit(rec models.Record) Disposition {
	if _, exists := e.entries[rec.Tx]; exists {
		return SkippedDuplicateTx
	}
	if !rec.Amount.Valid {
		return SkippedMissingAmount
	}

	acct, ok := e.accounts[rec.Client]
	if !ok {
		acct = &models.ClientAccount{}
		e.accounts[rec.Client] = acct
	}
	acct.Available = acct.Available.Add(rec.Amount.Decimal)

	e.entries[rec.Tx] = &models.LedgerEntry{
		Client: rec.Client,
		Amount: rec.Amount.Decimal,
		Stage:  models.StageNone,
	}
	return Applied
}

// applyWithdrawal debits the client's available funds if they cover the
// amount. A withdrawal from an unknown client or beyond the available
// balance is discarded without creating a ledger entry.
func (e *Engine) applyWithdrawal(rec models.Record) Disposition {
	if _, exists := e.entries[rec.Tx]; exists {
		return SkippedDuplicateTx
	}
	if !rec.Amount.Valid {
		return SkippedMissingAmount
	}
	acct, ok := e.accounts[rec.Client]
	if !ok {
		return SkippedUnknownClient
	}
	if acct.Available.LessThan(rec.Amount.Decimal) {
		return SkippedInsufficientFunds
	}

	acct.Available = acct.Available.Sub(rec.Amount.Decimal)

	e.entries[rec.Tx] = &models.LedgerEntry{
		Client: rec.Client,
		Amount: rec.Amount.Decimal,
		Stage:  models.StageNone,
	}
	return Applied
}

// applyDispute opens a dispute on a prior fund movement, moving its amount
// from available to held. Total is unchanged.
func (e *Engine) applyDispute(rec models.Record) Disposition {
	entry, acct, d := e.lookupDisputed(rec, models.StageNone)
	if d != Applied {
		return d
	}

	entry.Stage = models.StageOpen
	acct.Available = acct.Available.Sub(entry.Amount)
	acct.Held = acct.Held.Add(entry.Amount)
	return Applied
}

// applyResolve releases an open dispute, moving the held amount back to
// available. The entry's stage afterwards depends on the resolve policy.
func (e *Engine) applyResolve(rec models.Record) Disposition {
	entry, acct, d := e.lookupDisputed(rec, models.StageOpen)
	if d != Applied {
		return d
	}

	acct.Held = acct.Held.Sub(entry.Amount)
	acct.Available = acct.Available.Add(entry.Amount)
	if e.resolvePolicy == ResolveReopensEntry {
		entry.Stage = models.StageNone
	}
	return Applied
}

// applyChargeback finalizes an open dispute against the client: the held
// amount leaves the account entirely and the account is locked for good.
func (e *Engine) applyChargeback(rec models.Record) Disposition {
	entry, acct, d := e.lookupDisputed(rec, models.StageOpen)
	if d != Applied {
		return d
	}

	acct.Held = acct.Held.Sub(entry.Amount)
	entry.Stage = models.StageChargedBack
	acct.Locked = true
	return Applied
}

// lookupDisputed runs the guards shared by dispute, resolve and chargeback:
// the referenced transaction and the client must exist, the entry must be
// owned by the record's client, and the entry must sit at wantStage.
func (e *Engine) lookupDisputed(rec models.Record, wantStage models.DisputeStage) (*models.LedgerEntry, *models.ClientAccount, Disposition) {
	entry, ok := e.entries[rec.Tx]
	if !ok {
		return nil, nil, SkippedUnknownTx
	}
	acct, ok := e.accounts[rec.Client]
	if !ok {
		return nil, nil, SkippedUnknownClient
	}
	if entry.Client != rec.Client {
		return nil, nil, SkippedClientMismatch
	}
	if entry.Stage != wantStage {
		return nil, nil, SkippedStageMismatch
	}
	return entry, acct, Applied
}

// Snapshot returns a copy of the current per-client account state. The
// caller owns the returned map; mutating it does not affect the engine.
func (e *Engine) Snapshot() map[models.ClientID]models.ClientAccount {
	out := make(map[models.ClientID]models.ClientAccount, len(e.accounts))
	for id, acct := range e.accounts {
		out[id] = *acct
	}
	return out
}

// Entry returns the ledger entry for a transaction id, if one was created.
func (e *Engine) Entry(tx models.TxID) (models.LedgerEntry, bool) {
	entry, ok := e.entries[tx]
	if !ok {
		return models.LedgerEntry{}, false
	}
	return *entry, true
}
