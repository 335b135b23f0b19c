package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sachinparyani/TransactionProcessor/internal/engine"
	"github.com/sachinparyani/TransactionProcessor/internal/interfaces"
	"github.com/sachinparyani/TransactionProcessor/internal/models"
	"github.com/sachinparyani/TransactionProcessor/internal/models/events"
)

// Processor drives a full run: it pulls records from a source, folds each
// one into the engine, publishes lock events for applied chargebacks and
// optionally persists the final snapshot. The engine itself stays free of
// I/O; everything blocking happens here.
type Processor struct {
	engine    *engine.Engine
	publisher interfaces.EventPublisher
	store     interfaces.SnapshotStore // optional
}

func New(eng *engine.Engine, publisher interfaces.EventPublisher, store interfaces.SnapshotStore) *Processor {
	return &Processor{
		engine:    eng,
		publisher: publisher,
		store:     store,
	}
}

// Run processes the source to end-of-stream. Record-level anomalies are
// counted and dropped; only a source error or a snapshot-store failure is
// returned. No partial snapshot is persisted on a fatal source error.
func (p *Processor) Run(ctx context.Context, src interfaces.RecordSource) error {
	var applied, skipped int

	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("record stream: %w", err)
		}

		d := p.engine.Apply(rec)
		if d.Skipped() {
			skipped++
			continue
		}
		applied++

		if rec.Type == models.TypeChargeback {
			p.publishAccountLocked(rec)
		}
	}

	log.Printf("processed %d records (%d applied, %d skipped)", applied+skipped, applied, skipped)

	if p.store != nil {
		if err := p.store.SaveSnapshot(ctx, p.engine.Snapshot()); err != nil {
			return fmt.Errorf("persisting snapshot: %w", err)
		}
	}
	return nil
}

// publishAccountLocked is best effort: a broker hiccup must not abort the
// run, the snapshot on stdout is the contract.
func (p *Processor) publishAccountLocked(rec models.Record) {
	entry, ok := p.engine.Entry(rec.Tx)
	if !ok {
		return
	}

	event := events.AccountLocked{
		EventID:    uuid.New().String(),
		Client:     rec.Client,
		Tx:         rec.Tx,
		Amount:     entry.Amount,
		OccurredAt: time.Now().UTC(),
	}
	if err := p.publisher.Publish("account_locked", event); err != nil {
		log.Printf("publishing account_locked for client %d: %v", rec.Client, err)
	}
}

// Snapshot exposes the engine's final state for the emitter.
func (p *Processor) Snapshot() map[models.ClientID]models.ClientAccount {
	return p.engine.Snapshot()
}
