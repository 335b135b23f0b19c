package processor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sachinparyani/TransactionProcessor/internal/csvio"
	"github.com/sachinparyani/TransactionProcessor/internal/engine"
	"github.com/sachinparyani/TransactionProcessor/internal/events"
	"github.com/sachinparyani/TransactionProcessor/internal/models"
	modelevents "github.com/sachinparyani/TransactionProcessor/internal/models/events"
	"github.com/sachinparyani/TransactionProcessor/internal/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource yields a fixed list of records.
type sliceSource struct {
	recs []models.Record
	next int
}

func (s *sliceSource) Next() (models.Record, error) {
	if s.next >= len(s.recs) {
		return models.Record{}, io.EOF
	}
	rec := s.recs[s.next]
	s.next++
	return rec, nil
}

// failingSource errors after yielding its records.
type failingSource struct {
	inner sliceSource
	err   error
}

func (s *failingSource) Next() (models.Record, error) {
	rec, err := s.inner.Next()
	if err == io.EOF {
		return models.Record{}, s.err
	}
	return rec, err
}

// capturePublisher records every published event.
type capturePublisher struct {
	topics []string
	events []any
}

func (p *capturePublisher) Publish(topic string, event any) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func amt(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestRunPublishesAccountLockedOnChargeback(t *testing.T) {
	pub := &capturePublisher{}
	proc := New(engine.New(), pub, nil)

	src := &sliceSource{recs: []models.Record{
		{Type: models.TypeDeposit, Client: 1, Tx: 1, Amount: amt("10.0")},
		{Type: models.TypeDispute, Client: 1, Tx: 1},
		{Type: models.TypeChargeback, Client: 1, Tx: 1},
		// second chargeback hits the locked pre-check, no second event
		{Type: models.TypeChargeback, Client: 1, Tx: 1},
	}}
	require.NoError(t, proc.Run(context.Background(), src))

	require.Len(t, pub.events, 1)
	assert.Equal(t, []string{"account_locked"}, pub.topics)

	event, ok := pub.events[0].(modelevents.AccountLocked)
	require.True(t, ok)
	assert.Equal(t, models.ClientID(1), event.Client)
	assert.Equal(t, models.TxID(1), event.Tx)
	assert.True(t, event.Amount.Equal(decimal.RequireFromString("10.0")))
	assert.NotEmpty(t, event.EventID)
}

func TestRunPersistsSnapshot(t *testing.T) {
	store := memory.NewMemorySnapshotStore()
	proc := New(engine.New(), events.NopPublisher{}, store)

	src := &sliceSource{recs: []models.Record{
		{Type: models.TypeDeposit, Client: 1, Tx: 1, Amount: amt("10.0")},
		{Type: models.TypeWithdrawal, Client: 1, Tx: 2, Amount: amt("5.0")},
	}}
	require.NoError(t, proc.Run(context.Background(), src))

	saved := store.Snapshot()
	require.Contains(t, saved, models.ClientID(1))
	assert.True(t, saved[1].Available.Equal(decimal.RequireFromString("5.0")))
	assert.False(t, saved[1].Locked)
}

func TestRunStopsOnStreamError(t *testing.T) {
	store := memory.NewMemorySnapshotStore()
	proc := New(engine.New(), events.NopPublisher{}, store)

	streamErr := errors.New("truncated feed")
	src := &failingSource{
		inner: sliceSource{recs: []models.Record{
			{Type: models.TypeDeposit, Client: 1, Tx: 1, Amount: amt("10.0")},
		}},
		err: streamErr,
	}

	err := proc.Run(context.Background(), src)
	require.ErrorIs(t, err, streamErr)

	// no partial snapshot was persisted
	assert.Nil(t, store.Snapshot())
}

func TestRunEndToEndFromCSV(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,1.0\n" +
		"deposit,2,2,2.0\n" +
		"deposit,1,3,2.0\n" +
		"withdrawal,1,4,1.5\n" +
		"withdrawal,2,5,3.0\n" + // insufficient funds, discarded
		"dispute,2,2,\n" +
		"chargeback,2,2,\n" +
		"deposit,2,6,9.0\n" // locked, discarded

	proc := New(engine.New(), events.NopPublisher{}, nil)
	require.NoError(t, proc.Run(context.Background(), csvio.NewReader(strings.NewReader(input))))

	snap := proc.Snapshot()
	require.Len(t, snap, 2)

	assert.True(t, snap[1].Available.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, snap[1].Held.IsZero())
	assert.False(t, snap[1].Locked)

	assert.True(t, snap[2].Available.IsZero())
	assert.True(t, snap[2].Held.IsZero())
	assert.True(t, snap[2].Total().IsZero())
	assert.True(t, snap[2].Locked)
}
