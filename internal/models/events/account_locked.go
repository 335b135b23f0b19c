package events

import (
	"time"

	"github.com/sachinparyani/TransactionProcessor/internal/models"
	"github.com/shopspring/decimal"
)

// AccountLocked is published when a chargeback freezes a client account.
type AccountLocked struct {
	EventID    string          `json:"event_id"`
	Client     models.ClientID `json:"client"`
	Tx         models.TxID     `json:"tx"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}
