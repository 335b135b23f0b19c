package interfaces

import (
	"github.com/sachinparyani/TransactionProcessor/internal/models"
)

// RecordSource yields transaction records in input order. Next returns
// io.EOF when the stream is exhausted; any other error is fatal for the
// whole run.
type RecordSource interface {
	Next() (models.Record, error)
}
