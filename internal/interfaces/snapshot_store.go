package interfaces

import (
	"context"

	"github.com/sachinparyani/TransactionProcessor/internal/models"
)

type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, accounts map[models.ClientID]models.ClientAccount) error
}
