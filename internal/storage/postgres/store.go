package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	interfaces "github.com/sachinparyani/TransactionProcessor/internal/interfaces"
	"github.com/sachinparyani/TransactionProcessor/internal/models"
)

type PostgresSnapshotStore struct {
	db *sql.DB
}

func NewPostgresSnapshotStore(db *sql.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{
		db: db,
	}
}

// SaveSnapshot writes one row per client under a fresh run id so earlier
// runs stay queryable.
func (p *PostgresSnapshotStore) SaveSnapshot(ctx context.Context, accounts map[models.ClientID]models.ClientAccount) error {
	const query = `INSERT INTO client_snapshots(run_id, client_id, available, held, total, locked, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7)`

	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	runID := uuid.New().String()
	createdAt := time.Now().UTC()

	for id, acct := range accounts {
		_, err = dbTx.ExecContext(ctx, query,
			runID,
			int64(id),
			acct.Available.String(),
			acct.Held.String(),
			acct.Total().String(),
			acct.Locked,
			createdAt,
		)
		if err != nil {
			return err
		}
	}
	return dbTx.Commit()
}

var _ interfaces.SnapshotStore = (*PostgresSnapshotStore)(nil)
