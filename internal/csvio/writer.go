package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sachinparyani/TransactionProcessor/internal/models"
)

// WriteSnapshot renders the final per-client account state as
// `client,available,held,total,locked` rows. Amounts keep the precision of
// their inputs; row order follows map iteration and is not stable.
func WriteSnapshot(w io.Writer, accounts map[models.ClientID]models.ClientAccount) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	for id, acct := range accounts {
		row := []string{
			strconv.FormatUint(uint64(id), 10),
			acct.Available.String(),
			acct.Held.String(),
			acct.Total().String(),
			strconv.FormatBool(acct.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing snapshot row for client %d: %w", id, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
