package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sachinparyani/TransactionProcessor/internal/interfaces"
	"github.com/sachinparyani/TransactionProcessor/internal/models"
	"github.com/shopspring/decimal"
)

// Reader parses comma-delimited transaction records from a byte stream.
// The first row must be the `type,client,tx,amount` header; dispute,
// resolve and chargeback rows may omit the amount column entirely.
// Any framing or parse failure is a stream-level error and kills the run.
type Reader struct {
	csv     *csv.Reader
	line    int
	started bool
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // amount column is optional
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Next returns the next record in input order, or io.EOF at end of stream.
func (r *Reader) Next() (models.Record, error) {
	if !r.started {
		if err := r.readHeader(); err != nil {
			return models.Record{}, err
		}
		r.started = true
	}

	row, err := r.csv.Read()
	if err == io.EOF {
		return models.Record{}, io.EOF
	}
	if err != nil {
		return models.Record{}, fmt.Errorf("reading record: %w", err)
	}
	r.line++

	if len(row) < 3 {
		return models.Record{}, fmt.Errorf("line %d: expected at least 3 fields, got %d", r.line, len(row))
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return models.Record{}, fmt.Errorf("line %d: bad client id %q: %w", r.line, row[1], err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return models.Record{}, fmt.Errorf("line %d: bad transaction id %q: %w", r.line, row[2], err)
	}

	rec := models.Record{
		Type:   models.ParseRecordType(row[0]),
		Client: models.ClientID(client),
		Tx:     models.TxID(tx),
	}

	if len(row) >= 4 {
		if raw := strings.TrimSpace(row[3]); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return models.Record{}, fmt.Errorf("line %d: bad amount %q: %w", r.line, row[3], err)
			}
			rec.Amount = decimal.NullDecimal{Decimal: amount, Valid: true}
		}
	}
	return rec, nil
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	r.line = 1

	want := []string{"type", "client", "tx", "amount"}
	if len(header) < 3 {
		return fmt.Errorf("bad header: expected %v, got %v", want, header)
	}
	for i, name := range header {
		if i >= len(want) || strings.ToLower(strings.TrimSpace(name)) != want[i] {
			return fmt.Errorf("bad header: expected %v, got %v", want, header)
		}
	}
	return nil
}

var _ interfaces.RecordSource = (*Reader)(nil)
