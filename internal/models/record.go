package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ClientID identifies a client account. Source feeds use the unsigned
// 16-bit range.
type ClientID uint16

// TxID identifies a single transaction record. Source feeds use the
// unsigned 32-bit range.
type TxID uint32

// RecordType is the tag of an input record. Anything the feed sends that
// is not one of the five known tags parses to TypeUnknown and is discarded
// by the engine.
type RecordType string

const (
	TypeDeposit    RecordType = "deposit"
	TypeWithdrawal RecordType = "withdrawal"
	TypeDispute    RecordType = "dispute"
	TypeResolve    RecordType = "resolve"
	TypeChargeback RecordType = "chargeback"
	TypeUnknown    RecordType = ""
)

// ParseRecordType normalizes a raw type tag (case and surrounding
// whitespace are insignificant on the wire).
func ParseRecordType(raw string) RecordType {
	switch t := RecordType(strings.ToLower(strings.TrimSpace(raw))); t {
	case TypeDeposit, TypeWithdrawal, TypeDispute, TypeResolve, TypeChargeback:
		return t
	default:
		return TypeUnknown
	}
}

// Record is one typed transaction record from the input stream.
// Amount is only present on deposits and withdrawals.
type Record struct {
	Type   RecordType
	Client ClientID
	Tx     TxID
	Amount decimal.NullDecimal
}
