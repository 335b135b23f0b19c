package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecordType(t *testing.T) {
	tests := []struct {
		raw  string
		want RecordType
	}{
		{"deposit", TypeDeposit},
		{"withdrawal", TypeWithdrawal},
		{"dispute", TypeDispute},
		{"resolve", TypeResolve},
		{"chargeback", TypeChargeback},
		{" Deposit ", TypeDeposit},
		{"CHARGEBACK", TypeChargeback},
		{"transfer", TypeUnknown},
		{"", TypeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRecordType(tt.raw), "raw %q", tt.raw)
	}
}
