package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountTypeValid(t *testing.T) {
	tests := []struct {
		typ  AccountType
		want bool
	}{
		{AccountTypeChecking, true},
		{AccountTypeSavings, true},
		{AccountTypeBrokerage, true},
		{AccountTypeCredit, true},
		{"checking", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.Valid(), "Valid(%q)", tt.typ)
	}
}

func TestAccountIsCredit(t *testing.T) {
	assert.True(t, Account{Type: AccountTypeCredit}.IsCredit())
	assert.False(t, Account{Type: AccountTypeSavings}.IsCredit())
}

func TestTransactionIsDebit(t *testing.T) {
	assert.True(t, Transaction{Amount: decimal.RequireFromString("-62.39")}.IsDebit())
	assert.False(t, Transaction{Amount: decimal.RequireFromString("3240.00")}.IsDebit())
	assert.False(t, Transaction{}.IsDebit())
}
