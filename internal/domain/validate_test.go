package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransfer(t *testing.T) {
	tests := []struct {
		name    string
		payer   PayerSnapshot
		amount  int64
		wantErr error
	}{
		{
			name:   "pessoa física com saldo suficiente passa",
			payer:  PayerSnapshot{ID: 1, Kind: AccountKindIndividual, Balance: 1000},
			amount: 300,
		},
		{
			name:   "saldo exatamente igual ao valor passa",
			payer:  PayerSnapshot{ID: 1, Kind: AccountKindIndividual, Balance: 300},
			amount: 300,
		},
		{
			name:    "saldo insuficiente",
			payer:   PayerSnapshot{ID: 1, Kind: AccountKindIndividual, Balance: 100},
			amount:  300,
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "lojista é rejeitado mesmo com saldo",
			payer:   PayerSnapshot{ID: 2, Kind: AccountKindMerchant, Balance: 1_000_000},
			amount:  300,
			wantErr: ErrIneligiblePayer,
		},
		{
			// A ordem importa: elegibilidade vem antes de saldo
			name:    "lojista sem saldo é rejeitado por elegibilidade, não por saldo",
			payer:   PayerSnapshot{ID: 2, Kind: AccountKindMerchant, Balance: 0},
			amount:  300,
			wantErr: ErrIneligiblePayer,
		},
		{
			name:    "valor zero",
			payer:   PayerSnapshot{ID: 1, Kind: AccountKindIndividual, Balance: 1000},
			amount:  0,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "valor negativo",
			payer:   PayerSnapshot{ID: 1, Kind: AccountKindIndividual, Balance: 1000},
			amount:  -50,
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransfer(tt.payer, tt.amount)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	account := &Account{ID: 7, Kind: AccountKindIndividual, Balance: 1234}

	snap := account.Snapshot()
	assert.Equal(t, int64(7), snap.ID)
	assert.Equal(t, AccountKindIndividual, snap.Kind)
	assert.Equal(t, int64(1234), snap.Balance)

	// O snapshot é uma cópia: mutar a conta não afeta a projeção
	account.Balance = 0
	assert.Equal(t, int64(1234), snap.Balance)
}
