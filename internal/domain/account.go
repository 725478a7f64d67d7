package domain

import (
	"time"
)

// AccountKind distingue contas de pessoa física de contas lojistas.
type AccountKind string

const (
	AccountKindIndividual AccountKind = "individual"
	AccountKindMerchant   AccountKind = "merchant"
)

// Account representa a conta do usuário no ledger.
// Clean Architecture: esta entidade não sabe o que é JSON nem SQL.
// O saldo é sempre em centavos (unidade mínima, int64) e só é mutado
// pelo Account Store dentro de uma transação com lock de linha.
type Account struct {
	ID        int64
	Kind      AccountKind
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayerSnapshot é a projeção imutável da conta usada na validação
// pré-lock. Criada a cada tentativa de transferência e descartada depois;
// nunca é o objeto persistido.
type PayerSnapshot struct {
	ID      int64
	Kind    AccountKind
	Balance int64
}

// Snapshot produz a projeção de leitura usada pela cadeia de validação.
func (a *Account) Snapshot() PayerSnapshot {
	return PayerSnapshot{
		ID:      a.ID,
		Kind:    a.Kind,
		Balance: a.Balance,
	}
}

// HasSufficientFunds valida se a conta pode pagar antes mesmo de tocar no DB
func (s PayerSnapshot) HasSufficientFunds(amount int64) bool {
	return s.Balance >= amount
}

// CanInitiateTransfer: lojistas só recebem, nunca enviam.
func (s PayerSnapshot) CanInitiateTransfer() bool {
	return s.Kind != AccountKindMerchant
}
