package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/gateway"
)

// StatementEntry é uma linha do extrato, já orientada pela conta consultada.
type StatementEntry struct {
	TransferID  string `json:"transfer_id"`
	PayerID     int64  `json:"payer_id"`
	RecipientID int64  `json:"recipient_id"`
	// Direction facilita a leitura: "sent" quando a conta é pagadora,
	// "received" quando é recebedora.
	Direction string `json:"direction"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type GetStatementOutput struct {
	AccountID int64            `json:"account_id"`
	Balance   int64            `json:"balance"`
	Transfers []StatementEntry `json:"transfers"`
}

// GetStatementUseCase é a leitura simples do extrato: transferências onde a
// conta aparece como pagadora ou recebedora, mais recentes primeiro.
type GetStatementUseCase struct {
	accountRepository  gateway.AccountRepository
	transferRepository gateway.TransferRepository
}

func NewGetStatement(accountRepo gateway.AccountRepository, transferRepo gateway.TransferRepository) *GetStatementUseCase {
	return &GetStatementUseCase{
		accountRepository:  accountRepo,
		transferRepository: transferRepo,
	}
}

func (u *GetStatementUseCase) Execute(ctx context.Context, accountID int64) (*GetStatementOutput, error) {
	account, err := u.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("erro ao buscar conta: %w", err)
	}

	transfers, err := u.transferRepository.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar extrato: %w", err)
	}

	entries := make([]StatementEntry, 0, len(transfers))
	for _, t := range transfers {
		direction := "received"
		if t.PayerID == accountID {
			direction = "sent"
		}
		entries = append(entries, StatementEntry{
			TransferID:  t.ID,
			PayerID:     t.PayerID,
			RecipientID: t.RecipientID,
			Direction:   direction,
			Amount:      t.Amount,
			CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &GetStatementOutput{
		AccountID: account.ID,
		Balance:   account.Balance,
		Transfers: entries,
	}, nil
}
