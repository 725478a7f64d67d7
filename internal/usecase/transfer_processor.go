package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/gateway"
)

// TransferProcessor executa a sequência débito/crédito/registro dentro de uma
// única unidade atômica de trabalho, com as duas contas travadas.
type TransferProcessor struct {
	accountRepository  gateway.AccountRepository
	transferRepository gateway.TransferRepository
	transactionManager gateway.TransactionManager // Unit of Work
}

func NewTransferProcessor(
	accountRepo gateway.AccountRepository,
	transferRepo gateway.TransferRepository,
	txManager gateway.TransactionManager,
) *TransferProcessor {
	return &TransferProcessor{
		accountRepository:  accountRepo,
		transferRepository: transferRepo,
		transactionManager: txManager,
	}
}

// Process aplica a transferência de forma tudo-ou-nada: ou débito, crédito e
// registro entram juntos, ou os saldos ficam intocados.
//
// ErrInsufficientFunds atravessa como está (rejeição de negócio, com
// rollback); qualquer outra falha nos passos internos vira
// ErrTransferProcessingFailed embrulhando a causa.
func (p *TransferProcessor) Process(ctx context.Context, payerID, recipientID, amount int64) (*domain.Transfer, error) {
	var created *domain.Transfer

	err := p.transactionManager.Run(ctx, func(contextWithTx context.Context) error {
		// Recuperar o "crachá" da transação injetado pelo TransactionManager.Run
		transactionObject := contextWithTx.Value(gateway.TransactionKey)
		if transactionObject == nil {
			return fmt.Errorf("erro crítico: transação não encontrada no contexto")
		}

		// Cópias dos repositórios ligadas a ESSA transação: tudo que elas
		// fizerem roda dentro do BEGIN...COMMIT.
		accountRepoTx := p.accountRepository.WithTx(transactionObject)
		transferRepoTx := p.transferRepository.WithTx(transactionObject)

		// Ordenação global de locks (id ascendente): A->B e B->A concorrentes
		// travam sempre o menor id primeiro e nunca se deadlockam.
		firstID, secondID := payerID, recipientID
		if firstID > secondID {
			firstID, secondID = secondID, firstID
		}

		// SELECT ... FOR UPDATE nas duas contas. Captura o estado travado do
		// pagador para a revalidação.
		var payer *domain.Account
		for _, id := range []int64{firstID, secondID} {
			locked, err := accountRepoTx.GetByIDForUpdate(contextWithTx, id)
			if err != nil {
				// Conta sumir entre a resolução e o lock não é caso de
				// negócio: contas não são apagadas neste escopo.
				return fmt.Errorf("falha ao travar conta %d: %w", id, err)
			}
			if id == payerID {
				payer = locked
			}
		}

		// Revalidação autoritativa: o snapshot usado na validação pré-lock
		// pode ter ficado defasado até o lock ser adquirido.
		if payer.Balance < amount {
			return domain.ErrInsufficientFunds
		}

		// Débito guardado no SQL (balance >= amount) — segunda linha de defesa
		if err := accountRepoTx.Debit(contextWithTx, payerID, amount); err != nil {
			return err
		}

		if err := accountRepoTx.Credit(contextWithTx, recipientID, amount); err != nil {
			return fmt.Errorf("falha no crédito (destino %d): %w", recipientID, err)
		}

		// Registro append-only, na mesma transação que a mutação de saldo
		created = &domain.Transfer{
			PayerID:     payerID,
			RecipientID: recipientID,
			Amount:      amount,
		}
		if err := transferRepoTx.Create(contextWithTx, created); err != nil {
			return fmt.Errorf("falha ao registrar transferência: %w", err)
		}

		return nil // Commit
	})

	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, domain.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTransferProcessingFailed, err)
	}

	return created, nil
}
