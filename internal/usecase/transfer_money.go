package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/gateway"
	"github.com/rs/zerolog/log"
)

// TransferMoneyInput define os dados necessários para realizar uma
// transferência. O valor já está em centavos: a conversão decimal acontece
// uma única vez, na borda HTTP.
type TransferMoneyInput struct {
	PayerID     int64
	RecipientID int64
	Amount      int64
}

type TransferMoneyOutput struct {
	TransferID string
}

// TransferMoneyUseCase é o orquestrador: compõe validação, autorização,
// resolução de destinatário, processamento travado e notificação, mapeando
// toda falha para a taxonomia estável devolvida ao chamador.
type TransferMoneyUseCase struct {
	accountRepository gateway.AccountRepository
	processor         *TransferProcessor
	authorizer        gateway.Authorizer
	payerLock         gateway.PayerLock
	eventPublisher    gateway.EventPublisher
	notifier          gateway.NotificationDispatcher
}

func NewTransferMoney(
	accountRepo gateway.AccountRepository,
	processor *TransferProcessor,
	authorizer gateway.Authorizer,
	payerLock gateway.PayerLock,
	publisher gateway.EventPublisher,
	notifier gateway.NotificationDispatcher,
) *TransferMoneyUseCase {
	return &TransferMoneyUseCase{
		accountRepository: accountRepo,
		processor:         processor,
		authorizer:        authorizer,
		payerLock:         payerLock,
		eventPublisher:    publisher,
		notifier:          notifier,
	}
}

// Execute roda a orquestração em ordem fixa, sem retry de nenhum passo:
//
//	snapshot do pagador -> resolução do destinatário -> cadeia de validação
//	-> autorização externa -> processor (re-lock + revalidação) -> evento
//	-> notificação (fire-and-forget)
//
// O lock consultivo por pagador envolve a sequência inteira. Erros fora da
// taxonomia conhecida viram ErrTransferFailed.
func (u *TransferMoneyUseCase) Execute(ctx context.Context, input TransferMoneyInput) (*TransferMoneyOutput, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	release, err := u.payerLock.Acquire(ctx, input.PayerID)
	if err != nil {
		return nil, err // ErrTransferInProgress: o chamador pode tentar de novo
	}
	defer release()

	transfer, err := u.orchestrate(ctx, input)
	if err != nil {
		if isKnownTransferError(err) {
			return nil, err
		}
		log.Error().Err(err).Msg("Erro não mapeado na orquestração da transferência")
		return nil, fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}

	return &TransferMoneyOutput{TransferID: transfer.ID}, nil
}

func (u *TransferMoneyUseCase) orchestrate(ctx context.Context, input TransferMoneyInput) (*domain.Transfer, error) {
	// Snapshot imutável do pagador, descartado após a validação.
	// Nunca seguramos o objeto de conta obtido antes do lock.
	payerAccount, err := u.accountRepository.GetByID(ctx, input.PayerID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrPayerNotFound
		}
		return nil, err
	}
	payer := payerAccount.Snapshot()

	// Resolução do destinatário: leitura sem lock. O processor re-resolve
	// por id já travado, para nunca carregar duas identidades da mesma conta.
	if _, err := u.accountRepository.GetByID(ctx, input.RecipientID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrRecipientNotFound
		}
		return nil, err
	}

	// Cadeia de validação pura: elegibilidade antes de saldo
	if err := domain.ValidateTransfer(payer, input.Amount); err != nil {
		return nil, err
	}

	// Autorização externa: exatamente uma chamada, depois da validação e
	// antes de qualquer mutação de saldo
	if err := u.authorizer.EnsureAuthorized(ctx); err != nil {
		return nil, err
	}

	transfer, err := u.processor.Process(ctx, input.PayerID, input.RecipientID, input.Amount)
	if err != nil {
		return nil, err
	}

	// Daqui em diante a transferência está comitada: falha em evento ou
	// notificação é logada e o sucesso continua sendo reportado.
	event := domain.TransferCompleted{
		TransferID:  transfer.ID,
		PayerID:     transfer.PayerID,
		RecipientID: transfer.RecipientID,
		Amount:      transfer.Amount,
	}
	if err := u.eventPublisher.Publish(ctx, "transfer_events", "transfer.completed", event); err != nil {
		log.Error().Err(err).Str("transfer_id", transfer.ID).Msg("Falha ao publicar evento de transferência")
	}

	u.notifier.Dispatch(ctx, transfer.RecipientID)

	return transfer, nil
}

// isKnownTransferError diz se o erro já pertence à taxonomia exposta ao
// chamador; tudo fora dela é embrulhado em ErrTransferFailed.
func isKnownTransferError(err error) bool {
	known := []error{
		domain.ErrIneligiblePayer,
		domain.ErrInsufficientFunds,
		domain.ErrPayerNotFound,
		domain.ErrRecipientNotFound,
		domain.ErrAuthorizationDenied,
		domain.ErrAuthorizationUnavailable,
		domain.ErrTransferProcessingFailed,
		domain.ErrTransferInProgress,
		domain.ErrInvalidAmount,
	}
	for _, target := range known {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
