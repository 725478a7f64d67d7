package gateway

import (
	"context"

	"github.com/RichardVsc/project/internal/domain"
)

// TransferRepository persiste o registro append-only da transferência.
type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.Transfer) error
	// ListByAccount alimenta o extrato: transferências onde a conta é
	// pagadora ou recebedora, mais recentes primeiro.
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Transfer, error)
	// WithTx segue o mesmo padrão do AccountRepository para participar
	// da transação atômica
	WithTx(tx TransactionObject) TransferRepository
}
