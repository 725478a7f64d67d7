package gateway

import (
	"context"

	"github.com/RichardVsc/project/internal/domain"
)

// AccountRepository define o contrato de persistência de contas.
// O usecase só interage com isso, sem saber se é Postgres ou MySQL.
type AccountRepository interface {
	// Create existe para o seeder e fixtures; criação de conta não é
	// exposta na API.
	Create(ctx context.Context, kind domain.AccountKind, balance int64) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// Lock pessimista: retorna a conta travando a linha no banco
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	// Mutação atômica de saldo. Debit valida o saldo no próprio UPDATE.
	Debit(ctx context.Context, id int64, amount int64) error
	Credit(ctx context.Context, id int64, amount int64) error

	// WithTx retorna uma cópia do repositório ligada à transação iniciada
	// no nível superior, para participar da unidade atômica.
	WithTx(tx TransactionObject) AccountRepository
}
