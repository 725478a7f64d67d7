package gateway

import "context"

// TransactionObject é o handle opaco da transação de banco em andamento.
// O bloco atômico da transferência injeta ele no contexto e os repositórios
// o recuperam via WithTx.
type TransactionObject interface{}

// TransactionManager delimita o bloco atômico (UoW): tudo dentro de fn
// comita junto ou desfaz junto.
type TransactionManager interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransactionKeyType evita colisão de chaves no contexto
type TransactionKeyType string

const TransactionKey TransactionKeyType = "transaction"
