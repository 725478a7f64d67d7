package gateway

import "context"

// PayerLock é o lock consultivo por pagador, adquirido antes da orquestração
// começar e liberado quando ela termina. Impede duas transferências
// concorrentes do mesmo pagador de serem admitidas ao mesmo tempo; é uma
// salvaguarda de vazão em cima dos row locks do banco, não um substituto.
type PayerLock interface {
	// Acquire espera um tempo curto e limitado; se não conseguir, retorna
	// domain.ErrTransferInProgress. O lock expira sozinho se o release
	// nunca rodar.
	Acquire(ctx context.Context, payerID int64) (release func(), err error)
}
