package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Expiry generoso em relação ao caminho síncrono (autorização + commit):
	// se o processo morrer segurando o lock, ele expira sozinho.
	lockExpiry = 30 * time.Second

	// Espera limitada: quem não conseguir o lock rápido falha com
	// ErrTransferInProgress em vez de enfileirar indefinidamente.
	lockTries      = 3
	lockRetryDelay = 150 * time.Millisecond
)

// PayerLock implementa gateway.PayerLock com redsync sobre Redis.
// Um lock consultivo por pagador: duas transferências concorrentes do mesmo
// pagador nunca são admitidas ao mesmo tempo, mesmo com múltiplas instâncias
// da API. É salvaguarda de vazão; a correção continua nos row locks.
type PayerLock struct {
	rs *redsync.Redsync
}

func NewPayerLock(client *goredislib.Client) *PayerLock {
	pool := goredis.NewPool(client)
	return &PayerLock{rs: redsync.New(pool)}
}

func (l *PayerLock) Acquire(ctx context.Context, payerID int64) (func(), error) {
	mutex := l.rs.NewMutex(
		fmt.Sprintf("transfer:lock:payer:%d", payerID),
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(lockTries),
		redsync.WithRetryDelay(lockRetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransferInProgress, err)
	}

	release := func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			// O expiry garante a liberação mesmo se o unlock falhar
			log.Warn().Err(err).Int64("payer_id", payerID).Msg("Falha ao liberar lock do pagador")
		}
	}
	return release, nil
}
