package usecase

import (
	"context"
	"time"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/gateway"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// Política de retry adotada: contagem limitada de tentativas com backoff
	// fixo (sem deadline de relógio).
	defaultMaxAttempts = 3
	defaultBackoff     = 60 * time.Second
)

// SendNotificationUseCase é o job do worker: cria o NotificationAttempt,
// chama o serviço externo e marca Sent/Failed, reagendando até o teto de
// tentativas. Depois de esgotar, o job é abandonado e a tentativa fica
// Failed para sempre — lacuna aceita, a notificação não faz parte do
// invariante financeiro.
type SendNotificationUseCase struct {
	attemptRepository gateway.NotificationAttemptRepository
	sender            gateway.NotificationSender
	maxAttempts       int
	backoff           time.Duration
}

func NewSendNotification(
	attemptRepo gateway.NotificationAttemptRepository,
	sender gateway.NotificationSender,
) *SendNotificationUseCase {
	return &SendNotificationUseCase{
		attemptRepository: attemptRepo,
		sender:            sender,
		maxAttempts:       defaultMaxAttempts,
		backoff:           defaultBackoff,
	}
}

// WithRetryPolicy sobrescreve teto e backoff (testes usam valores curtos).
func (u *SendNotificationUseCase) WithRetryPolicy(maxAttempts int, backoff time.Duration) *SendNotificationUseCase {
	u.maxAttempts = maxAttempts
	u.backoff = backoff
	return u
}

// Execute nunca devolve erro de entrega a quem chamou: best-effort.
func (u *SendNotificationUseCase) Execute(ctx context.Context, recipientID int64, message string) {
	attempt := &domain.NotificationAttempt{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Message:     message,
		Status:      domain.NotificationPending,
	}
	if err := u.attemptRepository.Create(ctx, attempt); err != nil {
		log.Error().Err(err).Int64("recipient_id", recipientID).Msg("Falha ao registrar tentativa de notificação")
		return
	}

	for count := 1; count <= u.maxAttempts; count++ {
		err := u.sender.Send(ctx, recipientID, message)
		if err == nil {
			u.updateStatus(ctx, attempt.ID, domain.NotificationSent, count)
			log.Info().Str("attempt_id", attempt.ID).Int("attempts", count).Msg("Notificação entregue")
			return
		}

		u.updateStatus(ctx, attempt.ID, domain.NotificationFailed, count)
		log.Warn().Err(err).Str("attempt_id", attempt.ID).Int("attempt", count).Msg("Falha ao entregar notificação")

		if count == u.maxAttempts {
			break
		}
		// Backoff fixo entre tentativas, respeitando cancelamento
		select {
		case <-time.After(u.backoff):
		case <-ctx.Done():
			return
		}
	}

	log.Error().Str("attempt_id", attempt.ID).Int("attempts", u.maxAttempts).
		Msg("Notificação abandonada após esgotar as tentativas")
}

func (u *SendNotificationUseCase) updateStatus(ctx context.Context, id string, status domain.NotificationStatus, count int) {
	if err := u.attemptRepository.UpdateStatus(ctx, id, status, count); err != nil {
		log.Error().Err(err).Str("attempt_id", id).Msg("Falha ao atualizar status da notificação")
	}
}
