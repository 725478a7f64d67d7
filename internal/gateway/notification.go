package gateway

import (
	"context"

	"github.com/RichardVsc/project/internal/domain"
)

// NotificationDispatcher é a API de submissão assíncrona de notificações.
// Dispatch nunca retorna erro ao orquestrador: falha aqui é logada e a
// transferência continua reportando sucesso.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, recipientID int64)
}

// NotificationSender faz a entrega síncrona ao serviço externo de
// notificação. Sucesso é resposta 2xx.
type NotificationSender interface {
	Send(ctx context.Context, recipientID int64, message string) error
}

// NotificationAttemptRepository é o dono exclusivo do estado dos jobs
// de notificação.
type NotificationAttemptRepository interface {
	Create(ctx context.Context, attempt *domain.NotificationAttempt) error
	UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus, attemptCount int) error
}
