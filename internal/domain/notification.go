package domain

import "time"

// NotificationStatus é o ciclo de vida de uma tentativa de notificação.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// TransferReceivedMessage é o texto enviado ao destinatário.
const TransferReceivedMessage = "Você recebeu uma transferência."

// NotificationAttempt é o estado do job de notificação, de posse exclusiva
// do dispatcher. Mutado a cada tentativa de entrega; depois de esgotar as
// tentativas permanece Failed para sempre (best-effort, fora do invariante
// financeiro).
type NotificationAttempt struct {
	ID           string
	RecipientID  int64
	Message      string
	Status       NotificationStatus
	AttemptCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
