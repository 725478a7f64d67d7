package domain

import "time"

// TransferRequest é o input transiente da orquestração.
// O valor já chega aqui em centavos: a conversão de moeda decimal
// acontece uma única vez, na borda HTTP.
type TransferRequest struct {
	PayerID     int64
	RecipientID int64
	Amount      int64
}

// Transfer é o registro append-only criado junto com a mutação de saldo,
// dentro da mesma transação. Nunca é atualizado nem apagado.
type Transfer struct {
	ID          string
	PayerID     int64
	RecipientID int64
	Amount      int64
	CreatedAt   time.Time
}

// TransferCompleted é o evento de domínio publicado uma vez por
// transferência comitada. Consumido pelo caminho de notificação e
// por colaboradores externos (auditoria, extrato).
type TransferCompleted struct {
	TransferID  string `json:"transfer_id"`
	PayerID     int64  `json:"payer_id"`
	RecipientID int64  `json:"recipient_id"`
	Amount      int64  `json:"amount"`
}
