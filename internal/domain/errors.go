package domain

import "errors"

// Taxonomia de erros da transferência.
// Rejeições de negócio (esperadas) e falhas de infraestrutura (inesperadas)
// são sentinelas distintas para o handler mapear o status HTTP correto.
var (
	// Rejeições de negócio
	ErrIneligiblePayer     = errors.New("merchant accounts cannot initiate transfers")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrPayerNotFound       = errors.New("payer not found")
	ErrRecipientNotFound   = errors.New("recipient not found")
	// ErrAccountNotFound é o sentinela interno do Account Store; o
	// orquestrador o traduz para payer/recipient conforme o papel.
	ErrAccountNotFound     = errors.New("account not found")
	ErrAuthorizationDenied = errors.New("transfer not authorized by external service")
	ErrInvalidAmount       = errors.New("transfer amount must be greater than zero")

	// Falhas (dependência externa, banco, contenção)
	ErrAuthorizationUnavailable = errors.New("authorization service unavailable")
	ErrTransferProcessingFailed = errors.New("transfer processing failed")
	ErrTransferInProgress       = errors.New("another transfer for this payer is in progress")

	// Catch-all: qualquer erro fora da taxonomia vira este
	ErrTransferFailed = errors.New("transfer failed")
)
