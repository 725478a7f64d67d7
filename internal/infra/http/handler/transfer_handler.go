package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/usecase"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransferHandler expõe a operação de transferência via HTTP
type TransferHandler struct {
	transferUseCase *usecase.TransferMoneyUseCase
}

func NewTransferHandler(uc *usecase.TransferMoneyUseCase) *TransferHandler {
	return &TransferHandler{
		transferUseCase: uc,
	}
}

// CreateTransferRequest aceita o valor como moeda decimal ("10.50" ou 10.50).
// É a ÚNICA borda que lida com decimal: daqui pra dentro tudo é centavo int64.
type CreateTransferRequest struct {
	PayerID     int64           `json:"payer_id"`
	RecipientID int64           `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
}

type CreateTransferResponse struct {
	TransferID string `json:"transfer_id"`
	Status     string `json:"status"`
}

// Create processa a requisição de transferência
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	// Conversão única para centavos, com arredondamento explícito:
	// precisão abaixo de centavo é rejeitada, nunca arredondada em silêncio.
	cents := req.Amount.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		respondError(w, http.StatusBadRequest, "Valor com precisão abaixo de centavo")
		return
	}
	// IntPart truncaria em silêncio fora do intervalo de int64
	if !cents.BigInt().IsInt64() {
		respondError(w, http.StatusBadRequest, "Valor fora do intervalo suportado")
		return
	}

	output, err := h.transferUseCase.Execute(ctx, usecase.TransferMoneyInput{
		PayerID:     req.PayerID,
		RecipientID: req.RecipientID,
		Amount:      cents.IntPart(),
	})
	if err != nil {
		respondTransferError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CreateTransferResponse{
		TransferID: output.TransferID,
		Status:     "completed",
	})
}

// respondTransferError mapeia a taxonomia de domínio para status HTTP.
// Rejeições de negócio viram 4xx; falhas de infraestrutura, 5xx.
func respondTransferError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, "Valor inválido")
	case errors.Is(err, domain.ErrPayerNotFound):
		respondError(w, http.StatusNotFound, "Pagador não encontrado")
	case errors.Is(err, domain.ErrRecipientNotFound):
		respondError(w, http.StatusNotFound, "Destinatário não encontrado")
	case errors.Is(err, domain.ErrIneligiblePayer):
		respondError(w, http.StatusForbidden, "Lojistas não podem realizar transferências")
	case errors.Is(err, domain.ErrInsufficientFunds):
		respondError(w, http.StatusUnprocessableEntity, "Saldo insuficiente")
	case errors.Is(err, domain.ErrAuthorizationDenied):
		respondError(w, http.StatusForbidden, "Transferência não autorizada pelo serviço externo")
	case errors.Is(err, domain.ErrAuthorizationUnavailable):
		respondError(w, http.StatusBadGateway, "Serviço autorizador indisponível")
	case errors.Is(err, domain.ErrTransferInProgress):
		respondError(w, http.StatusTooManyRequests, "Outra transferência deste pagador está em andamento. Tente novamente em instantes.")
	default:
		// ErrTransferProcessingFailed, ErrTransferFailed e afins
		log.Error().Err(err).Msg("Erro interno ao processar transferência")
		respondError(w, http.StatusInternalServerError, "Erro ao processar a transferência")
	}
}

// Helpers para resposta JSON
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Falha ao codificar resposta JSON")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
