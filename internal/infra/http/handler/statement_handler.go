package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type StatementHandler struct {
	getStatementUC *usecase.GetStatementUseCase
}

func NewStatementHandler(getStatementUC *usecase.GetStatementUseCase) *StatementHandler {
	return &StatementHandler{
		getStatementUC: getStatementUC,
	}
}

// Get devolve o extrato da conta: saldo atual e transferências enviadas
// e recebidas, mais recentes primeiro.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "ID de conta inválido")
		return
	}

	output, err := h.getStatementUC.Execute(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			respondError(w, http.StatusNotFound, "Conta não encontrada")
			return
		}
		log.Error().Err(err).Msg("Falha ao buscar extrato")
		respondError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	respondJSON(w, http.StatusOK, output)
}
