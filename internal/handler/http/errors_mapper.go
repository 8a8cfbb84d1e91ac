package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/stock-keeper/internal/service"
	"github.com/MKhiriev/stock-keeper/internal/store"
	"github.com/MKhiriev/stock-keeper/internal/utils"
	"github.com/MKhiriev/stock-keeper/models"
)

// User-facing messages. The wire vocabulary is Portuguese for compatibility
// with the clients this API was built for.
const (
	msgLoginSuccess       = "Login realizado com sucesso"
	msgInvalidCredentials = "Usuário ou senha inválidos"
	msgTokenInvalid       = "Token inválido ou expirado"
	msgInvalidData        = "Dados inválidos ou ausentes"
	msgItemNotFound       = "Item não foi encontrado"
	msgLotNotFound        = "Lote não foi encontrado"
	msgItemAdded          = "Item adicionado com sucesso"
	msgItemUpdated        = "Item atualizado com sucesso"
	msgItemDeleted        = "Item deletado com sucesso"
	msgLotAdded           = "Lote adicionado com sucesso"
	msgLotUpdated         = "Lote atualizado com sucesso"
	msgLotDeleted         = "Lote deletado com sucesso"
	msgInternalError      = "Erro interno do servidor"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidData:             http.StatusBadRequest,

	store.ErrItemNotFound: http.StatusNotFound,
	store.ErrLotNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:      msgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: msgTokenInvalid,
	service.ErrInvalidData:             msgInvalidData,

	store.ErrItemNotFound: msgItemNotFound,
	store.ErrLotNotFound:  msgLotNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgInternalError
}

// writeError converts a service- or store-level error into the structured
// JSON error body {"erro": <message>} with the mapped status code. Unknown
// errors become a generic 500.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, statusFromError(err))
}
