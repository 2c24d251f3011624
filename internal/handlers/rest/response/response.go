package response

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/generated/dto"
)

const StatusOK = "OK"

// WriteJSON пишет статус и тело. Ошибка кодирования возвращается вызывающему для логирования.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, dto.ErrorResponse{Error: message})
}
