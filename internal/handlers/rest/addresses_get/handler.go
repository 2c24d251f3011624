package addresses_get

import (
	"net/http"

	"dispatch/internal/handlers/rest/response"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	addressEntities, err := h.service.GetAddresses(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get addresses")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.FromEntities(addressEntities, response.AddressFromEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
