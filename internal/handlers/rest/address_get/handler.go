package address_get

import (
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/service/address"
	"dispatch/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	addressEntity, err := h.service.GetAddress(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, address.ErrAddressNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, address.ErrInvalidAddressID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get address")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.AddressFromEntity(*addressEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
