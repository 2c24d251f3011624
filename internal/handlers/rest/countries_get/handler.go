package countries_get

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
	countryEntities, err := h.service.GetCountries(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get countries")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.FromEntities(countryEntities, response.CountryFromEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
