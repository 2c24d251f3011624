package cities_get

import (
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/service/address"
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
	var filter entities.CityFilter
	if countryParam := r.URL.Query().Get("country_id"); countryParam != "" {
		countryID, err := strconv.ParseInt(countryParam, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.CountryID = &countryID
	}

	cityEntities, err := h.service.GetCities(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, address.ErrInvalidCountryID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get cities")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.FromEntities(cityEntities, response.CityFromEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
