package countries_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
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
	var countryCreateDTO dto.CountryCreate
	err := json.NewDecoder(r.Body).Decode(&countryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateCountry(r.Context(), entities.CountryModify{
		Name: countryCreateDTO.Name,
		Slug: countryCreateDTO.Slug,
	})
	if err != nil {
		switch {
		case errors.Is(err, address.ErrMissingRequiredFields),
			errors.Is(err, address.ErrInvalidName),
			errors.Is(err, address.ErrInvalidSlug):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, address.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create country")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = response.WriteJSON(w, http.StatusCreated, dto.CreateResponse{ID: id})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
