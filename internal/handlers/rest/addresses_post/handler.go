package addresses_post

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
	var addressCreateDTO dto.AddressCreate
	err := json.NewDecoder(r.Body).Decode(&addressCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateAddress(r.Context(), entities.AddressModify{
		Via:        addressCreateDTO.Via,
		Number:     addressCreateDTO.Number,
		Door:       addressCreateDTO.Door,
		Floor:      addressCreateDTO.Floor,
		PostalCode: addressCreateDTO.PostalCode,
		CityID:     addressCreateDTO.CityID,
	})
	if err != nil {
		switch {
		case errors.Is(err, address.ErrMissingRequiredFields),
			errors.Is(err, address.ErrInvalidVia),
			errors.Is(err, address.ErrInvalidNumber),
			errors.Is(err, address.ErrInvalidDoorOrFloor),
			errors.Is(err, address.ErrInvalidPostalCode),
			errors.Is(err, address.ErrInvalidCityID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, address.ErrCityNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create address")
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
