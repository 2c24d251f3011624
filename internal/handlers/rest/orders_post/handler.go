package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

const (
	descriptionSaved   = "Return a saved order!"
	descriptionPending = "Order saved, waiting for an available driver"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	orderModify, violations := toOrderModify(orderCreateDTO)
	if len(violations) > 0 {
		h.write(w, http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:      "validation failed",
			Violations: &violations,
		})
		return
	}

	created, err := h.service.CreateOrder(r.Context(), orderModify)
	if err != nil {
		var validationErr *order.ValidationError
		switch {
		case errors.As(err, &validationErr):
			violations := toViolations(validationErr.Violations)
			h.write(w, http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error:      "validation failed",
				Violations: &violations,
			})
		case errors.Is(err, order.ErrNoDriverAvailable):
			h.write(w, http.StatusConflict, dto.ErrorResponse{Error: order.ErrNoDriverAvailable.Error()})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			h.write(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}
		return
	}

	status, description := http.StatusCreated, descriptionSaved
	if !created.Assignment.IsAssigned() {
		status, description = http.StatusAccepted, descriptionPending
	}

	h.write(w, status, dto.Envelope{
		Status:      response.StatusOK,
		Description: description,
		Data:        response.OrderFromEntity(*created),
	})
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	err := response.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
