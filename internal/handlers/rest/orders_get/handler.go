package orders_get

import (
	"net/http"
	"strconv"

	"dispatch/internal/entities"
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
	query := r.URL.Query()

	var filter entities.OrderFilter
	if dateParam := query.Get("delivery_date"); dateParam != "" {
		date, err := entities.ParseDeliveryDate(dateParam)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.DeliveryDate = &date
	}
	if driverParam := query.Get("driver"); driverParam != "" {
		driverID, err := strconv.ParseInt(driverParam, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.DriverID = &driverID
	}

	orderEntities, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get orders")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.FromEntities(orderEntities, response.OrderFromEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
