package orders_driver_get

import (
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/pkg/logger"

	"github.com/gorilla/mux"
)

// Route дата допускается и как 2018/12/12, и как 2018-12-12.
const Route = "/orders/driver/{driver:-?[0-9]+}/{date:[0-9]{4}[/-][0-9]{2}[/-][0-9]{2}}"

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
	vars := mux.Vars(r)

	driverID, err := strconv.ParseInt(vars["driver"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	dateParam := vars["date"]
	date, err := entities.ParseDeliveryDate(dateParam)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntities, err := h.service.OrdersForDriver(r.Context(), driverID, date)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("driver", driverID),
			logger.NewField("date", dateParam),
		).Error("get orders for driver")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = response.WriteJSON(w, http.StatusOK, dto.Envelope{
		Status:      response.StatusOK,
		Description: "Return orders to complete on: " + dateParam,
		Data:        response.FromEntities(orderEntities, response.OrderFromEntity),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
