package users_get

import (
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/service/user"
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
	var filter entities.UserFilter
	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		userType := entities.UserType(typeParam)
		filter.Type = &userType
	}

	userEntities, err := h.service.GetUsers(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserType):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get users")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.FromEntities(userEntities, response.UserFromEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
