package users_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
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
	var userCreateDTO dto.UserCreate
	err := json.NewDecoder(r.Body).Decode(&userCreateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	userModify := entities.UserModify{
		Name:     userCreateDTO.Name,
		Lastname: userCreateDTO.Lastname,
		Email:    userCreateDTO.Email,
		Phone:    userCreateDTO.Phone,
	}
	if userCreateDTO.Type != nil {
		userType := entities.UserType(*userCreateDTO.Type)
		userModify.Type = &userType
	}

	id, err := h.service.CreateUser(r.Context(), userModify)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidName),
			errors.Is(err, user.ErrInvalidLastname),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidPhone),
			errors.Is(err, user.ErrInvalidUserType):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrConflict):
			h.writeError(w, http.StatusConflict, user.ErrConflict.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create user")
			h.writeError(w, http.StatusInternalServerError, "internal error")
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

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	err := response.WriteError(w, status, message)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
