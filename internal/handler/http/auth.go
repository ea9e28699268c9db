package http

import (
	"encoding/json"
	"net/http"

	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("login", user.Login).Int("status", status).Msg("user registration failed")
		utils.WriteError(w, messageFromError("", err, status), status)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("login", user.Login).Int("status", status).Msg("user login failed")
		utils.WriteError(w, messageFromError("", err, status), status)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgLoginFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	w.WriteHeader(http.StatusOK)
}
