package handler

import (
	"errors"
	"net/http"
	"strings"

	"englearn/internal/middleware"
	"englearn/internal/repository"
	"englearn/internal/service"

	"go.uber.org/zap"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, repository.ErrStoreUnavailable):
			h.logger.Error("Registration failed", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "registration failed")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondData(w, map[string]int{"user_id": id})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("Login failed", zap.String("username", req.Username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	respondData(w, map[string]interface{}{
		"token": user.Token,
		"user":  user,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	if err := h.auth.Logout(user.ID); err != nil {
		h.logger.Error("Logout failed", zap.Int("user_id", user.ID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	respondMessage(w, http.StatusOK, "logged out")
}

// handleCurrentUser resolves the bearer token without requiring it, so
// the client can probe login state and get a clean "not logged in".
func (h *Handler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" || token == r.Header.Get("Authorization") {
		respondData(w, map[string]interface{}{"logged_in": false})
		return
	}

	user, err := h.auth.UserByToken(token)
	if err != nil {
		respondData(w, map[string]interface{}{"logged_in": false})
		return
	}

	respondData(w, map[string]interface{}{"logged_in": true, "user": user})
}

type profileRequest struct {
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, _ := middleware.UserFrom(r.Context())
	if err := h.auth.UpdateProfile(user.ID, req.Email, req.Avatar); err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) || errors.Is(err, repository.ErrNotFound) {
			h.logger.Error("Profile update failed", zap.Int("user_id", user.ID), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "profile update failed")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondMessage(w, http.StatusOK, "profile updated")
}

type passwordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, _ := middleware.UserFrom(r.Context())
	err := h.auth.ChangePassword(user.ID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "old password is wrong")
		case errors.Is(err, repository.ErrStoreUnavailable), errors.Is(err, repository.ErrNotFound):
			h.logger.Error("Password change failed", zap.Int("user_id", user.ID), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "password change failed")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	respondMessage(w, http.StatusOK, "password changed")
}
