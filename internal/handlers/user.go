package handlers

import (
	"RecipeBox/internal/config"
	"RecipeBox/internal/middleware"
	"RecipeBox/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler: регистрация, вход, друзья.
type UserHandler struct {
	Service *service.UserService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Service: userService, Logger: logger, Config: cfg}
}

type usernameRequest struct {
	Username string `json:"username"`
}

type friendRequest struct {
	FriendUsername string `json:"friendUsername"`
}

// Register регистрация пользователя по имени
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req usernameRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.Service.Register(r.Context(), req.Username)
	if err != nil {
		writeServiceError(w, h.Logger, "Register", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Login вход по имени, неизвестный пользователь создаётся
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req usernameRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.Service.Login(r.Context(), req.Username)
	if err != nil {
		writeServiceError(w, h.Logger, "Login", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// AddFriend взаимная дружба с friendUsername
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	me, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing X-User header")
		return
	}

	var req friendRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("AddFriend: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.Service.AddFriend(r.Context(), *me, req.FriendUsername); err != nil {
		writeServiceError(w, h.Logger, "AddFriend", err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// Me профиль текущего пользователя
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	me, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing X-User header")
		return
	}

	profile, err := h.Service.Me(r.Context(), *me)
	if err != nil {
		writeServiceError(w, h.Logger, "Me", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
