package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kmagpayo/yieldtrack-backend/internal/api/httpx"
	"github.com/kmagpayo/yieldtrack-backend/internal/auth"
	"github.com/kmagpayo/yieldtrack-backend/internal/models"
	"github.com/kmagpayo/yieldtrack-backend/internal/services"
)

type AuthHandler struct {
	TM    *auth.TokenManager
	Users *services.UserService
}

func NewAuthHandler(tm *auth.TokenManager, users *services.UserService) *AuthHandler {
	return &AuthHandler{TM: tm, Users: users}
}

type tokenResp struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"` // seconds
	User         models.User `json:"user"`
}

func (h *AuthHandler) tokens(w http.ResponseWriter, status int, u models.User) {
	access, refresh, exp, err := h.TM.GeneratePair(u.ID, u.Role)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "token_error", "token generation failed", nil)
		return
	}
	httpx.WriteJSON(w, status, tokenResp{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(time.Until(exp).Seconds()),
		User:         u,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		Password    string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	u, err := h.Users.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			httpx.WriteError(w, http.StatusConflict, "duplicate", "email already registered", nil)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "validation", err.Error(), nil)
		return
	}
	h.tokens(w, http.StatusCreated, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	u, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid email or password", nil)
		return
	}
	h.tokens(w, http.StatusOK, u)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	claims, isRefresh, err := h.TM.ParseAny(req.RefreshToken)
	if err != nil || !isRefresh {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid refresh token", nil)
		return
	}
	access, refresh, exp, err := h.TM.GeneratePair(claims.UserID, claims.Role)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "token_error", "token generation failed", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
		"expires_in":    int64(time.Until(exp).Seconds()),
	})
}
