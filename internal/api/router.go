package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/shopspring/decimal"

	"github.com/kmagpayo/yieldtrack-backend/internal/api/handlers"
	"github.com/kmagpayo/yieldtrack-backend/internal/api/httpx"
	"github.com/kmagpayo/yieldtrack-backend/internal/api/validate"
	"github.com/kmagpayo/yieldtrack-backend/internal/config"
	"github.com/kmagpayo/yieldtrack-backend/internal/metrics"
	"github.com/kmagpayo/yieldtrack-backend/internal/middleware"
	"github.com/kmagpayo/yieldtrack-backend/internal/models"
	"github.com/kmagpayo/yieldtrack-backend/internal/projection"
	"github.com/kmagpayo/yieldtrack-backend/internal/rates"
	"github.com/kmagpayo/yieldtrack-backend/internal/services"
)

type accountReq struct {
	DisplayName string          `json:"display_name"`
	BankName    string          `json:"bank_name"`
	Balance     decimal.Decimal `json:"balance"`
	// Accepted for wire compatibility, never honored: the engine owns
	// this field and overwrites whatever the owner sends.
	YieldRate decimal.Decimal `json:"yield_rate"`
}

func NewRouter(cfg config.Config, am *middleware.AuthMiddleware, ah *handlers.AuthHandler, registry *rates.Registry, accounts *services.AccountService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)
		r.Post("/auth/refresh", ah.Refresh)

		// ---------- authenticated ----------
		r.Group(func(r chi.Router) {
			r.Use(am.Auth)

			// canonical rates, ordered by bank name for display
			r.Get("/rates", func(w http.ResponseWriter, r *http.Request) {
				out, err := registry.List(r.Context())
				if err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				if out == nil {
					out = []models.YieldRate{}
				}
				httpx.WriteJSON(w, http.StatusOK, out)
			})

			// ---------- accounts ----------
			r.Post("/accounts", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req accountReq
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
					return
				}
				if errs := accountErrs(req); len(errs) > 0 {
					httpx.WriteError(w, http.StatusBadRequest, "validation", errs.Error(), errs)
					return
				}
				a, err := accounts.Create(r.Context(), uid, services.AccountInput{
					DisplayName: req.DisplayName, BankName: req.BankName, Balance: req.Balance,
				})
				if err != nil {
					writeAccountErr(w, err)
					return
				}
				httpx.WriteJSON(w, http.StatusCreated, a)
			})

			r.Get("/accounts", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				out, err := accounts.List(r.Context(), uid)
				if err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				if out == nil {
					out = []models.BankAccount{}
				}
				httpx.WriteJSON(w, http.StatusOK, out)
			})

			r.Get("/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				a, err := accounts.Get(r.Context(), uid, chi.URLParam(r, "id"))
				if err != nil {
					writeAccountErr(w, err)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, a)
			})

			r.Put("/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req accountReq
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
					return
				}
				if errs := accountErrs(req); len(errs) > 0 {
					httpx.WriteError(w, http.StatusBadRequest, "validation", errs.Error(), errs)
					return
				}
				a, err := accounts.Update(r.Context(), uid, chi.URLParam(r, "id"), services.AccountInput{
					DisplayName: req.DisplayName, BankName: req.BankName, Balance: req.Balance,
				})
				if err != nil {
					writeAccountErr(w, err)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, a)
			})

			r.Delete("/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				if err := accounts.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
					writeAccountErr(w, err)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			})

			r.Get("/accounts/{id}/projection", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				days, ef := validate.PositiveDays("days", r.URL.Query().Get("days"), projection.DefaultDays)
				if ef != nil {
					httpx.WriteError(w, http.StatusBadRequest, "validation", ef.Msg, validate.Errs{*ef})
					return
				}
				res, err := accounts.Projection(r.Context(), uid, chi.URLParam(r, "id"), days)
				if err != nil {
					writeAccountErr(w, err)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, res)
			})

			// ---------- admin ----------
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleAdmin))

				r.Get("/rates", func(w http.ResponseWriter, r *http.Request) {
					out, err := registry.List(r.Context())
					if err != nil {
						httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
						return
					}
					if out == nil {
						out = []models.YieldRate{}
					}
					httpx.WriteJSON(w, http.StatusOK, out)
				})

				r.Post("/rates", func(w http.ResponseWriter, r *http.Request) {
					var req struct {
						BankName string          `json:"bank_name"`
						Rate     decimal.Decimal `json:"rate"`
					}
					if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
						httpx.WriteError(w, http.StatusBadRequest, "bad_request", "rate must be a number", nil)
						return
					}
					yr, err := registry.Upsert(r.Context(), req.BankName, req.Rate)
					if err != nil {
						httpx.WriteError(w, http.StatusBadRequest, "validation", err.Error(), nil)
						return
					}
					httpx.WriteJSON(w, http.StatusOK, yr)
				})
			})
		})
	})

	return r
}

func accountErrs(req accountReq) validate.Errs {
	var errs validate.Errs
	if ef := validate.Required("display_name", req.DisplayName); ef != nil {
		errs = append(errs, *ef)
	}
	if ef := validate.Required("bank_name", req.BankName); ef != nil {
		errs = append(errs, *ef)
	}
	if ef := validate.NonNegative("balance", req.Balance); ef != nil {
		errs = append(errs, *ef)
	}
	return errs
}

func writeAccountErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "bank account not found", nil)
	case errors.Is(err, models.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "not your account", nil)
	case errors.Is(err, models.ErrDuplicate):
		httpx.WriteError(w, http.StatusConflict, "duplicate", "display name already used", nil)
	case errors.Is(err, services.ErrDaysNotPositive):
		httpx.WriteError(w, http.StatusBadRequest, "validation", err.Error(), nil)
	default:
		httpx.WriteError(w, http.StatusBadRequest, "validation", err.Error(), nil)
	}
}
