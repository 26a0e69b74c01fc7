package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"till-reconciliation/internal/domain"
	"till-reconciliation/internal/model"
	"till-reconciliation/internal/usecase"
)

// maxBodyBytes caps request bodies; a cash up is a few hundred bytes.
const maxBodyBytes = 1 << 20

// CashUpService is what the HTTP layer needs from the cash-up usecase.
type CashUpService interface {
	Settings() usecase.Settings
	Calculate(ctx context.Context, cashUp domain.CashUp) (*domain.CashUpResult, error)
	SaveReport(ctx context.Context, cashUp domain.CashUp) (*domain.CashUpResult, string, error)
}

type handler struct {
	svc    CashUpService
	logger *slog.Logger
}

// NewRouter wires the cash-up endpoints onto a chi router.
func NewRouter(svc CashUpService, logger *slog.Logger) http.Handler {
	h := &handler{svc: svc, logger: logger}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(h.logRequests)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/denominations", h.HandleDenominations)
		r.Post("/calculate", h.HandleCalculation)
		r.Post("/reports", h.HandleSaveReport)
	})

	return router
}

// HandleDenominations returns the denomination table, starting float and currency symbol.
func (h *handler) HandleDenominations(w http.ResponseWriter, r *http.Request) {
	settings := h.svc.Settings()
	writeJSON(w, http.StatusOK, model.NewSettingsResponse(settings.Denominations, settings.StartingFloat, settings.CurrencySymbol))
}

// HandleCalculation reconciles the posted cash up without saving anything.
func (h *handler) HandleCalculation(w http.ResponseWriter, r *http.Request) {
	cashUp, ok := h.decodeCashUp(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Calculate(r.Context(), cashUp)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.NewCalculationResponse(*result))
}

// HandleSaveReport reconciles the posted cash up and writes its report file.
func (h *handler) HandleSaveReport(w http.ResponseWriter, r *http.Request) {
	cashUp, ok := h.decodeCashUp(w, r)
	if !ok {
		return
	}
	if cashUp.Date.IsZero() {
		writeError(w, http.StatusBadRequest, "A date is required to save a report")
		return
	}

	result, path, err := h.svc.SaveReport(r.Context(), cashUp)
	if err != nil {
		if result == nil {
			h.writeServiceError(w, r, err)
			return
		}
		// The calculation stands even though the file could not be written.
		h.logger.ErrorContext(r.Context(), "report not saved", "request_id", middleware.GetReqID(r.Context()), "error", err)
		resp := model.NewCalculationResponse(*result)
		resp.Success = false
		resp.Error = err.Error()
		writeJSON(w, statusFor(err), resp)
		return
	}

	resp := model.NewCalculationResponse(*result)
	resp.Path = path
	writeJSON(w, http.StatusCreated, resp)
}

func (h *handler) decodeCashUp(w http.ResponseWriter, r *http.Request) (domain.CashUp, bool) {
	var req model.CalculationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return domain.CashUp{}, false
	}

	cashUp, err := req.ToCashUp(h.svc.Settings().Denominations)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.CashUp{}, false
	}
	return cashUp, true
}

func (h *handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrReportExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			h.logger.InfoContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{
		Success: false,
		Status:  status,
		Error:   message,
	})
}
