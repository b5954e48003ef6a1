/*
handlers.go - HTTP API handlers for tool rental checkout

PURPOSE:
  Exposes the checkout service via REST API. Handles HTTP request/response
  and JSON serialization, and delegates pricing to the rental package.

ENDPOINTS:
  Tools:
    GET    /api/tools                  List rentable tools with charge policy
    GET    /api/tools/{code}           Get a single tool

  Checkout:
    POST   /api/checkout               Price a rental, JSON agreement
    POST   /api/checkout/summary       Price a rental, plain-text agreement

  Holidays:
    GET    /api/holidays/{year}        Observed holidays for a year

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid body, date, discount or day count
  - 404: Unknown tool code
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/warp/tool-rental/catalog"
	"github.com/warp/tool-rental/generic"
	"github.com/warp/tool-rental/rental"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Service *rental.Service
	log     *slog.Logger
}

// NewHandler creates a new handler around a checkout service.
func NewHandler(svc *rental.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{Service: svc, log: log}
}

// =============================================================================
// TOOL HANDLERS
// =============================================================================

// ListTools returns all rentable tools.
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.Service.Tools(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "Failed to list tools", err)
		return
	}

	dtos := make([]ToolDTO, len(tools))
	for i, t := range tools {
		dtos[i] = toToolDTO(t)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetTool returns a single tool.
func (h *Handler) GetTool(w http.ResponseWriter, r *http.Request) {
	code := catalog.NormalizeCode(chi.URLParam(r, "code"))

	tool, err := h.Service.Tool(r.Context(), code)
	if err != nil {
		h.writeServiceError(w, r, "Failed to get tool", err)
		return
	}
	writeJSON(w, http.StatusOK, toToolDTO(tool))
}

// =============================================================================
// CHECKOUT HANDLERS
// =============================================================================

// Checkout prices a rental and returns the agreement as JSON.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	agreement, ok := h.checkout(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toAgreementDTO(uuid.NewString(), agreement))
}

// CheckoutSummary prices a rental and returns the rendered agreement text.
func (h *Handler) CheckoutSummary(w http.ResponseWriter, r *http.Request) {
	agreement, ok := h.checkout(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(agreement.String()))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) (rental.Agreement, bool) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return rental.Agreement{}, false
	}

	checkoutDate, err := generic.ParseDate(req.CheckoutDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid checkout_date format (use MM/DD/YYYY or YYYY-MM-DD)", err)
		return rental.Agreement{}, false
	}

	agreement, err := h.Service.Checkout(r.Context(), rental.Request{
		ToolCode:        catalog.NormalizeCode(req.ToolCode),
		RentalDayCount:  req.RentalDays,
		DiscountPercent: req.DiscountPercent,
		CheckoutDate:    checkoutDate,
	})
	if err != nil {
		h.writeServiceError(w, r, "Checkout failed", err)
		return rental.Agreement{}, false
	}
	return agreement, true
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns the observed holidays of a year.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 || year > 9999 {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	holidays, err := rental.Holidays(year)
	if err != nil {
		h.writeServiceError(w, r, "Failed to resolve holidays", err)
		return
	}

	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = HolidayDTO{
			Name:    hol.Name,
			Date:    hol.Date.String(),
			Weekday: hol.Date.Weekday().String(),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeServiceError maps domain errors to HTTP status codes.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), message,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
	}
	writeError(w, status, message, err)
}

func statusFor(err error) int {
	switch {
	case generic.IsClientError(err):
		return http.StatusBadRequest
	case generic.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
