package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CalculatorService is the interface that wraps the logged arithmetic operations.
type CalculatorService interface {
	// Method Add returns a + b. Every call is logged exactly once.
	Add(a, b float64) float64
	// Method Subtract returns a - b. Every call is logged exactly once.
	Subtract(a, b float64) float64
}

// CalculatorResponse is the body answered by the calculator routes
type CalculatorResponse struct {
	Result float64 `json:"result"`
}

// CalculatorHandler exposes the calculator over HTTP
type CalculatorHandler struct {
	BaseHandler
	service CalculatorService
}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler(svc CalculatorService, logger *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers the calculator routes
func (h *CalculatorHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/calculator/{op}", h.Calculate)
}

// Calculate handles GET /api/calculator/{op}
// @Summary Calculate
// @Description Add or subtract two numbers
// @Tags calculator
// @Produce json
// @Param op path string true "add or subtract"
// @Param a query number true "First operand"
// @Param b query number true "Second operand"
// @Success 200 {object} handlers.CalculatorResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/calculator/{op} [get]
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	a, ok := parseOperand(r.URL.Query().Get("a"))
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid a parameter")
		return
	}
	b, ok := parseOperand(r.URL.Query().Get("b"))
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid b parameter")
		return
	}

	var result float64
	switch chi.URLParam(r, "op") {
	case "add":
		result = h.service.Add(a, b)
	case "subtract":
		result = h.service.Subtract(a, b)
	default:
		h.respondError(w, http.StatusNotFound, "unknown operation")
		return
	}
	if math.IsInf(result, 0) {
		h.respondError(w, http.StatusBadRequest, "result out of range")
		return
	}

	h.respondJSON(w, http.StatusOK, CalculatorResponse{Result: result})
}

// parseOperand accepts finite numbers only; NaN and infinities cannot be encoded as JSON
func parseOperand(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
