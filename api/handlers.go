/*
handlers.go - HTTP API handlers for the payroll service

PURPOSE:
  Exposes the payroll service via REST API. Handles HTTP request/response,
  JSON serialization, presence validation, and delegates to payroll.Service.

ENDPOINTS:
  Employees:
    GET    /api/employees                   List all employees
    POST   /api/employees                   Create employee
    GET    /api/employees/{id}              Get employee details
    PUT    /api/employees/{id}              Replace employee fields
    DELETE /api/employees/{id}              Delete employee

  Pay:
    POST   /api/employees/{id}/compute-pay  Take-home pay for a date range

  Scenarios:
    GET    /api/scenarios                   List demo scenarios
    POST   /api/scenarios/load              Load a demo scenario

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate presence of required fields
  3. Call payroll.Service
  4. Serialize response
  5. Map errors (writeDomainError)

ERROR HANDLING:
  Errors are returned as JSON {"error": "..."} with HTTP status:
  - 400: Missing fields, malformed dates, end before start
  - 404: Employee not found
  - 409: Employee number collision that survived retries
  - 500: Storage failures (cause is logged, not returned)

SECURITY NOTE:
  No authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Service *payroll.Service
	Logger  *zap.Logger

	// Store is only needed by the demo scenarios; nil disables them.
	Store payroll.ResettableStore

	validate *validator.Validate

	// Track currently loaded scenario
	mu              sync.Mutex
	currentScenario string
}

// NewHandler creates a new handler.
func NewHandler(service *payroll.Service, store payroll.ResettableStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Service:  service,
		Store:    store,
		Logger:   logger.Named("api"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		h.writeDomainError(w, r, "Failed to fetch employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, "Failed to fetch employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// CreateEmployee creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.CreateEmployee(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, r, "Failed to create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// UpdateEmployee replaces all fields of an employee.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}
	in, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.UpdateEmployee(r.Context(), id, in)
	if err != nil {
		h.writeDomainError(w, r, "Failed to update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// DeleteEmployee removes an employee.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteEmployee(r.Context(), id); err != nil {
		h.writeDomainError(w, r, "Failed to delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAY HANDLERS
// =============================================================================

// ComputePay returns take-home pay for an employee over a date range.
func (h *Handler) ComputePay(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	var req ComputePayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	result, err := h.Service.ComputePay(r.Context(), id, req.StartDate, req.EndDate)
	if err != nil {
		h.writeDomainError(w, r, "Failed to fetch employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toComputePayResponse(result))
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request) (generic.EntityID, bool) {
	id, err := generic.ParseEntityID(chi.URLParam(r, "id"))
	if err != nil {
		// Unknown ids and malformed ids look the same to the client.
		writeError(w, http.StatusNotFound, "Employee not found")
		return 0, false
	}
	return id, true
}

func (h *Handler) decodeEmployee(w http.ResponseWriter, r *http.Request) (payroll.EmployeeInput, bool) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return payroll.EmployeeInput{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return payroll.EmployeeInput{}, false
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return payroll.EmployeeInput{}, false
	}
	return in, true
}

// writeDomainError maps the generic error taxonomy to HTTP. Storage
// failures are logged with their cause and answered with fallback.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, fallback string, err error) {
	switch {
	case generic.IsClientError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case generic.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Employee not found")
	case errors.Is(err, generic.ErrDuplicateEmployeeNumber):
		writeError(w, http.StatusConflict, "Could not assign a unique employee number, please retry")
	default:
		h.Logger.Error(fallback,
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorDTO{Error: message})
}
