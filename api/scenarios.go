/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:
	Provides pre-built scenarios that populate the database with realistic
	employees for demos of the pay computation. Scenarios are defined in
	scenarios.yaml, embedded in the binary.

HOW SCENARIOS WORK:
 1. Reset database (clear all employees)
 2. Create each employee through payroll.Service (numbers are generated)

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "mwf-birthday"}

NOTE:
	Scenarios reset the database. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: Error mapping
  - scenarios.yaml: Definitions
*/
package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
)

//go:embed scenarios.yaml
var scenariosYAML []byte

type scenarioEmployee struct {
	FirstName   string   `yaml:"firstName"`
	LastName    string   `yaml:"lastName"`
	MiddleName  string   `yaml:"middleName"`
	DOB         string   `yaml:"dob"`
	DailyRate   string   `yaml:"dailyRate"`
	WorkingDays []string `yaml:"workingDays"`
}

type scenario struct {
	ScenarioDTO `yaml:",inline"`
	Employees   []scenarioEmployee `yaml:"employees"`
}

// scenarios is parsed once at startup; a broken embedded file is a build defect.
var scenarios = mustParseScenarios(scenariosYAML)

func mustParseScenarios(b []byte) []scenario {
	var file struct {
		Scenarios []scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(b, &file); err != nil {
		panic(fmt.Sprintf("parse scenarios.yaml: %v", err))
	}
	return file.Scenarios
}

func findScenario(id string) (scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return scenario{}, false
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = s.ScenarioDTO
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCurrentScenario returns the currently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	current := h.currentScenario
	h.mu.Unlock()

	if s, ok := findScenario(current); ok {
		writeJSON(w, http.StatusOK, s.ScenarioDTO)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

// LoadScenario loads a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusNotFound, "Scenarios are disabled")
		return
	}

	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "scenario_id is required")
		return
	}
	if _, ok := findScenario(req.ScenarioID); !ok {
		writeError(w, http.StatusBadRequest, "Unknown scenario")
		return
	}

	if err := h.LoadScenarioByID(r.Context(), req.ScenarioID); err != nil {
		h.writeDomainError(w, r, "Failed to load scenario", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "scenario": req.ScenarioID})
}

// LoadScenarioByID resets the store and creates the scenario's employees.
// It is also used at startup when a seed scenario is configured.
//
// Rows are converted before the reset, so a malformed scenario leaves the
// store untouched. A store failure after the reset can still leave the
// scenario partly loaded; currentScenario is then empty.
func (h *Handler) LoadScenarioByID(ctx context.Context, id string) error {
	s, ok := findScenario(id)
	if !ok {
		return &generic.ValidationError{Field: "scenario_id", Message: fmt.Sprintf("unknown scenario %q", id)}
	}

	inputs, err := s.inputs()
	if err != nil {
		return fmt.Errorf("scenario %s: %w", id, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.Store.Reset(ctx); err != nil {
		return err
	}
	h.currentScenario = ""

	for _, in := range inputs {
		if _, err := h.Service.CreateEmployee(ctx, in); err != nil {
			return fmt.Errorf("scenario %s: %w", id, err)
		}
	}

	h.currentScenario = id
	h.Logger.Info("scenario loaded", zap.String("scenario", id), zap.Int("employees", len(inputs)))
	return nil
}

// inputs converts every row to service input, failing on the first bad one.
func (s scenario) inputs() ([]payroll.EmployeeInput, error) {
	out := make([]payroll.EmployeeInput, 0, len(s.Employees))
	for _, e := range s.Employees {
		rate, err := generic.ParseAmount(e.DailyRate)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", e.FirstName, e.LastName, err)
		}
		if _, err := generic.ParseDateField("dob", e.DOB); err != nil {
			return nil, fmt.Errorf("%s %s: %w", e.FirstName, e.LastName, err)
		}
		days := make(payroll.WorkingDays, len(e.WorkingDays))
		for i, d := range e.WorkingDays {
			days[i] = payroll.WeekdayLabel(d)
		}
		out = append(out, payroll.EmployeeInput{
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			MiddleName:  e.MiddleName,
			DateOfBirth: e.DOB,
			DailyRate:   &rate,
			WorkingDays: days,
		})
	}
	return out, nil
}
