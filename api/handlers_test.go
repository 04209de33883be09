/*
handlers_test.go - HTTP tests for the employee and pay endpoints

Tests for:
- Employee CRUD through the router (status codes and bodies)
- Both request shapes (dob/workingDays and dateOfBirth/workingDayNumbers)
- Compute-pay results and error mapping
- Per-IP rate limiting and storage failures
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
	mock_payroll "github.com/warp/payroll-engine/payroll/mock"
	"github.com/warp/payroll-engine/store/memory"
)

func setupTestRouter(t *testing.T) (http.Handler, *Handler) {
	t.Helper()
	store := memory.New()
	svc := payroll.NewService(store, payroll.NewSeededNumberGenerator(11), nil, payroll.DefaultOptions())
	h := NewHandler(svc, store, nil)
	return NewRouter(h, RouterOptions{AllowedOrigins: []string{"*"}}), h
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const mariaJSON = `{
	"firstName": "Maria",
	"lastName": "Dela Cruz",
	"dob": "1990-03-15",
	"dailyRate": 1000,
	"workingDays": ["Monday", "Wednesday", "Friday"]
}`

func createMaria(t *testing.T, router http.Handler) EmployeeDTO {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/api/employees", mariaJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[EmployeeDTO](t, rec)
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func TestCreateEmployee(t *testing.T) {
	router, _ := setupTestRouter(t)

	emp := createMaria(t, router)

	assert.Equal(t, int64(1), emp.ID)
	assert.Regexp(t, `^DEL-\d{5}-15MAR1990$`, emp.EmployeeNumber)
	assert.Equal(t, "1990-03-15", emp.DOB)
	assert.Equal(t, "1990-03-15", emp.DateOfBirth)
	assert.Nil(t, emp.MiddleName)
	assert.Equal(t, "1000.00", emp.DailyRate.StringFixed())
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, emp.WorkingDays)
	assert.Equal(t, []int{1, 3, 5}, emp.WorkingDayNumbers)
}

func TestCreateEmployee_NumericDayShape(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/employees", `{
		"firstName": "Leo",
		"lastName": "Ng",
		"middleName": "Tan",
		"dateOfBirth": "1996-02-29",
		"dailyRate": "850.50",
		"workingDayNumbers": [4, 2]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	emp := decode[EmployeeDTO](t, rec)
	assert.Regexp(t, `^NGX-\d{5}-29FEB1996$`, emp.EmployeeNumber)
	require.NotNil(t, emp.MiddleName)
	assert.Equal(t, "Tan", *emp.MiddleName)
	assert.Equal(t, "850.50", emp.DailyRate.StringFixed())
	assert.Equal(t, []string{"Thursday", "Tuesday"}, emp.WorkingDays)
	assert.Equal(t, []int{2, 4}, emp.WorkingDayNumbers)
}

func TestCreateEmployee_EmptyLabelsFallBackToNumbers(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/employees", `{
		"firstName": "Leo",
		"lastName": "Ng",
		"dob": "1996-02-29",
		"dailyRate": 850,
		"workingDays": [],
		"workingDayNumbers": [1, 5]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	emp := decode[EmployeeDTO](t, rec)
	assert.Equal(t, []string{"Monday", "Friday"}, emp.WorkingDays)
	assert.Equal(t, []int{1, 5}, emp.WorkingDayNumbers)
}

func TestCreateEmployee_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"firstName":`},
		{"missing first name", `{"lastName":"Li","dob":"2001-01-01","dailyRate":700,"workingDays":["Monday"]}`},
		{"missing dob", `{"firstName":"Chen","lastName":"Li","dailyRate":700,"workingDays":["Monday"]}`},
		{"missing rate", `{"firstName":"Chen","lastName":"Li","dob":"2001-01-01","workingDays":["Monday"]}`},
		{"missing working days", `{"firstName":"Chen","lastName":"Li","dob":"2001-01-01","dailyRate":700}`},
		{"bad dob", `{"firstName":"Chen","lastName":"Li","dob":"01/01/2001","dailyRate":700,"workingDays":["Monday"]}`},
		{"negative rate", `{"firstName":"Chen","lastName":"Li","dob":"2001-01-01","dailyRate":-1,"workingDays":["Monday"]}`},
		{"weekday out of range", `{"firstName":"Chen","lastName":"Li","dob":"2001-01-01","dailyRate":700,"workingDayNumbers":[7]}`},
		{"no recognized weekday", `{"firstName":"Chen","lastName":"Li","dob":"2001-01-01","dailyRate":700,"workingDays":["Funday"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupTestRouter(t)
			rec := do(t, router, http.MethodPost, "/api/employees", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decode[ErrorDTO](t, rec).Error)

			list := do(t, router, http.MethodGet, "/api/employees", "")
			assert.Empty(t, decode[[]EmployeeDTO](t, list))
		})
	}
}

func TestCreateEmployee_MissingFieldsMessage(t *testing.T) {
	router, _ := setupTestRouter(t)
	rec := do(t, router, http.MethodPost, "/api/employees", `{"firstName":"Chen"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decode[ErrorDTO](t, rec).Error)
}

func TestListEmployees(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	createMaria(t, router)
	rec = do(t, router, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]EmployeeDTO](t, rec), 1)
}

func TestGetEmployee(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createMaria(t, router)

	rec := do(t, router, http.MethodGet, fmt.Sprintf("/api/employees/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[EmployeeDTO](t, rec))
}

func TestGetEmployee_NotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{"/api/employees/99", "/api/employees/abc", "/api/employees/0", "/api/employees/-1"} {
		rec := do(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Employee not found", decode[ErrorDTO](t, rec).Error, path)
	}
}

func TestUpdateEmployee(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createMaria(t, router)

	rec := do(t, router, http.MethodPut, fmt.Sprintf("/api/employees/%d", created.ID), `{
		"firstName": "Maria",
		"lastName": "Reyes",
		"dob": "1990-03-15",
		"dailyRate": 1500,
		"workingDays": ["Tuesday"]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decode[EmployeeDTO](t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Regexp(t, `^REY-\d{5}-15MAR1990$`, updated.EmployeeNumber)
	assert.Equal(t, "1500.00", updated.DailyRate.StringFixed())
	assert.Equal(t, []string{"Tuesday"}, updated.WorkingDays)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	router, _ := setupTestRouter(t)
	rec := do(t, router, http.MethodPut, "/api/employees/42", mariaJSON)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateEmployee_MissingFields(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createMaria(t, router)

	rec := do(t, router, http.MethodPut, fmt.Sprintf("/api/employees/%d", created.ID), `{"lastName":"Reyes"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEmployee(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createMaria(t, router)
	path := fmt.Sprintf("/api/employees/%d", created.ID)

	rec := do(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// PAY
// =============================================================================

func TestComputePay(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createMaria(t, router)

	// GIVEN: Mon/Wed/Fri at 1000, birthday on Friday March 15
	// WHEN: computing the week of 2024-03-11
	rec := do(t, router, http.MethodPost, fmt.Sprintf("/api/employees/%d/compute-pay", created.ID),
		`{"startDate":"2024-03-11","endDate":"2024-03-17"}`)

	// THEN: 3 x 2000 + 1000
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, float64(7000), raw["takeHomePay"])

	result := decode[ComputePayResponse](t, rec)
	assert.Equal(t, "2024-03-11", result.StartDate)
	assert.Equal(t, "2024-03-17", result.EndDate)
	assert.Equal(t, 7, result.Days)
	assert.Equal(t, 3, result.WorkingDays)
	assert.Equal(t, 1, result.BirthdayDays)
	assert.Equal(t, "6000.00", result.WorkingPay.StringFixed())
	assert.Equal(t, "1000.00", result.BirthdayPay.StringFixed())
}

func TestComputePay_NonWorkingDay(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createMaria(t, router)

	rec := do(t, router, http.MethodPost, fmt.Sprintf("/api/employees/%d/compute-pay", created.ID),
		`{"startDate":"2024-03-16","endDate":"2024-03-16"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[ComputePayResponse](t, rec).TakeHomePay.IsZero())
}

func TestComputePay_Errors(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createMaria(t, router)
	path := fmt.Sprintf("/api/employees/%d/compute-pay", created.ID)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		msg    string
	}{
		{"missing dates", path, `{}`, http.StatusBadRequest, "startDate and endDate are required"},
		{"missing end", path, `{"startDate":"2024-03-11"}`, http.StatusBadRequest, "startDate and endDate are required"},
		{"malformed body", path, `nope`, http.StatusBadRequest, "Invalid request body"},
		{"end before start", path, `{"startDate":"2024-03-17","endDate":"2024-03-11"}`, http.StatusBadRequest, ""},
		{"bad date", path, `{"startDate":"2024-03-32","endDate":"2024-04-01"}`, http.StatusBadRequest, ""},
		{"unknown employee", "/api/employees/999/compute-pay", `{"startDate":"2024-03-11","endDate":"2024-03-17"}`, http.StatusNotFound, "Employee not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			errMsg := decode[ErrorDTO](t, rec).Error
			if tt.msg != "" {
				assert.Equal(t, tt.msg, errMsg)
			} else {
				assert.NotEmpty(t, errMsg)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	router, _ := setupTestRouter(t)
	rec := do(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	store := memory.New()
	svc := payroll.NewService(store, nil, nil, payroll.DefaultOptions())
	router := NewRouter(NewHandler(svc, store, nil), RouterOptions{RateLimit: 1, RateBurst: 2})

	get := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, get("192.0.2.1:1000"))
	assert.Equal(t, http.StatusOK, get("192.0.2.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, get("192.0.2.1:1002"))

	// Buckets are per client IP.
	assert.Equal(t, http.StatusOK, get("192.0.2.2:1000"))

	// Liveness is outside /api.
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "192.0.2.1:1003"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStorageFailureIs500(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_payroll.NewMockResettableStore(ctrl)
	svc := payroll.NewService(store, nil, nil, payroll.DefaultOptions())
	router := NewRouter(NewHandler(svc, store, nil), RouterOptions{})

	cause := errors.New("disk I/O error")
	store.EXPECT().ListEmployees(gomock.Any()).Return(nil, generic.NewStorageError("list employees", cause))
	store.EXPECT().Reset(gomock.Any()).Return(generic.NewStorageError("reset", cause))

	rec := do(t, router, http.MethodGet, "/api/employees", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch employees", decode[ErrorDTO](t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "disk I/O")

	rec = do(t, router, http.MethodPost, "/api/scenarios/load", `{"scenario_id":"mwf-birthday"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to load scenario", decode[ErrorDTO](t, rec).Error)
}
