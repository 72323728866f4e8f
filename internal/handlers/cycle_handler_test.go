package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"dompet/internal/budget"
	apperrors "dompet/internal/errors"
	"dompet/internal/models"
	"dompet/internal/pagination"
	"dompet/internal/services"
	"dompet/internal/validator"
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- mock cycle service ---

type mockCycleService struct {
	createCycleFn    func(year, month int, configVersionID *uint) (*models.Cycle, int, error)
	getCyclesFn      func(page pagination.PageRequest) (*pagination.PageResponse[models.Cycle], error)
	getCycleDetailFn func(year, month int) (*services.CycleDetail, error)
	deleteCycleFn    func(year, month int) error
}

func (m *mockCycleService) CreateCycle(year, month int, configVersionID *uint) (*models.Cycle, int, error) {
	if m.createCycleFn != nil {
		return m.createCycleFn(year, month, configVersionID)
	}
	return &models.Cycle{}, 0, nil
}

func (m *mockCycleService) GetCycles(page pagination.PageRequest) (*pagination.PageResponse[models.Cycle], error) {
	if m.getCyclesFn != nil {
		return m.getCyclesFn(page)
	}
	resp := pagination.NewPageResponse([]models.Cycle{}, 1, 24, 0)
	return &resp, nil
}

func (m *mockCycleService) GetCycleDetail(year, month int) (*services.CycleDetail, error) {
	if m.getCycleDetailFn != nil {
		return m.getCycleDetailFn(year, month)
	}
	return &services.CycleDetail{}, nil
}

func (m *mockCycleService) DeleteCycle(year, month int) error {
	if m.deleteCycleFn != nil {
		return m.deleteCycleFn(year, month)
	}
	return nil
}

var _ services.CycleServicer = (*mockCycleService)(nil)

func setupCycleRouter(handler *CycleHandler) *gin.Engine {
	r := gin.New()
	r.POST("/cycles", handler.CreateCycle)
	r.GET("/cycles", handler.GetCycles)
	r.GET("/cycles/:yearMonth", handler.GetCycleDetail)
	r.DELETE("/cycles/:yearMonth", handler.DeleteCycle)
	return r
}

// --- tests ---

func TestCycleHandler_CreateCycle(t *testing.T) {
	t.Run("returns 201 with cycle and day count", func(t *testing.T) {
		svc := &mockCycleService{
			createCycleFn: func(year, month int, _ *uint) (*models.Cycle, int, error) {
				return &models.Cycle{
					Base:      models.Base{ID: 1},
					Year:      year,
					Month:     month,
					StartDate: "2026-02-28",
					EndDate:   "2026-03-27",
				}, 28, nil
			},
		}
		handler := NewCycleHandler(svc, nil)
		r := setupCycleRouter(handler)

		rec := doRequest(r, "POST", "/cycles", `{"year":2026,"month":3}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["days"].(float64) != 28 {
			t.Errorf("expected 28 days, got %v", result["days"])
		}
		cycle := result["cycle"].(map[string]interface{})
		if cycle["start_date"] != "2026-02-28" {
			t.Errorf("expected start 2026-02-28, got %v", cycle["start_date"])
		}
	})

	t.Run("passes pinned config version to service", func(t *testing.T) {
		var captured *uint
		svc := &mockCycleService{
			createCycleFn: func(_, _ int, configVersionID *uint) (*models.Cycle, int, error) {
				captured = configVersionID
				return &models.Cycle{}, 28, nil
			},
		}
		handler := NewCycleHandler(svc, nil)
		r := setupCycleRouter(handler)

		doRequest(r, "POST", "/cycles", `{"year":2026,"month":3,"config_version_id":7}`)

		if captured == nil || *captured != 7 {
			t.Errorf("expected config_version_id=7 to be passed, got %v", captured)
		}
	})

	t.Run("returns 400 on month out of range", func(t *testing.T) {
		handler := NewCycleHandler(&mockCycleService{}, nil)
		r := setupCycleRouter(handler)

		rec := doRequest(r, "POST", "/cycles", `{"year":2026,"month":13}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 409 when cycle exists", func(t *testing.T) {
		svc := &mockCycleService{
			createCycleFn: func(_, _ int, _ *uint) (*models.Cycle, int, error) {
				return nil, 0, apperrors.ErrCycleExists
			},
		}
		handler := NewCycleHandler(svc, nil)
		r := setupCycleRouter(handler)

		rec := doRequest(r, "POST", "/cycles", `{"year":2026,"month":3}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CYCLE_EXISTS")
	})
}

func TestCycleHandler_GetCycles(t *testing.T) {
	t.Run("returns 200 with paginated cycles", func(t *testing.T) {
		svc := &mockCycleService{
			getCyclesFn: func(_ pagination.PageRequest) (*pagination.PageResponse[models.Cycle], error) {
				resp := pagination.NewPageResponse([]models.Cycle{
					{Base: models.Base{ID: 2}, Year: 2026, Month: 4},
					{Base: models.Base{ID: 1}, Year: 2026, Month: 3},
				}, 1, 24, 2)
				return &resp, nil
			},
		}
		handler := NewCycleHandler(svc, nil)
		r := setupCycleRouter(handler)

		rec := doRequest(r, "GET", "/cycles", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 cycles, got %d", len(data))
		}
		if result["total_items"].(float64) != 2 {
			t.Errorf("expected total_items=2, got %v", result["total_items"])
		}
	})

	t.Run("applies pagination defaults", func(t *testing.T) {
		var captured pagination.PageRequest
		svc := &mockCycleService{
			getCyclesFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.Cycle], error) {
				captured = page
				resp := pagination.NewPageResponse([]models.Cycle{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		handler := NewCycleHandler(svc, nil)
		r := setupCycleRouter(handler)

		doRequest(r, "GET", "/cycles", "")

		if captured.Page != 1 || captured.PageSize != 24 {
			t.Errorf("expected defaults page=1 size=24, got %+v", captured)
		}
	})

	t.Run("returns 400 on invalid page size", func(t *testing.T) {
		handler := NewCycleHandler(&mockCycleService{}, nil)
		r := setupCycleRouter(handler)

		rec := doRequest(r, "GET", "/cycles?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCycleHandler_GetCycleDetail(t *testing.T) {
	t.Run("returns 200 with computed detail", func(t *testing.T) {
		svc := &mockCycleService{
			getCycleDetailFn: func(year, month int) (*services.CycleDetail, error) {
				return &services.CycleDetail{
					Cycle: models.Cycle{Base: models.Base{ID: 1}, Year: year, Month: month},
					Entries: []budget.DayEntry{
						{LogDate: "2026-02-28", Budget: 70000},
					},
					Summary:       budget.Summary{BudgetSum: 415000, GasBudget: 466667},
					OtherExpenses: []models.OtherExpense{},
				}, nil
			},
		}
		handler := NewCycleHandler(svc, nil)
		r := setupCycleRouter(handler)

		rec := doRequest(r, "GET", "/cycles/2026-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["gas_budget"].(float64) != 466667 {
			t.Errorf("expected gas_budget=466667, got %v", summary["gas_budget"])
		}
		entries := result["entries"].([]interface{})
		if len(entries) != 1 {
			t.Errorf("expected 1 entry, got %d", len(entries))
		}
	})

	t.Run("returns 404 when cycle not found", func(t *testing.T) {
		svc := &mockCycleService{
			getCycleDetailFn: func(_, _ int) (*services.CycleDetail, error) {
				return nil, apperrors.ErrCycleNotFound
			},
		}
		handler := NewCycleHandler(svc, nil)
		r := setupCycleRouter(handler)

		rec := doRequest(r, "GET", "/cycles/2030-01", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CYCLE_NOT_FOUND")
	})

	t.Run("returns 400 on malformed yearMonth", func(t *testing.T) {
		handler := NewCycleHandler(&mockCycleService{}, nil)
		r := setupCycleRouter(handler)

		for _, path := range []string{"/cycles/2026", "/cycles/2026-13", "/cycles/march-2026"} {
			rec := doRequest(r, "GET", path, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", path, rec.Code)
			}
		}
	})
}

func TestCycleHandler_DeleteCycle(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewCycleHandler(&mockCycleService{}, nil)
		r := setupCycleRouter(handler)

		rec := doRequest(r, "DELETE", "/cycles/2026-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockCycleService{
			deleteCycleFn: func(_, _ int) error {
				return apperrors.ErrCycleNotFound
			},
		}
		handler := NewCycleHandler(svc, nil)
		r := setupCycleRouter(handler)

		rec := doRequest(r, "DELETE", "/cycles/2030-01", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CYCLE_NOT_FOUND")
	})
}
