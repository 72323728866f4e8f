package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"dompet/internal/budget"
	"dompet/internal/services"
)

// --- mock balance service ---

type mockBalanceService struct {
	getSavingsFn   func(policy budget.BalancePolicy) (*services.SavingsReport, error)
	getBalanceAtFn func(year, month int, policy budget.BalancePolicy) (*budget.Balance, error)
}

func (m *mockBalanceService) GetSavings(policy budget.BalancePolicy) (*services.SavingsReport, error) {
	if m.getSavingsFn != nil {
		return m.getSavingsFn(policy)
	}
	return &services.SavingsReport{}, nil
}

func (m *mockBalanceService) GetBalanceAt(year, month int, policy budget.BalancePolicy) (*budget.Balance, error) {
	if m.getBalanceAtFn != nil {
		return m.getBalanceAtFn(year, month, policy)
	}
	return &budget.Balance{}, nil
}

var _ services.BalanceServicer = (*mockBalanceService)(nil)

func setupBalanceRouter(handler *BalanceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/savings", handler.GetSavings)
	r.GET("/balance/:yearMonth", handler.GetBalance)
	return r
}

// --- tests ---

func TestBalanceHandler_GetSavings(t *testing.T) {
	t.Run("returns 200 with savings report", func(t *testing.T) {
		svc := &mockBalanceService{
			getSavingsFn: func(_ budget.BalancePolicy) (*services.SavingsReport, error) {
				return &services.SavingsReport{
					InitialSavings: 1000000,
					FilledVariance: 30000,
					TotalSavings:   1030000,
				}, nil
			},
		}
		handler := NewBalanceHandler(svc)
		r := setupBalanceRouter(handler)

		rec := doRequest(r, "GET", "/savings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_savings"].(float64) != 1030000 {
			t.Errorf("expected total_savings=1030000, got %v", result["total_savings"])
		}
	})

	t.Run("defaults to the filled policy", func(t *testing.T) {
		var captured budget.BalancePolicy = 99
		svc := &mockBalanceService{
			getSavingsFn: func(policy budget.BalancePolicy) (*services.SavingsReport, error) {
				captured = policy
				return &services.SavingsReport{}, nil
			},
		}
		handler := NewBalanceHandler(svc)
		r := setupBalanceRouter(handler)

		doRequest(r, "GET", "/savings", "")

		if captured != budget.PolicyFilledVariance {
			t.Errorf("expected filled policy, got %v", captured)
		}
	})

	t.Run("policy=budget selects budget-minus-actual", func(t *testing.T) {
		var captured budget.BalancePolicy
		svc := &mockBalanceService{
			getSavingsFn: func(policy budget.BalancePolicy) (*services.SavingsReport, error) {
				captured = policy
				return &services.SavingsReport{}, nil
			},
		}
		handler := NewBalanceHandler(svc)
		r := setupBalanceRouter(handler)

		doRequest(r, "GET", "/savings?policy=budget", "")

		if captured != budget.PolicyBudgetMinusActual {
			t.Errorf("expected budget policy, got %v", captured)
		}
	})

	t.Run("returns 400 on unknown policy", func(t *testing.T) {
		handler := NewBalanceHandler(&mockBalanceService{})
		r := setupBalanceRouter(handler)

		rec := doRequest(r, "GET", "/savings?policy=strict", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestBalanceHandler_GetBalance(t *testing.T) {
	t.Run("returns 200 with balance breakdown", func(t *testing.T) {
		svc := &mockBalanceService{
			getBalanceAtFn: func(year, month int, _ budget.BalancePolicy) (*budget.Balance, error) {
				if year != 2026 || month != 3 {
					t.Errorf("expected 2026-03, got %d-%d", year, month)
				}
				return &budget.Balance{
					BalanceAtMonthStart:  520000,
					CurrentMonthVariance: 45000,
					CurrentBalance:       565000,
				}, nil
			},
		}
		handler := NewBalanceHandler(svc)
		r := setupBalanceRouter(handler)

		rec := doRequest(r, "GET", "/balance/2026-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["balance_at_month_start"].(float64) != 520000 {
			t.Errorf("expected balance_at_month_start=520000, got %v", result["balance_at_month_start"])
		}
		if result["current_balance"].(float64) != 565000 {
			t.Errorf("expected current_balance=565000, got %v", result["current_balance"])
		}
	})

	t.Run("returns 400 on malformed yearMonth", func(t *testing.T) {
		handler := NewBalanceHandler(&mockBalanceService{})
		r := setupBalanceRouter(handler)

		rec := doRequest(r, "GET", "/balance/2026-00", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
