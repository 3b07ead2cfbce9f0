package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	portusecase "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/invest-dashboard/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupLedger(t *testing.T) (*harness, *usecase.MockLedgerUseCase, *usecase.MockInvestmentUseCase) {
	t.Helper()
	h := newHarness(t, true)
	h.account.On("Limits", mock.Anything).Return(testLimits).Maybe()

	ledger := new(usecase.MockLedgerUseCase)
	investment := new(usecase.MockInvestmentUseCase)
	handler := NewLedgerHandler(h.pages, ledger, h.account, investment, logger.NewNoopLogger())
	h.router.GET("/app/transactions", handler.Transactions)
	h.router.GET("/app/redeem", handler.Redeem)
	h.router.GET("/app/notifications", handler.Notifications)
	return h, ledger, investment
}

func TestLedgerHandler_Transactions(t *testing.T) {
	t.Run("should pass the filter and list the matches", func(t *testing.T) {
		// Arrange
		h, ledger, _ := setupLedger(t)
		filter := entity.TransactionFilter{Search: "abc", Type: "deposit", Status: "all"}
		ledger.On("Transactions", mock.Anything, filter).Return(&portusecase.TransactionsView{
			Items:    []entity.Transaction{{ID: "abc-1", Type: "deposit", Amount: decimal.NewFromInt(40), Currency: "USDT"}},
			Total:    3,
			Types:    []string{"deposit", "withdrawal"},
			Statuses: []string{"completed"},
		}, nil)

		// Act
		w := h.get("/app/transactions?search=abc&type=deposit&status=all")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "abc-1")
		assert.Contains(t, w.Body.String(), "Showing 1 of 3")
		assert.Contains(t, w.Body.String(), `<option value="deposit" selected>`)
	})

	t.Run("should drop an oversized filter", func(t *testing.T) {
		h, ledger, _ := setupLedger(t)
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}

		w := h.get("/app/transactions?search=" + string(long))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/app/transactions", w.Header().Get("Location"))
		ledger.AssertNotCalled(t, "Transactions", mock.Anything, mock.Anything)
	})
}

func TestLedgerHandler_Redeem(t *testing.T) {
	t.Run("should show the requested pages with a load more link", func(t *testing.T) {
		// Arrange
		h, ledger, investment := setupLedger(t)
		filter := entity.ROIFilter{PlanID: "p1", StartDate: "2024-01-01"}
		ledger.On("ROIRecords", mock.Anything, filter, 2).Return(&portusecase.ROIView{
			Items:       []entity.ROIRecord{{ID: "r1", ROIAmount: decimal.NewFromInt(12), PlanName: "Gold"}},
			Summary:     entity.ROISummary{TotalEarned: decimal.NewFromInt(12), Records: 1},
			HasNextPage: true,
			Pages:       2,
			Total:       30,
		}, nil)
		investment.On("Plans", mock.Anything).Return([]entity.Plan{goldPlan}, nil)

		// Act
		w := h.get("/app/redeem?planId=p1&startDate=2024-01-01&pages=2")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "ROI is paid weekly")
		assert.Contains(t, body, `<option value="p1" selected>Gold</option>`)
		assert.Contains(t, body, "pages=3")
		assert.Contains(t, body, "planId=p1")
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		h, ledger, _ := setupLedger(t)

		w := h.get("/app/redeem?startDate=01/02/2024")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		ledger.AssertNotCalled(t, "ROIRecords", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLedgerHandler_Notifications(t *testing.T) {
	t.Run("should default to one page", func(t *testing.T) {
		h, ledger, _ := setupLedger(t)
		ledger.On("Notifications", mock.Anything, 1).Return(&portusecase.NotificationsView{
			Items:  []entity.Notification{{ID: "n1", Title: "Payout sent"}},
			Unread: 1,
			Pages:  1,
		}, nil)

		w := h.get("/app/notifications")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Payout sent")
		assert.Contains(t, w.Body.String(), "1 unread")
	})

	t.Run("should drop the load more link at the page limit", func(t *testing.T) {
		// Arrange
		h, ledger, _ := setupLedger(t)
		ledger.On("Notifications", mock.Anything, dto.MaxPages).Return(&portusecase.NotificationsView{
			Items:       []entity.Notification{{ID: "n1", Title: "Payout sent"}},
			HasNextPage: true,
			Pages:       dto.MaxPages,
		}, nil)

		// Act
		w := h.get("/app/notifications?pages=50")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.NotContains(t, body, "Load more")
		assert.Contains(t, body, "Page limit reached.")
	})

	t.Run("should render the error card when the first page fails", func(t *testing.T) {
		h, ledger, _ := setupLedger(t)
		ledger.On("Notifications", mock.Anything, 1).
			Return(nil, domainerr.NewAPIError("GET", "/notifications", http.StatusInternalServerError, ""))

		w := h.get("/app/notifications")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to load notifications")
	})
}

func TestNextPageURL(t *testing.T) {
	tests := []struct {
		name   string
		target string
		pages  int
		want   string
	}{
		{"first page", "/app/notifications", 1, "/app/notifications?pages=2"},
		{"keeps filters", "/app/redeem?planId=p1&pages=2", 2, "/app/redeem?pages=3&planId=p1"},
		{"last page below the cap", "/app/redeem?pages=49", 49, "/app/redeem?pages=50"},
		{"nothing past the cap", "/app/redeem?pages=50", 50, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.target)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, nextPageURL(u, tt.pages))
		})
	}
}
