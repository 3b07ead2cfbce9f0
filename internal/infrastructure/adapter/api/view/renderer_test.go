package view

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, r *Renderer, name string, page Page) string {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, page).Render(w))
	return w.Body.String()
}

func TestRenderer(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	created := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	user := &entity.User{ID: "u1", Name: "Ada", USDTBalance: decimal.NewFromInt(1500)}
	plan := entity.Plan{
		ID:                "p1",
		Name:              "Gold",
		MinimumInvestment: decimal.NewFromInt(100),
		ROIPerMonth:       decimal.NewNullDecimal(decimal.NewFromInt(10)),
	}

	t.Run("should render every page with its data", func(t *testing.T) {
		pages := map[string]any{
			"home":      HomeData{Plans: []entity.Plan{plan}, Setting: &entity.Setting{ActiveUser: "12"}},
			"login":     AuthData{Error: "Please fill in all fields"},
			"signup":    AuthData{ReferredByCode: "REF1"},
			"dashboard": DashboardData{Dashboard: &entity.Dashboard{UserName: "Ada"}},
			"wallet":    WalletData{Missing: true, Deposit: &entity.DepositAddress{WalletAddress: "0xdead"}},
			"subscriptions": SubscriptionsData{
				Plans: []entity.Plan{plan},
				Flow:  &entity.InvestmentFlow{State: entity.FlowAwaitingPaymentProof, PlanName: "Gold", Amount: decimal.NewFromInt(250)},
			},
			"redeem": RedeemData{
				ROI:   &usecase.ROIView{Items: []entity.ROIRecord{{ID: "r1", ROIAmount: decimal.NewFromInt(5), CreatedAt: created}}, HasNextPage: true},
				Plans: []entity.Plan{plan},
				Cycle: "weekly",
			},
			"withdraw": WithdrawData{User: user, Withdrawals: []entity.Withdrawal{{ID: "w1", Amount: decimal.NewFromInt(20), CreatedAt: created}}},
			"transfer": TransferData{User: user, Transfers: []entity.Transfer{{ID: "t1", SenderID: "u1", Amount: decimal.NewFromInt(7)}}},
			"transactions": TransactionsData{
				Transactions: &usecase.TransactionsView{Items: []entity.Transaction{{ID: "tx1"}}, Total: 1, Types: []string{"deposit"}},
			},
			"referrals":     ReferralsData{Referrals: &usecase.ReferralsView{Link: "https://example.test/auth/signup?ref=ABC"}, User: user},
			"settings":      SettingsData{User: user, Setting: &entity.Setting{Email: "support@example.test"}},
			"notifications": NotificationsData{Notifications: &usecase.NotificationsView{Items: []entity.Notification{{ID: "n1", Title: "Hello"}}, Unread: 1}},
			"privacy":       nil,
			"terms":         nil,
			"not_found":     nil,
			"error":         ErrorData{Message: "Something went wrong", RetryURL: "/app/dashboard"},
		}

		for name, data := range pages {
			require.True(t, r.Has(name), name)
			body := renderPage(t, r, name, Page{Title: name, Path: "/app/" + name, SignedIn: true, User: user, Data: data})
			assert.Contains(t, body, "<title>CryptoInvest | "+name+"</title>", name)
		}
	})

	t.Run("should render flashes and the signed-in navigation", func(t *testing.T) {
		// Act
		body := renderPage(t, r, "dashboard", Page{
			Title:    "Dashboard",
			Path:     "/app/dashboard",
			SignedIn: true,
			User:     user,
			Flashes:  []entity.Flash{{Kind: entity.FlashSuccess, Message: "Settings saved successfully!"}},
			Data:     DashboardData{},
		})

		// Assert
		assert.Contains(t, body, `class="flash flash-success"`)
		assert.Contains(t, body, "Settings saved successfully!")
		assert.Contains(t, body, `<a href="/app/dashboard" class="active">`)
		assert.Contains(t, body, "$1,500.00")
	})

	t.Run("should show guest links when signed out", func(t *testing.T) {
		body := renderPage(t, r, "login", Page{Title: "Sign in", Path: "/auth/login", Data: AuthData{}})

		assert.Contains(t, body, `href="/auth/signup"`)
		assert.NotContains(t, body, "Logout")
	})

	t.Run("should escape user supplied text", func(t *testing.T) {
		body := renderPage(t, r, "login", Page{Title: "Sign in", Data: AuthData{Email: `"><script>`}})

		assert.NotContains(t, body, "<script>")
	})

	t.Run("should fall back to the error page for an unknown template", func(t *testing.T) {
		body := renderPage(t, r, "missing", Page{Title: "Missing"})

		assert.Contains(t, body, "Page template missing: missing")
	})
}

func TestFuncs(t *testing.T) {
	funcs := Funcs()

	t.Run("should mark nested paths active", func(t *testing.T) {
		active := funcs["active"].(func(string, string) bool)

		assert.True(t, active("/app/wallet", "/app/wallet"))
		assert.True(t, active("/app/subscriptions/invest", "/app/subscriptions"))
		assert.False(t, active("/app/walletx", "/app/wallet"))
	})

	t.Run("should print N/A for missing values", func(t *testing.T) {
		assert.Equal(t, "N/A", formatDate(time.Time{}))
		assert.Equal(t, "N/A", formatNullDecimal(decimal.NullDecimal{}))
		assert.Equal(t, "Mar 5, 2024", formatDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	})
}
