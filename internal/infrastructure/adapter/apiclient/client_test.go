package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL + "/api", Timeout: time.Second}, core.NoopMetrics{}, logger.NewNoopLogger())
	require.NoError(t, err)
	return client
}

func authedContext(token string) context.Context {
	s := entity.NewSession("s-1", time.Now())
	s.Authenticate(token, "u-1")
	return entity.WithSession(context.Background(), s)
}

func TestClientAuthorization(t *testing.T) {
	var gotAuth []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"data":{"id":"s1","phoneNumber":"+1","email":"ops@example.com","activeUser":12,"totalUser":"40"}}`)
	})

	t.Run("should send the session token as bearer", func(t *testing.T) {
		setting, err := client.GetSetting(authedContext("tok-123"))

		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth[len(gotAuth)-1])
		assert.Equal(t, "12", setting.ActiveUser)
	})

	t.Run("should omit the header without a session", func(t *testing.T) {
		_, err := client.GetSetting(context.Background())

		require.NoError(t, err)
		assert.Empty(t, gotAuth[len(gotAuth)-1])
	})
}

func TestClientSettingLimits(t *testing.T) {
	t.Run("should keep an explicit zero fee and mark omitted limits as absent", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":{"id":"s1","withdrawalFee":0,"minTransfer":"25"}}`)
		})

		setting, err := client.GetSetting(context.Background())

		require.NoError(t, err)
		assert.True(t, setting.WithdrawalFee.Valid)
		assert.True(t, setting.WithdrawalFee.Decimal.IsZero())
		assert.True(t, setting.MinTransfer.Valid)
		assert.True(t, setting.MinTransfer.Decimal.Equal(decimal.NewFromInt(25)))
		assert.False(t, setting.MinWithdrawal.Valid)
	})
}

func TestClientErrorClassification(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		kind        errs.Kind
		message     string
		isNotFound  bool
		isAuthError bool
	}{
		{"not found", 404, `{"error":"Wallet not found"}`, errs.KindNotFound, "Wallet not found", true, false},
		{"unauthorized", 401, `{"message":"jwt expired"}`, errs.KindAuth, "jwt expired", false, true},
		{"message wins over error", 400, `{"message":"Amount too low","error":"Bad Request"}`, errs.KindValidation, "Amount too low", false, false},
		{"server error without body", 503, ``, errs.KindServer, "", false, false},
		{"html error page", 502, `<html>bad gateway</html>`, errs.KindServer, "", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			// Act
			_, err := client.GetWallet(authedContext("tok"), "u-1")

			// Assert
			var apiErr *errs.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.kind, apiErr.Kind)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.message, apiErr.Message)
			assert.Equal(t, "/wallet/u-1", apiErr.Path)
			assert.Equal(t, tc.isNotFound, errs.IsNotFoundError(err))
			assert.Equal(t, tc.isAuthError, errs.IsAuthError(err))
		})
	}
}

func TestClientMalformedResponses(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"not json", `ok`},
		{"missing data", `{"message":"ok"}`},
		{"missing required id", `{"data":[{"name":"Gold"}]}`},
		{"wrong amount type", `{"data":[{"id":"p1","name":"Gold","minimumInvestment":true}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tc.body)
			})

			_, err := client.ListPlans(context.Background())

			assert.ErrorIs(t, err, errs.ErrMalformedResponse)
		})
	}
}

func TestClientTransportFailures(t *testing.T) {
	t.Run("should classify slow responses as timeouts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()
		client, err := New(Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond}, core.NoopMetrics{}, logger.NewNoopLogger())
		require.NoError(t, err)

		_, err = client.GetSetting(context.Background())

		var apiErr *errs.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errs.KindTimeout, apiErr.Kind)
	})

	t.Run("should classify refused connections as network errors", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()
		client, err := New(Config{BaseURL: base}, core.NoopMetrics{}, logger.NewNoopLogger())
		require.NoError(t, err)

		_, err = client.GetSetting(context.Background())

		var apiErr *errs.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errs.KindNetwork, apiErr.Kind)
	})

	t.Run("should reject a base url without host", func(t *testing.T) {
		_, err := New(Config{BaseURL: "/api"}, core.NoopMetrics{}, logger.NewNoopLogger())
		assert.Error(t, err)
	})
}

func TestClientRequests(t *testing.T) {
	t.Run("should post a withdrawal with numeric amount", func(t *testing.T) {
		// Arrange
		var method, path string
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"data":{"id":"w1","userId":"u-1","amount":"25.5","destinationAddress":"0xabc","status":"PENDING","createdAt":"2025-01-02T03:04:05Z"}}`)
		})

		// Act
		w, err := client.CreateWithdrawal(authedContext("tok"), entity.NewWithdrawal{
			UserID:             "u-1",
			Amount:             decimal.RequireFromString("25.5"),
			DestinationAddress: "0xabc",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "/api/withdraw/create", path)
		assert.Equal(t, 25.5, body["amount"])
		assert.Equal(t, "0xabc", body["destinationAddress"])
		assert.Equal(t, "w1", w.ID)
		assert.True(t, w.Amount.Equal(decimal.RequireFromString("25.5")))
	})

	t.Run("should send ROI filters and decode pagination", func(t *testing.T) {
		var query map[string][]string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			_, _ = io.WriteString(w, `{
				"data":[{"id":"r1","userId":"u-1","weekNumber":3,"roiAmount":{"s":1,"e":1,"d":[12,5000000]},"isReferralBonusApplied":true,
				         "investment":{"amountInvested":"1000","plan":{"name":"Gold"}},"createdAt":"2025-02-01T00:00:00Z"}],
				"pagination":{"currentPage":1,"totalPages":3,"totalItems":21,"itemsPerPage":10}}`)
		})

		page, err := client.ListROIRecords(authedContext("tok"), "u-1", entity.ROIFilter{PlanID: "p-9", StartDate: "2025-01-01"}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, []string{"u-1"}, query["userId"])
		assert.Equal(t, []string{"1"}, query["page"])
		assert.Equal(t, []string{"10"}, query["limit"])
		assert.Equal(t, []string{"p-9"}, query["planId"])
		assert.Equal(t, []string{"2025-01-01"}, query["startDate"])
		assert.NotContains(t, query, "endDate")
		require.Len(t, page.Items, 1)
		assert.True(t, page.Items[0].ROIAmount.Equal(decimal.RequireFromString("12.5")))
		assert.Equal(t, "Gold", page.Items[0].PlanName)
		assert.True(t, page.Pagination.HasNextPage())
	})

	t.Run("should escape path ids", func(t *testing.T) {
		var rawPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			rawPath = r.URL.EscapedPath()
			_, _ = io.WriteString(w, `{"data":[]}`)
		})

		_, err := client.ListTransactions(authedContext("tok"), "a/b")

		require.NoError(t, err)
		assert.Equal(t, "/api/transaction/user/a%2Fb", rawPath)
	})

	t.Run("should store token and id from signup", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"token":"jwt-1","data":{"id":42,"email":"a@b.c"}}`)
		})

		creds, err := client.Signup(context.Background(), entity.SignupInput{Name: "A", Email: "a@b.c", Password: "password1"})

		require.NoError(t, err)
		assert.Equal(t, "jwt-1", creds.Token)
		assert.Equal(t, "42", creds.UserID)
	})

	t.Run("should fail the dashboard when success is false", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"success":false,"message":"No data","data":{}}`)
		})

		_, err := client.GetDashboard(authedContext("tok"), "u-1")

		assert.Equal(t, "No data", errs.UserMessage(err, "fallback"))
	})
}

func TestAmountUnmarshal(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		valid    bool
		expected string
	}{
		{"number", `12.75`, true, "12.75"},
		{"string", `"1000.00"`, true, "1000"},
		{"null", `null`, false, "0"},
		{"empty string", `""`, false, "0"},
		{"serialized decimal", `{"s":-1,"e":0,"d":[3,2500000]}`, true, "-3.25"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &a))
			assert.Equal(t, tc.valid, a.Valid)
			assert.True(t, a.Dec().Equal(decimal.RequireFromString(tc.expected)), "got %s", a.Dec())
		})
	}

	t.Run("should reject booleans", func(t *testing.T) {
		var a Amount
		assert.Error(t, json.Unmarshal([]byte(`true`), &a))
	})
}

func TestServerMessage(t *testing.T) {
	assert.Equal(t, "a", ServerMessage([]byte(`{"message":"a","error":"b"}`)))
	assert.Equal(t, "b", ServerMessage([]byte(`{"error":"b"}`)))
	assert.Equal(t, "c", ServerMessage([]byte(`{"error":{"message":"c"}}`)))
	assert.Empty(t, ServerMessage([]byte(`not json`)))
	assert.Empty(t, ServerMessage(nil))
}
