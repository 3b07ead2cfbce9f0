package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/invest-dashboard/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

var testUser = &entity.User{ID: "u1", Name: "Ada", Email: "ada@example.test", USDTBalance: decimal.NewFromInt(500)}

type harness struct {
	router  *gin.Engine
	session *entity.Session
	account *usecase.MockAccountUseCase
	pages   *Pages
}

// newHarness builds a router whose requests all share session.
// A nil session stands for a visitor without cookie.
func newHarness(t *testing.T, signedIn bool) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	session := entity.NewSession("s1", testNow)
	if signedIn {
		session.Authenticate("tok", "u1")
	}

	account := new(usecase.MockAccountUseCase)
	account.On("User", mock.Anything).Return(testUser, nil).Maybe()

	router := gin.New()
	router.HTMLRender = renderer
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(entity.WithSession(c.Request.Context(), session))
		c.Next()
	})

	return &harness{
		router:  router,
		session: session,
		account: account,
		pages:   NewPages(account, logger.NewNoopLogger()),
	}
}

func (h *harness) get(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func (h *harness) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

// flashes returns and clears what the last request queued
func (h *harness) flashes() []entity.Flash {
	return h.session.PopFlashes()
}
