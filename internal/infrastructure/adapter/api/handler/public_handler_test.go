package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/invest-dashboard/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPublicHandler(t *testing.T) {
	setup := func(t *testing.T) (*harness, *usecase.MockInvestmentUseCase) {
		h := newHarness(t, false)
		investment := new(usecase.MockInvestmentUseCase)
		handler := NewPublicHandler(h.pages, h.account, investment, logger.NewNoopLogger())
		h.router.GET("/", handler.Home)
		h.router.GET("/app/privacy-policy", handler.Privacy)
		h.router.GET("/app/terms-of-service", handler.Terms)
		return h, investment
	}

	t.Run("should show plans and platform figures on the landing page", func(t *testing.T) {
		// Arrange
		h, investment := setup(t)
		investment.On("Plans", mock.Anything).Return([]entity.Plan{goldPlan}, nil)
		h.account.On("Setting", mock.Anything).Return(&entity.Setting{ActiveUser: "1,024"}, nil)

		// Act
		w := h.get("/")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Choose Your Investment Plan")
		assert.Contains(t, w.Body.String(), "1,024")
	})

	t.Run("should render the landing page when the platform is down", func(t *testing.T) {
		h, investment := setup(t)
		investment.On("Plans", mock.Anything).Return(nil, errors.New("down"))
		h.account.On("Setting", mock.Anything).Return(nil, errors.New("down"))

		w := h.get("/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "Choose Your Investment Plan")
	})

	t.Run("should render the legal pages", func(t *testing.T) {
		h, _ := setup(t)

		assert.Equal(t, http.StatusOK, h.get("/app/privacy-policy").Code)
		assert.Equal(t, http.StatusOK, h.get("/app/terms-of-service").Code)
	})
}
