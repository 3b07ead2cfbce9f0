package handler

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/invest-dashboard/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupWallet(t *testing.T) (*harness, *usecase.MockWalletUseCase) {
	t.Helper()
	h := newHarness(t, true)
	wallet := new(usecase.MockWalletUseCase)
	handler := NewWalletHandler(h.pages, wallet, logger.NewNoopLogger())
	h.router.GET("/app/wallet", handler.Wallet)
	h.router.POST("/app/wallet", handler.CreateWallet)
	return h, wallet
}

func TestWalletHandler_Wallet(t *testing.T) {
	deposit := &entity.DepositAddress{WalletAddress: "0xdeposit", QRCodeURL: "https://cdn.example.test/qr.png"}

	t.Run("should show the wallet and deposit address", func(t *testing.T) {
		// Arrange
		h, wallet := setupWallet(t)
		wallet.On("Wallet", mock.Anything).Return(&entity.Wallet{
			WalletAddress: "0xmine", Currency: "USDT", Balance: decimal.NewFromInt(1234),
		}, nil)
		wallet.On("DepositAddress", mock.Anything).Return(deposit, nil)

		// Act
		w := h.get("/app/wallet")

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "1,234.00 USDT")
		assert.Contains(t, w.Body.String(), "0xdeposit")
		assert.NotContains(t, w.Body.String(), "Create your wallet")
	})

	t.Run("should offer the creation form when no wallet exists", func(t *testing.T) {
		h, wallet := setupWallet(t)
		wallet.On("Wallet", mock.Anything).Return(nil, domainerr.ErrWalletNotFound)
		wallet.On("DepositAddress", mock.Anything).Return(nil, errors.New("down"))

		w := h.get("/app/wallet")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Create your wallet")
	})

	t.Run("should render the error card for other failures", func(t *testing.T) {
		h, wallet := setupWallet(t)
		wallet.On("Wallet", mock.Anything).Return(nil, domainerr.NewAPIError("GET", "/wallet/u1", http.StatusInternalServerError, ""))

		w := h.get("/app/wallet")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch wallet")
		wallet.AssertNotCalled(t, "DepositAddress", mock.Anything)
	})
}

func TestWalletHandler_CreateWallet(t *testing.T) {
	t.Run("should create the wallet and flash success", func(t *testing.T) {
		// Arrange
		h, wallet := setupWallet(t)
		wallet.On("CreateWallet", mock.Anything, "0xmine", "USDT").Return(&entity.Wallet{WalletAddress: "0xmine"}, nil)

		// Act
		w := h.post("/app/wallet", url.Values{"walletAddress": {"0xmine"}, "currency": {"USDT"}})

		// Assert
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/app/wallet", w.Header().Get("Location"))
		assert.Equal(t, []entity.Flash{{Kind: entity.FlashSuccess, Message: "Wallet created successfully!"}}, h.flashes())
	})

	t.Run("should flash the fallback when the platform gives no message", func(t *testing.T) {
		h, wallet := setupWallet(t)
		wallet.On("CreateWallet", mock.Anything, "0xmine", "").
			Return(nil, domainerr.NewAPIError("POST", "/wallet/create", http.StatusInternalServerError, ""))

		h.post("/app/wallet", url.Values{"walletAddress": {"0xmine"}})

		assert.Equal(t, []entity.Flash{{Kind: entity.FlashError, Message: "Failed to create wallet"}}, h.flashes())
	})

	t.Run("should reject a malformed currency before calling the platform", func(t *testing.T) {
		h, wallet := setupWallet(t)

		w := h.post("/app/wallet", url.Values{"walletAddress": {"0xmine"}, "currency": {"US-DT"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		wallet.AssertNotCalled(t, "CreateWallet", mock.Anything, mock.Anything, mock.Anything)
	})
}
