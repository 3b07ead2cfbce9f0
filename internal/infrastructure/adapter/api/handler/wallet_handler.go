package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

const walletPath = "/app/wallet"

// WalletHandler serves the wallet page and wallet creation
type WalletHandler struct {
	pages  *Pages
	wallet usecase.WalletUseCase
	logger coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(pages *Pages, wallet usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		pages:  pages,
		wallet: wallet,
		logger: logger,
	}
}

// Wallet handles GET /app/wallet. A missing wallet shows the creation form.
func (h *WalletHandler) Wallet(c *gin.Context) {
	ctx := c.Request.Context()
	data := view.WalletData{}

	wallet, err := h.wallet.Wallet(ctx)
	switch {
	case errors.Is(err, domainerr.ErrWalletNotFound):
		data.Missing = true
	case err != nil:
		h.pages.Error(c, err, "Failed to fetch wallet")
		return
	default:
		data.Wallet = wallet
	}

	if data.Deposit, err = h.wallet.DepositAddress(ctx); err != nil {
		h.logger.Warn("Wallet page without deposit address", map[string]any{
			"request_id": coreport.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
	}

	h.pages.Render(c, http.StatusOK, "wallet", "Wallet", data)
}

// CreateWallet handles POST /app/wallet
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var form dto.WalletForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.Redirect(c, entity.FlashError, "Please enter a valid currency", walletPath)
		return
	}

	if _, err := h.wallet.CreateWallet(c.Request.Context(), form.WalletAddress, form.Currency); err != nil {
		h.pages.Reject(c, err, "Failed to create wallet", walletPath)
		return
	}
	h.pages.Redirect(c, entity.FlashSuccess, "Wallet created successfully!", walletPath)
}
