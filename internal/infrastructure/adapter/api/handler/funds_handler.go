package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

const (
	withdrawPath = "/app/withdraw"
	transferPath = "/app/transfer"
)

// FundsHandler serves the withdrawal and transfer pages
type FundsHandler struct {
	pages   *Pages
	funds   usecase.FundsUseCase
	account usecase.AccountUseCase
	logger  coreport.Logger
}

// NewFundsHandler creates a new funds handler instance
func NewFundsHandler(
	pages *Pages,
	funds usecase.FundsUseCase,
	account usecase.AccountUseCase,
	logger coreport.Logger,
) *FundsHandler {
	return &FundsHandler{
		pages:   pages,
		funds:   funds,
		account: account,
		logger:  logger,
	}
}

// Withdraw handles GET /app/withdraw. ?amount= previews the fee.
func (h *FundsHandler) Withdraw(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.WithdrawalPreviewQuery
	_ = c.ShouldBindQuery(&query)

	user, err := h.account.User(ctx)
	if err != nil {
		h.pages.Error(c, err, "Failed to load account")
		return
	}
	withdrawals, err := h.funds.Withdrawals(ctx)
	if err != nil {
		h.pages.Error(c, err, "Failed to load withdrawals")
		return
	}

	limits := h.account.Limits(ctx)
	h.pages.Render(c, http.StatusOK, "withdraw", "Withdraw", view.WithdrawData{
		User:        user,
		Limits:      limits,
		Quote:       h.funds.QuoteWithdrawal(limits, query.Amount),
		Amount:      query.Amount,
		Address:     query.Address,
		Withdrawals: withdrawals,
	})
}

// CreateWithdrawal handles POST /app/withdraw
func (h *FundsHandler) CreateWithdrawal(c *gin.Context) {
	var form dto.WithdrawalForm
	_ = c.ShouldBind(&form)

	withdrawal, err := h.funds.CreateWithdrawal(c.Request.Context(), form.ToForm())
	if err != nil {
		h.pages.Reject(c, err, "Failed to submit withdrawal", withdrawPath)
		return
	}
	h.pages.Redirect(c, entity.FlashSuccess,
		"Withdrawal request for $"+entity.FormatCurrency(withdrawal.Amount)+" submitted successfully!",
		withdrawPath)
}

// Transfer handles GET /app/transfer
func (h *FundsHandler) Transfer(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.account.User(ctx)
	if err != nil {
		h.pages.Error(c, err, "Failed to load account")
		return
	}
	transfers, err := h.funds.Transfers(ctx)
	if err != nil {
		h.pages.Error(c, err, "Failed to load transfers")
		return
	}

	h.pages.Render(c, http.StatusOK, "transfer", "Transfer", view.TransferData{
		User:      user,
		Limits:    h.account.Limits(ctx),
		Transfers: transfers,
	})
}

// CreateTransfer handles POST /app/transfer
func (h *FundsHandler) CreateTransfer(c *gin.Context) {
	var form dto.TransferForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.Redirect(c, entity.FlashError, "Note must be at most 500 characters", transferPath)
		return
	}

	transfer, err := h.funds.CreateTransfer(c.Request.Context(), form.ToForm())
	if err != nil {
		h.pages.Reject(c, err, "Failed to create transfer", transferPath)
		return
	}
	h.pages.Redirect(c, entity.FlashSuccess,
		"Transfer of $"+entity.FormatCurrency(transfer.Amount)+" to "+form.ReceiverID+" successful!",
		transferPath)
}
