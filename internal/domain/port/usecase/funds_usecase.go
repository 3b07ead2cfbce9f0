package usecase

import (
	"context"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransferForm is the submitted transfer form
type TransferForm struct {
	ReceiverID string
	Amount     string
	Note       string
}

// WithdrawalForm is the submitted withdrawal form
type WithdrawalForm struct {
	Amount             string
	DestinationAddress string
}

// WithdrawalQuote previews the fee of a withdrawal
type WithdrawalQuote struct {
	Amount  decimal.Decimal
	Fee     decimal.Decimal
	Receive decimal.Decimal
}

// FundsUseCase moves balance out of the account
type FundsUseCase interface {
	// Transfers returns sent and received transfers merged, newest first
	Transfers(ctx context.Context) ([]entity.Transfer, error)

	// CreateTransfer validates the form against limits and balance before calling the platform
	CreateTransfer(ctx context.Context, form TransferForm) (*entity.Transfer, error)

	Withdrawals(ctx context.Context) ([]entity.Withdrawal, error)

	// CreateWithdrawal validates the form against limits, balance and address format,
	// then submits exactly one withdrawal
	CreateWithdrawal(ctx context.Context, form WithdrawalForm) (*entity.Withdrawal, error)

	// QuoteWithdrawal computes the fee preview for a raw amount, zero when it does not parse
	QuoteWithdrawal(limits entity.Limits, rawAmount string) WithdrawalQuote
}
