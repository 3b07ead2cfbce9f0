package funds

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/common"
	"github.com/shopspring/decimal"
)

var _ usecase.FundsUseCase = (*Service)(nil)

// Service implements FundsUseCase
type Service struct {
	platform gateway.FundsGateway
	account  usecase.AccountUseCase
	caches   query.Provider
	logger   core.Logger
}

// NewService creates a funds service. The account use case supplies the balance and limits.
func NewService(platform gateway.FundsGateway, account usecase.AccountUseCase, caches query.Provider, logger core.Logger) *Service {
	return &Service{
		platform: platform,
		account:  account,
		caches:   caches,
		logger:   logger,
	}
}

// Transfers returns sent and received transfers merged, newest first
func (s *Service) Transfers(ctx context.Context) ([]entity.Transfer, error) {
	scope := common.ScopeFrom(ctx, s.caches)

	sent, err := common.Fetch(ctx, scope, query.SentTransfersKey(scope.UserID), query.Defaults,
		func(ctx context.Context) ([]entity.Transfer, error) {
			return s.platform.ListSentTransfers(ctx, scope.UserID)
		})
	if err != nil {
		return nil, err
	}

	received, err := common.Fetch(ctx, scope, query.ReceivedTransfersKey(scope.UserID), query.Defaults,
		func(ctx context.Context) ([]entity.Transfer, error) {
			return s.platform.ListReceivedTransfers(ctx, scope.UserID)
		})
	if err != nil {
		return nil, err
	}

	return entity.MergeTransfers(sent, received), nil
}

// CreateTransfer validates the form and sends one transfer
func (s *Service) CreateTransfer(ctx context.Context, form usecase.TransferForm) (*entity.Transfer, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	if err := scope.RequireUser(); err != nil {
		return nil, err
	}

	receiver := strings.TrimSpace(form.ReceiverID)
	if receiver == "" {
		return nil, errs.NewValidationError("receiverId", "Please enter recipient wallet ID or referral code", errs.ErrRequiredField)
	}

	user, err := s.account.User(ctx)
	if err != nil {
		return nil, err
	}
	limits := s.account.Limits(ctx)

	amount, err := entity.CheckSpend("transfer", form.Amount, limits.MinTransfer, user.USDTBalance)
	if err != nil {
		return nil, err
	}

	transfer, err := s.platform.CreateTransfer(ctx, entity.NewTransfer{
		SenderID:   scope.UserID,
		ReceiverID: receiver,
		Amount:     amount,
		Note:       strings.TrimSpace(form.Note),
	})
	if err != nil {
		return nil, err
	}

	scope.Invalidate(query.TransfersPrefix(), query.UserKey(scope.UserID), query.TransactionsKey(scope.UserID))
	s.logger.Info("Transfer created", map[string]any{
		"user_id":     scope.UserID,
		"receiver_id": receiver,
		"amount":      amount.String(),
	})
	return transfer, nil
}

// Withdrawals returns the user's withdrawal requests
func (s *Service) Withdrawals(ctx context.Context) ([]entity.Withdrawal, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	return common.Fetch(ctx, scope, query.WithdrawalsKey(scope.UserID), query.Defaults,
		func(ctx context.Context) ([]entity.Withdrawal, error) {
			return s.platform.ListWithdrawals(ctx, scope.UserID)
		})
}

// CreateWithdrawal validates the form and submits one withdrawal
func (s *Service) CreateWithdrawal(ctx context.Context, form usecase.WithdrawalForm) (*entity.Withdrawal, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	if err := scope.RequireUser(); err != nil {
		return nil, err
	}

	user, err := s.account.User(ctx)
	if err != nil {
		return nil, err
	}
	limits := s.account.Limits(ctx)

	amount, err := entity.CheckSpend("withdrawal", form.Amount, limits.MinWithdrawal, user.USDTBalance)
	if err != nil {
		return nil, err
	}
	address, err := entity.CheckAddress(limits.Network, form.DestinationAddress)
	if err != nil {
		return nil, err
	}

	withdrawal, err := s.platform.CreateWithdrawal(ctx, entity.NewWithdrawal{
		UserID:             scope.UserID,
		Amount:             amount,
		DestinationAddress: address,
	})
	if err != nil {
		return nil, err
	}

	scope.Invalidate(query.WithdrawalsKey(scope.UserID), query.UserKey(scope.UserID), query.TransactionsKey(scope.UserID))
	s.logger.Info("Withdrawal requested", map[string]any{
		"user_id": scope.UserID,
		"amount":  amount.String(),
	})
	return withdrawal, nil
}

// QuoteWithdrawal previews the fee and the amount received
func (s *Service) QuoteWithdrawal(limits entity.Limits, rawAmount string) usecase.WithdrawalQuote {
	amount, err := entity.ParseAmount(rawAmount)
	if err != nil {
		return usecase.WithdrawalQuote{Amount: decimal.Zero, Fee: decimal.Zero, Receive: decimal.Zero}
	}
	fee := limits.WithdrawalFee(amount)
	return usecase.WithdrawalQuote{
		Amount:  amount,
		Fee:     fee,
		Receive: amount.Sub(fee),
	}
}
