package wallet

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
)

var _ usecase.WalletUseCase = (*Service)(nil)

// Service implements WalletUseCase
type Service struct {
	platform gateway.WalletGateway
	caches   query.Provider
	logger   core.Logger
}

// NewService creates a wallet service
func NewService(platform gateway.WalletGateway, caches query.Provider, logger core.Logger) *Service {
	return &Service{
		platform: platform,
		caches:   caches,
		logger:   logger,
	}
}

// Wallet returns the user's wallet. A missing wallet is expected, so the query never retries.
func (s *Service) Wallet(ctx context.Context) (*entity.Wallet, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	w, err := common.Fetch(ctx, scope, query.WalletKey(scope.UserID), query.Defaults.NoRetry(),
		func(ctx context.Context) (*entity.Wallet, error) {
			return s.platform.GetWallet(ctx, scope.UserID)
		})
	if errs.IsNotFoundError(err) {
		return nil, errs.ErrWalletNotFound
	}
	return w, err
}

// CreateWallet registers address and stores the result as the wallet query value
func (s *Service) CreateWallet(ctx context.Context, address, currency string) (*entity.Wallet, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	if err := scope.RequireUser(); err != nil {
		return nil, err
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errs.NewValidationError("walletAddress", "Please enter a wallet address", errs.ErrRequiredField)
	}
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	w, err := s.platform.CreateWallet(ctx, scope.UserID, address, currency)
	if err != nil {
		return nil, err
	}

	scope.Cache.SetData(query.WalletKey(scope.UserID), w)
	s.logger.Info("Wallet created", map[string]any{
		"user_id":  scope.UserID,
		"currency": currency,
	})
	return w, nil
}

// DepositAddress returns the platform deposit address and QR code
func (s *Service) DepositAddress(ctx context.Context) (*entity.DepositAddress, error) {
	cache := query.ForContext(ctx, s.caches)
	return query.Get(ctx, cache, query.QRCodeKey(), query.Defaults.Stale(common.LongStale),
		func(ctx context.Context) (*entity.DepositAddress, error) {
			return s.platform.GetDepositAddress(ctx)
		})
}
