package usecase

import (
	"context"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// WalletUseCase manages the payout wallet
type WalletUseCase interface {
	// Wallet returns the user's wallet.
	//
	// Possible errors:
	// - ErrWalletNotFound: the user has not created a wallet yet
	Wallet(ctx context.Context) (*entity.Wallet, error)

	// CreateWallet registers address. An empty currency defaults to USDT.
	CreateWallet(ctx context.Context, address, currency string) (*entity.Wallet, error)

	// DepositAddress returns the platform address and QR code investments are paid into
	DepositAddress(ctx context.Context) (*entity.DepositAddress, error)
}
