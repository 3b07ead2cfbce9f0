package gateway

import (
	"context"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// The gateways below describe the remote platform API.
// Every call reads the bearer token from the session on ctx.

// AuthGateway covers the public authentication endpoints
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*entity.Credentials, error)
	Signup(ctx context.Context, input entity.SignupInput) (*entity.Credentials, error)
}

// AccountGateway covers the user profile, dashboard, settings and referrals
type AccountGateway interface {
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateUser(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.User, error)
	GetDashboard(ctx context.Context, userID string) (*entity.Dashboard, error)
	GetSetting(ctx context.Context) (*entity.Setting, error)
	ListReferralsMade(ctx context.Context, userID string) ([]entity.Referral, error)
	GetReferralSummary(ctx context.Context, userID string) (*entity.ReferralSummary, error)
}

// WalletGateway covers the payout wallet and the deposit address
type WalletGateway interface {
	GetWallet(ctx context.Context, userID string) (*entity.Wallet, error)
	CreateWallet(ctx context.Context, userID, address, currency string) (*entity.Wallet, error)
	GetDepositAddress(ctx context.Context) (*entity.DepositAddress, error)
}

// InvestmentGateway covers plans and investment creation
type InvestmentGateway interface {
	ListPlans(ctx context.Context) ([]entity.Plan, error)
	CreateInvestment(ctx context.Context, input entity.NewInvestment) (*entity.Investment, error)
}

// FundsGateway covers transfers and withdrawals
type FundsGateway interface {
	ListSentTransfers(ctx context.Context, userID string) ([]entity.Transfer, error)
	ListReceivedTransfers(ctx context.Context, userID string) ([]entity.Transfer, error)
	CreateTransfer(ctx context.Context, input entity.NewTransfer) (*entity.Transfer, error)
	ListWithdrawals(ctx context.Context, userID string) ([]entity.Withdrawal, error)
	CreateWithdrawal(ctx context.Context, input entity.NewWithdrawal) (*entity.Withdrawal, error)
}

// LedgerGateway covers transactions, ROI records and notifications
type LedgerGateway interface {
	ListTransactions(ctx context.Context, userID string) ([]entity.Transaction, error)
	ListROIRecords(ctx context.Context, userID string, filter entity.ROIFilter, page, limit int) (*entity.Page[entity.ROIRecord], error)
	ListNotifications(ctx context.Context, userID string, page, limit int) (*entity.Page[entity.Notification], error)
}

// Platform groups every gateway implemented by the API client
type Platform interface {
	AuthGateway
	AccountGateway
	WalletGateway
	InvestmentGateway
	FundsGateway
	LedgerGateway
}
