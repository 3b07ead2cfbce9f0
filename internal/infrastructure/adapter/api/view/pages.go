package view

import (
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
)

// HomeData is the public landing page
type HomeData struct {
	Plans   []entity.Plan
	Setting *entity.Setting
}

// AuthData re-fills the login and signup forms after a rejected submission
type AuthData struct {
	Error          string
	Name           string
	Email          string
	WalletAddress  string
	ReferredByCode string
}

// DashboardData is the authenticated overview
type DashboardData struct {
	Dashboard *entity.Dashboard
}

// WalletData is the wallet page. Missing shows the creation form.
type WalletData struct {
	Wallet  *entity.Wallet
	Missing bool
	Deposit *entity.DepositAddress
}

// SubscriptionsData lists plans and the investment flow in progress
type SubscriptionsData struct {
	Plans   []entity.Plan
	Flow    *entity.InvestmentFlow
	Plan    *entity.Plan
	Deposit *entity.DepositAddress
}

// RedeemData is the ROI history
type RedeemData struct {
	ROI     *usecase.ROIView
	Filter  entity.ROIFilter
	Plans   []entity.Plan
	NextURL string
	Cycle   string
}

// WithdrawData is the withdrawal form with its fee preview and history
type WithdrawData struct {
	User        *entity.User
	Limits      entity.Limits
	Quote       usecase.WithdrawalQuote
	Amount      string
	Address     string
	Withdrawals []entity.Withdrawal
}

// TransferData is the transfer form and history
type TransferData struct {
	User      *entity.User
	Limits    entity.Limits
	Transfers []entity.Transfer
}

// TransactionsData is the filtered transaction list
type TransactionsData struct {
	Transactions *usecase.TransactionsView
	Filter       entity.TransactionFilter
}

// ReferralsData is the referral overview
type ReferralsData struct {
	Referrals *usecase.ReferralsView
	User      *entity.User
}

// SettingsData is the profile form
type SettingsData struct {
	User    *entity.User
	Setting *entity.Setting
}

// NotificationsData is the notification inbox
type NotificationsData struct {
	Notifications *usecase.NotificationsView
	NextURL       string
}
