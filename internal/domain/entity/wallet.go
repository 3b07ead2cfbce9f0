package entity

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a wallet is created without a currency
const DefaultCurrency = "USDT"

// NetworkBEP20 is the BNB Smart Chain token network
const NetworkBEP20 = "BEP-20"

var bep20Address = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Wallet is the user's registered payout wallet
type Wallet struct {
	ID            string
	UserID        string
	WalletAddress string
	Currency      string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}

// DepositAddress is the platform address users pay investments into
type DepositAddress struct {
	ID            string
	QRCodeURL     string
	WalletAddress string
	UpdatedAt     time.Time
}

// ValidAddress checks address format for the given network.
// Networks without a known format accept any non-empty address.
func ValidAddress(network, address string) bool {
	if address == "" {
		return false
	}
	if network == NetworkBEP20 {
		return bep20Address.MatchString(address)
	}
	return true
}
