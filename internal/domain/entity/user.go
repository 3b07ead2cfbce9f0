package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the signed-in account as reported by the platform
type User struct {
	ID             string
	Name           string
	Email          string
	WalletAddress  string
	ReferralCode   string
	USDTBalance    decimal.Decimal
	TotalReferrals int
	TotalEarnings  decimal.Decimal
	CurrentLevel   int
	Wallet         *Wallet
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName falls back to the email when no name is set
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Credentials is returned by login and signup
type Credentials struct {
	Token  string
	UserID string
}

// SignupInput holds the signup form
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	WalletAddress   string
	ReferredByCode  string
}

// ProfileUpdate holds the editable profile fields
type ProfileUpdate struct {
	Name  string
	Email string
}

// Setting is the public platform settings record
type Setting struct {
	ID          string
	PhoneNumber string
	Email       string
	ActiveUser  string
	TotalUser   string
	// Optional overrides for configured limits; invalid when the backend omits them
	MinWithdrawal  decimal.NullDecimal
	MinTransfer    decimal.NullDecimal
	WithdrawalFee  decimal.NullDecimal
	ROIPayoutCycle string
	UpdatedAt      time.Time
}

// PartyRef is the short user reference embedded in ledger records
type PartyRef struct {
	ID    string
	Name  string
	Email string
}

// Referral is a referral relation made by the user
type Referral struct {
	ID              string
	ReferrerID      string
	ReferredUserID  string
	Level           int
	BonusPercentage decimal.Decimal
	BonusStartDate  time.Time
	BonusEndDate    time.Time
	Status          string
	Referrer        PartyRef
	ReferredUser    PartyRef
	CreatedAt       time.Time
}

// ReferralSummary counts users who signed up with the user's code
type ReferralSummary struct {
	TotalReferrals int
	Referrals      []ReferredUser
}

// ReferredUser is one entry of a ReferralSummary
type ReferredUser struct {
	ID           string
	Name         string
	Email        string
	ReferralCode string
	CreatedAt    time.Time
}
