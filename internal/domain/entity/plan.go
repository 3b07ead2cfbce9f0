package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is an investment subscription plan
type Plan struct {
	ID                string
	Name              string
	MinimumInvestment decimal.Decimal
	// MaximumInvestment is zero when the plan has no ceiling
	MaximumInvestment decimal.Decimal
	ROIPerMonth       decimal.NullDecimal
	ROIPerDay         decimal.NullDecimal
	DurationInMonths  int
	Description       string
	IsActive          bool
}

// ROILabel renders the plan's return, e.g. "10% Monthly", "0.50% Daily" or "Contact for ROI".
// A zero rate counts as absent.
func (p Plan) ROILabel() string {
	switch {
	case p.ROIPerMonth.Valid && !p.ROIPerMonth.Decimal.IsZero():
		return FormatPercent(p.ROIPerMonth.Decimal, 0) + " Monthly"
	case p.ROIPerDay.Valid && !p.ROIPerDay.Decimal.IsZero():
		return FormatPercent(p.ROIPerDay.Decimal, 2) + " Daily"
	default:
		return "Contact for ROI"
	}
}

// ROIPercentage is the monthly rate sent with a new investment, falling back to the daily rate
func (p Plan) ROIPercentage() decimal.Decimal {
	if p.ROIPerMonth.Valid && !p.ROIPerMonth.Decimal.IsZero() {
		return p.ROIPerMonth.Decimal
	}
	if p.ROIPerDay.Valid {
		return p.ROIPerDay.Decimal
	}
	return decimal.Zero
}

// MinimumLabel renders the entry amount, e.g. "1,000 USDT"
func (p Plan) MinimumLabel() string {
	return FormatWhole(p.MinimumInvestment) + " " + DefaultCurrency
}

// Term returns the investment window starting at start
func (p Plan) Term(start time.Time) (time.Time, time.Time) {
	return start, start.AddDate(0, p.DurationInMonths, 0)
}

// InvestmentStatus is the lifecycle state reported by the platform
type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "ACTIVE"
	InvestmentCompleted InvestmentStatus = "COMPLETED"
	InvestmentCancelled InvestmentStatus = "CANCELLED"
	InvestmentPending   InvestmentStatus = "PENDING"
)

// Investment is a subscription to a plan
type Investment struct {
	ID             string
	UserID         string
	PlanID         string
	AmountInvested decimal.Decimal
	ROIPercentage  decimal.Decimal
	Status         InvestmentStatus
	StartDate      time.Time
	EndDate        time.Time
	TransactionID  string
	CreatedAt      time.Time
}

// NewInvestment is the payload for creating an investment
type NewInvestment struct {
	UserID         string
	PlanID         string
	AmountInvested decimal.Decimal
	ROIPercentage  decimal.Decimal
	StartDate      time.Time
	EndDate        time.Time
	TransactionID  string
}
