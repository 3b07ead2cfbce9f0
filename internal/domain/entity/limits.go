package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Limits are the form constraints checked before any transfer or withdrawal is sent
type Limits struct {
	MinWithdrawal decimal.Decimal
	MinTransfer   decimal.Decimal
	// WithdrawalFeePercent is a percentage, 1.5 means 1.5%
	WithdrawalFeePercent decimal.Decimal
	Network              string
	ROIPayoutCycle       string
}

// Merge returns l with every value the platform setting carries.
// An explicit zero is a value; negative numbers are ignored.
func (l Limits) Merge(s *Setting) Limits {
	if s == nil {
		return l
	}
	l.MinWithdrawal = override(l.MinWithdrawal, s.MinWithdrawal)
	l.MinTransfer = override(l.MinTransfer, s.MinTransfer)
	l.WithdrawalFeePercent = override(l.WithdrawalFeePercent, s.WithdrawalFee)
	if s.ROIPayoutCycle != "" {
		l.ROIPayoutCycle = s.ROIPayoutCycle
	}
	return l
}

func override(current decimal.Decimal, v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid || v.Decimal.IsNegative() {
		return current
	}
	return v.Decimal
}

// WithdrawalFee is the preview fee for amount, rounded to cents
func (l Limits) WithdrawalFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(l.WithdrawalFeePercent).Div(decimal.NewFromInt(100)).Round(MaxDecimalPlaces)
}

// CheckSpend validates a transfer or withdrawal amount against min and the available balance.
// kind is "transfer" or "withdrawal" and only shapes the message.
func CheckSpend(kind, raw string, min, balance decimal.Decimal) (decimal.Decimal, error) {
	amount, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero, errs.NewValidationError("amount", "Please enter a valid amount", err)
	}
	if amount.LessThan(min) {
		return decimal.Zero, errs.NewValidationError("amount",
			fmt.Sprintf("Minimum %s amount is $%s", kind, FormatCurrency(min)),
			fmt.Errorf("%w: minimum is %s", errs.ErrBelowMinimum, min))
	}
	if amount.GreaterThan(balance) {
		return decimal.Zero, errs.NewValidationError("amount", "Insufficient balance", errs.ErrInsufficientBalance)
	}
	return amount, nil
}

// CheckAddress validates a destination address for network
func CheckAddress(network, address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", errs.NewValidationError("destinationAddress", "Please enter a destination address", errs.ErrRequiredField)
	}
	if !ValidAddress(network, address) {
		return "", errs.NewValidationError("destinationAddress",
			fmt.Sprintf("Please enter a valid %s address", network), errs.ErrInvalidAddress)
	}
	return address, nil
}
