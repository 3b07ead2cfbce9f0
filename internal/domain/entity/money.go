package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places accepted in amount inputs
const MaxDecimalPlaces = 2

// ParseAmount validates a user-entered amount and returns it as a decimal.
// Thousands separators and a leading currency sign are tolerated.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(raw)
	amount = strings.TrimPrefix(amount, "$")
	amount = strings.ReplaceAll(amount, ",", "")
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidAmount)
	}

	if -value.Exponent() > MaxDecimalPlaces && !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return value, nil
}

// CheckBounds verifies min <= amount <= max. A zero max means unbounded.
func CheckBounds(amount, min, max decimal.Decimal) error {
	if amount.LessThan(min) {
		return fmt.Errorf("%w: minimum is %s", errs.ErrBelowMinimum, FormatCurrency(min))
	}
	if max.IsPositive() && amount.GreaterThan(max) {
		return fmt.Errorf("%w: maximum is %s", errs.ErrAboveMaximum, FormatCurrency(max))
	}
	return nil
}

// FormatCurrency rounds to two places and groups thousands, e.g. 1234.5 -> "1,234.50"
func FormatCurrency(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + groupThousands(whole) + "." + frac
}

// FormatWhole groups thousands without decimal places, e.g. 15000 -> "15,000"
func FormatWhole(d decimal.Decimal) string {
	fixed := d.Round(0).String()
	if strings.HasPrefix(fixed, "-") {
		return "-" + groupThousands(fixed[1:])
	}
	return groupThousands(fixed)
}

// FormatPercent renders a ratio (0.1) as a percentage with the given places ("10%", "0.50%")
func FormatPercent(ratio decimal.Decimal, places int32) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
