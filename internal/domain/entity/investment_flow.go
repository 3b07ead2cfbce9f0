package entity

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/shopspring/decimal"
)

// FlowState is a step of the invest-in-plan flow
type FlowState string

const (
	FlowEnteringAmount       FlowState = "entering-amount"
	FlowAwaitingPaymentProof FlowState = "awaiting-payment-proof"
	FlowSubmitting           FlowState = "submitting"
	FlowDone                 FlowState = "done"
)

// InvestmentFlow tracks one investment from amount entry to confirmation.
// Only the methods below move it between states.
type InvestmentFlow struct {
	State     FlowState
	PlanID    string
	PlanName  string
	Amount    decimal.Decimal
	TxHash    string
	LastError string
	Result    *Investment
}

// NewInvestmentFlow starts a flow for plan
func NewInvestmentFlow(plan Plan) *InvestmentFlow {
	return &InvestmentFlow{
		State:    FlowEnteringAmount,
		PlanID:   plan.ID,
		PlanName: plan.Name,
	}
}

func (f *InvestmentFlow) transition(from, to FlowState) error {
	if f.State != from {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, f.State, to)
	}
	f.State = to
	return nil
}

// EnterAmount validates amount against the plan limits and moves to awaiting-payment-proof
func (f *InvestmentFlow) EnterAmount(plan Plan, raw string) error {
	if f.State != FlowEnteringAmount {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, f.State, FlowAwaitingPaymentProof)
	}
	if plan.ID != f.PlanID {
		return fmt.Errorf("%w: plan changed mid-flow", errs.ErrInvalidTransition)
	}

	amount, err := ParseAmount(raw)
	if err != nil {
		return errs.NewValidationError("amount", "Please enter a valid amount", err)
	}
	if err := CheckBounds(amount, plan.MinimumInvestment, plan.MaximumInvestment); err != nil {
		return errs.NewValidationError("amount", boundsMessage(err, plan), err)
	}

	f.Amount = amount
	f.LastError = ""
	return f.transition(FlowEnteringAmount, FlowAwaitingPaymentProof)
}

func boundsMessage(err error, plan Plan) string {
	if errors.Is(err, errs.ErrAboveMaximum) {
		return "Maximum investment for this plan is " + FormatCurrency(plan.MaximumInvestment) + " " + DefaultCurrency
	}
	return "Minimum investment for this plan is " + FormatCurrency(plan.MinimumInvestment) + " " + DefaultCurrency
}

// AttachProof records the payment transaction hash and moves to submitting
func (f *InvestmentFlow) AttachProof(txHash string) error {
	if f.State != FlowAwaitingPaymentProof {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, f.State, FlowSubmitting)
	}
	txHash = strings.TrimSpace(txHash)
	if txHash == "" {
		return errs.NewValidationError("transactionId", "Please enter the payment transaction ID", errs.ErrRequiredField)
	}
	f.TxHash = txHash
	return f.transition(FlowAwaitingPaymentProof, FlowSubmitting)
}

// Fail returns a submitting flow to awaiting-payment-proof, keeping the error message
func (f *InvestmentFlow) Fail(message string) error {
	if err := f.transition(FlowSubmitting, FlowAwaitingPaymentProof); err != nil {
		return err
	}
	f.LastError = message
	return nil
}

// Complete marks the flow done with the created investment
func (f *InvestmentFlow) Complete(inv *Investment) error {
	if err := f.transition(FlowSubmitting, FlowDone); err != nil {
		return err
	}
	f.Result = inv
	f.LastError = ""
	return nil
}

// Reset goes back to amount entry from any state
func (f *InvestmentFlow) Reset() {
	f.State = FlowEnteringAmount
	f.Amount = decimal.Zero
	f.TxHash = ""
	f.LastError = ""
	f.Result = nil
}
