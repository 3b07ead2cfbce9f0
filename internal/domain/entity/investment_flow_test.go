package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() Plan {
	return Plan{
		ID:                "plan-1",
		Name:              "Silver",
		MinimumInvestment: decimal.NewFromInt(100),
		MaximumInvestment: decimal.NewFromInt(5000),
		ROIPerMonth:       nullDec("0.1"),
		DurationInMonths:  3,
	}
}

func TestInvestmentFlow(t *testing.T) {
	t.Run("should walk the happy path to done", func(t *testing.T) {
		// Arrange
		plan := testPlan()
		flow := NewInvestmentFlow(plan)

		// Act & Assert
		require.NoError(t, flow.EnterAmount(plan, "250"))
		assert.Equal(t, FlowAwaitingPaymentProof, flow.State)
		assert.True(t, flow.Amount.Equal(decimal.NewFromInt(250)))

		require.NoError(t, flow.AttachProof(" 0xabc "))
		assert.Equal(t, FlowSubmitting, flow.State)
		assert.Equal(t, "0xabc", flow.TxHash)

		inv := &Investment{ID: "inv-1"}
		require.NoError(t, flow.Complete(inv))
		assert.Equal(t, FlowDone, flow.State)
		assert.Same(t, inv, flow.Result)
	})

	t.Run("should reject amounts outside plan limits without moving", func(t *testing.T) {
		plan := testPlan()
		flow := NewInvestmentFlow(plan)

		err := flow.EnterAmount(plan, "99.99")
		assert.ErrorIs(t, err, errs.ErrBelowMinimum)
		assert.True(t, errs.IsValidationError(err))
		assert.Contains(t, errs.UserMessage(err, ""), "Minimum investment")

		err = flow.EnterAmount(plan, "5000.01")
		assert.ErrorIs(t, err, errs.ErrAboveMaximum)
		assert.Contains(t, errs.UserMessage(err, ""), "Maximum investment")

		assert.Equal(t, FlowEnteringAmount, flow.State)
	})

	t.Run("should return to awaiting proof on failure and keep the error", func(t *testing.T) {
		plan := testPlan()
		flow := NewInvestmentFlow(plan)
		require.NoError(t, flow.EnterAmount(plan, "100"))
		require.NoError(t, flow.AttachProof("tx"))

		require.NoError(t, flow.Fail("payment not found"))

		assert.Equal(t, FlowAwaitingPaymentProof, flow.State)
		assert.Equal(t, "payment not found", flow.LastError)
	})

	t.Run("should reject out of order transitions", func(t *testing.T) {
		plan := testPlan()
		flow := NewInvestmentFlow(plan)

		assert.ErrorIs(t, flow.AttachProof("tx"), errs.ErrInvalidTransition)
		assert.ErrorIs(t, flow.Complete(&Investment{}), errs.ErrInvalidTransition)
		assert.ErrorIs(t, flow.Fail("x"), errs.ErrInvalidTransition)

		require.NoError(t, flow.EnterAmount(plan, "100"))
		assert.ErrorIs(t, flow.EnterAmount(plan, "200"), errs.ErrInvalidTransition)
	})

	t.Run("should require a payment proof", func(t *testing.T) {
		plan := testPlan()
		flow := NewInvestmentFlow(plan)
		require.NoError(t, flow.EnterAmount(plan, "100"))

		err := flow.AttachProof("   ")

		assert.ErrorIs(t, err, errs.ErrRequiredField)
		assert.Equal(t, FlowAwaitingPaymentProof, flow.State)
	})

	t.Run("should reset from any state", func(t *testing.T) {
		plan := testPlan()
		flow := NewInvestmentFlow(plan)
		require.NoError(t, flow.EnterAmount(plan, "100"))
		require.NoError(t, flow.AttachProof("tx"))

		flow.Reset()

		assert.Equal(t, FlowEnteringAmount, flow.State)
		assert.True(t, flow.Amount.IsZero())
		assert.Empty(t, flow.TxHash)
		assert.Equal(t, "plan-1", flow.PlanID)
	})
}
