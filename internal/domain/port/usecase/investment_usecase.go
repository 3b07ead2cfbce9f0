package usecase

import (
	"context"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// InvestmentUseCase drives the invest-in-plan flow stored on the session
type InvestmentUseCase interface {
	Plans(ctx context.Context) ([]entity.Plan, error)

	// Start begins a flow for planID, replacing any flow in progress
	Start(ctx context.Context, planID string) (*entity.InvestmentFlow, error)

	// EnterAmount validates the amount against the plan limits
	EnterAmount(ctx context.Context, amount string) (*entity.InvestmentFlow, error)

	// Submit attaches the payment transaction ID and creates the investment.
	// A platform failure returns the flow to awaiting-payment-proof with the error kept.
	Submit(ctx context.Context, txHash string) (*entity.InvestmentFlow, error)

	// Reset returns the current flow to amount entry
	Reset(ctx context.Context) (*entity.InvestmentFlow, error)

	// Cancel discards the current flow
	Cancel(ctx context.Context)
}
