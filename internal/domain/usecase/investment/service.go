package investment

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/common"
)

// FailureMessage is kept on the flow when the platform rejects an investment without a message
const FailureMessage = "Failed to create investment"

var _ usecase.InvestmentUseCase = (*Service)(nil)

// Service implements InvestmentUseCase. The flow lives on the session carried by ctx.
type Service struct {
	platform     gateway.InvestmentGateway
	caches       query.Provider
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewService creates an investment service
func NewService(platform gateway.InvestmentGateway, caches query.Provider, timeProvider core.TimeProvider, logger core.Logger) *Service {
	return &Service{
		platform:     platform,
		caches:       caches,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Plans returns the subscription plans
func (s *Service) Plans(ctx context.Context) ([]entity.Plan, error) {
	cache := query.ForContext(ctx, s.caches)
	return query.Get(ctx, cache, query.PlansKey(), query.Defaults.Stale(common.LongStale),
		func(ctx context.Context) ([]entity.Plan, error) {
			return s.platform.ListPlans(ctx)
		})
}

func (s *Service) plan(ctx context.Context, planID string) (entity.Plan, error) {
	plans, err := s.Plans(ctx)
	if err != nil {
		return entity.Plan{}, err
	}
	for _, p := range plans {
		if p.ID == planID {
			return p, nil
		}
	}
	return entity.Plan{}, fmt.Errorf("%w: plan %s", errs.ErrNotFound, planID)
}

// session returns the signed-in session on ctx
func session(ctx context.Context) (*entity.Session, error) {
	s := entity.SessionFromContext(ctx)
	if !s.HasToken() {
		return nil, errs.ErrUnauthenticated
	}
	return s, nil
}

// current returns the flow in progress
func current(ctx context.Context) (*entity.Session, *entity.InvestmentFlow, error) {
	s, err := session(ctx)
	if err != nil {
		return nil, nil, err
	}
	if s.Investment == nil {
		return s, nil, fmt.Errorf("%w: no investment in progress", errs.ErrInvalidTransition)
	}
	return s, s.Investment, nil
}

// Start begins a flow for planID
func (s *Service) Start(ctx context.Context, planID string) (*entity.InvestmentFlow, error) {
	sess, err := session(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.plan(ctx, planID)
	if err != nil {
		return nil, err
	}

	sess.Investment = entity.NewInvestmentFlow(plan)
	return sess.Investment, nil
}

// EnterAmount validates the amount against the plan of the current flow
func (s *Service) EnterAmount(ctx context.Context, amount string) (*entity.InvestmentFlow, error) {
	_, flow, err := current(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.plan(ctx, flow.PlanID)
	if err != nil {
		return flow, err
	}
	if err := flow.EnterAmount(plan, amount); err != nil {
		return flow, err
	}
	return flow, nil
}

// Submit attaches the payment proof and creates the investment
func (s *Service) Submit(ctx context.Context, txHash string) (*entity.InvestmentFlow, error) {
	sess, flow, err := current(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.plan(ctx, flow.PlanID)
	if err != nil {
		return flow, err
	}
	if err := flow.AttachProof(txHash); err != nil {
		return flow, err
	}

	start, end := plan.Term(s.timeProvider.Now())
	inv, err := s.platform.CreateInvestment(ctx, entity.NewInvestment{
		UserID:         sess.UserID,
		PlanID:         plan.ID,
		AmountInvested: flow.Amount,
		ROIPercentage:  plan.ROIPercentage(),
		StartDate:      start,
		EndDate:        end,
		TransactionID:  flow.TxHash,
	})
	if err != nil {
		if failErr := flow.Fail(errs.UserMessage(err, FailureMessage)); failErr != nil {
			return flow, failErr
		}
		s.logger.Warn("Investment rejected", map[string]any{
			"user_id":    sess.UserID,
			"plan_id":    plan.ID,
			"error_code": errs.ErrorCode(err),
		})
		return flow, err
	}

	if err := flow.Complete(inv); err != nil {
		return flow, err
	}

	scope := common.ScopeFrom(ctx, s.caches)
	scope.Invalidate(
		query.DashboardKey(sess.UserID),
		query.TransactionsKey(sess.UserID),
		query.UserKey(sess.UserID),
	)
	s.logger.Info("Investment created", map[string]any{
		"user_id":       sess.UserID,
		"plan_id":       plan.ID,
		"investment_id": inv.ID,
		"amount":        flow.Amount.String(),
	})
	return flow, nil
}

// Reset returns the current flow to amount entry
func (s *Service) Reset(ctx context.Context) (*entity.InvestmentFlow, error) {
	_, flow, err := current(ctx)
	if err != nil {
		return nil, err
	}
	flow.Reset()
	return flow, nil
}

// Cancel discards the current flow
func (s *Service) Cancel(ctx context.Context) {
	if sess := entity.SessionFromContext(ctx); sess != nil {
		sess.Investment = nil
	}
}
