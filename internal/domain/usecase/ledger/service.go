package ledger

import (
	"context"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/common"
)

// DefaultPageSize is used when the configured page size is not positive
const DefaultPageSize = 10

var _ usecase.LedgerUseCase = (*Service)(nil)

// Service implements LedgerUseCase
type Service struct {
	platform gateway.LedgerGateway
	caches   query.Provider
	pageSize int
	logger   core.Logger
}

// NewService creates a ledger service
func NewService(platform gateway.LedgerGateway, caches query.Provider, pageSize int, logger core.Logger) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		platform: platform,
		caches:   caches,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Transactions returns the user's transactions after the client-side filter
func (s *Service) Transactions(ctx context.Context, filter entity.TransactionFilter) (*usecase.TransactionsView, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	all, err := common.Fetch(ctx, scope, query.TransactionsKey(scope.UserID), query.Defaults,
		func(ctx context.Context) ([]entity.Transaction, error) {
			return s.platform.ListTransactions(ctx, scope.UserID)
		})
	if err != nil {
		return nil, err
	}

	return &usecase.TransactionsView{
		Items:    filter.Apply(all),
		Total:    len(all),
		Types:    entity.DistinctValues(all, func(tx entity.Transaction) string { return tx.Type }),
		Statuses: entity.DistinctValues(all, func(tx entity.Transaction) string { return tx.Status }),
	}, nil
}

// ROIRecords extends the ROI list for filter to at least pages pages
func (s *Service) ROIRecords(ctx context.Context, filter entity.ROIFilter, pages int) (*usecase.ROIView, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	if err := scope.RequireUser(); err != nil {
		return nil, err
	}

	list, err := query.GetInfinite(ctx, scope.Cache, query.ROIRecordsKey(scope.UserID, filter), query.Defaults,
		func(ctx context.Context, page int) (*entity.Page[entity.ROIRecord], error) {
			return s.platform.ListROIRecords(ctx, scope.UserID, filter, page, s.pageSize)
		})
	if err != nil {
		return nil, err
	}
	if err := list.EnsurePages(ctx, max(pages, 1)); err != nil {
		return nil, err
	}

	items := list.Items()
	return &usecase.ROIView{
		Items:       items,
		Summary:     entity.SummarizeROI(items),
		HasNextPage: list.HasNextPage(),
		Pages:       list.PageCount(),
		Total:       list.Total(),
	}, nil
}

// Notifications extends the inbox to at least pages pages
func (s *Service) Notifications(ctx context.Context, pages int) (*usecase.NotificationsView, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	if err := scope.RequireUser(); err != nil {
		return nil, err
	}

	list, err := query.GetInfinite(ctx, scope.Cache, query.NotificationsKey(scope.UserID), query.Defaults,
		func(ctx context.Context, page int) (*entity.Page[entity.Notification], error) {
			return s.platform.ListNotifications(ctx, scope.UserID, page, s.pageSize)
		})
	if err != nil {
		return nil, err
	}
	if err := list.EnsurePages(ctx, max(pages, 1)); err != nil {
		return nil, err
	}

	items := list.Items()
	return &usecase.NotificationsView{
		Items:       items,
		Unread:      entity.CountUnread(items),
		HasNextPage: list.HasNextPage(),
		Pages:       list.PageCount(),
		Total:       list.Total(),
	}, nil
}
