package usecase

import (
	"context"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// TransactionsView is the filtered transaction history
type TransactionsView struct {
	Items    []entity.Transaction
	Total    int
	Types    []string
	Statuses []string
}

// ROIView is the accumulated ROI history
type ROIView struct {
	Items       []entity.ROIRecord
	Summary     entity.ROISummary
	HasNextPage bool
	Pages       int
	Total       int
}

// NotificationsView is the accumulated notification inbox
type NotificationsView struct {
	Items       []entity.Notification
	Unread      int
	HasNextPage bool
	Pages       int
	Total       int
}

// LedgerUseCase reads the user's history lists
type LedgerUseCase interface {
	Transactions(ctx context.Context, filter entity.TransactionFilter) (*TransactionsView, error)

	// ROIRecords loads at least pages pages of records matching filter
	ROIRecords(ctx context.Context, filter entity.ROIFilter, pages int) (*ROIView, error)

	// Notifications loads at least pages pages of the inbox
	Notifications(ctx context.Context, pages int) (*NotificationsView, error)
}
