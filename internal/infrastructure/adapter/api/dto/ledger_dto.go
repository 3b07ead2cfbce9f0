package dto

import "github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"

// TransactionFilterQuery is the transactions page filter
type TransactionFilterQuery struct {
	Search string `form:"search" binding:"max=100"`
	Type   string `form:"type" binding:"max=50"`
	Status string `form:"status" binding:"max=50"`
}

// ToFilter maps the query onto the entity filter
func (q TransactionFilterQuery) ToFilter() entity.TransactionFilter {
	return entity.TransactionFilter{Search: q.Search, Type: q.Type, Status: q.Status}
}

// MaxPages caps how many pages of an infinite list one request may ask for
const MaxPages = 50

// PageQuery is the number of pages an infinite list should show, capped at MaxPages
type PageQuery struct {
	Pages int `form:"pages" binding:"omitempty,min=1,max=50"`
}

// Count returns the requested page count, at least one
func (q PageQuery) Count() int {
	if q.Pages < 1 {
		return 1
	}
	return q.Pages
}

// ROIFilterQuery is the redeem page filter
type ROIFilterQuery struct {
	PageQuery
	PlanID    string `form:"planId" binding:"max=64"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToFilter maps the query onto the entity filter
func (q ROIFilterQuery) ToFilter() entity.ROIFilter {
	return entity.ROIFilter{PlanID: q.PlanID, StartDate: q.StartDate, EndDate: q.EndDate}
}
