package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one ledger entry of the user
type Transaction struct {
	ID           string
	UserID       string
	Type         string
	Amount       decimal.Decimal
	Currency     string
	Status       string
	Description  string
	InvestmentID string
	CreatedAt    time.Time
}

// Transfer moves balance between two users
type Transfer struct {
	ID         string
	SenderID   string
	ReceiverID string
	Amount     decimal.Decimal
	Status     string
	Note       string
	Sender     PartyRef
	Receiver   PartyRef
	CreatedAt  time.Time
}

// Outgoing reports whether userID sent the transfer
func (t Transfer) Outgoing(userID string) bool {
	return t.SenderID == userID
}

// NewTransfer is the payload for creating a transfer
type NewTransfer struct {
	SenderID   string
	ReceiverID string
	Amount     decimal.Decimal
	Note       string
}

// Withdrawal is a payout request to an external address
type Withdrawal struct {
	ID                 string
	UserID             string
	Amount             decimal.Decimal
	DestinationAddress string
	Status             string
	ProcessedAt        *time.Time
	CreatedAt          time.Time
}

// NewWithdrawal is the payload for creating a withdrawal
type NewWithdrawal struct {
	UserID             string
	Amount             decimal.Decimal
	DestinationAddress string
}

// ROIRecord is one periodic return credited to the user
type ROIRecord struct {
	ID                     string
	UserID                 string
	InvestmentID           string
	WeekNumber             int
	ROIAmount              decimal.Decimal
	IsReferralBonusApplied bool
	// Investment fields are empty when the record is not tied to an investment
	InvestmentAmount decimal.NullDecimal
	PlanName         string
	CreatedAt        time.Time
}

// RecordID implements Identifiable
func (r ROIRecord) RecordID() string { return r.ID }

// ROISummary aggregates loaded ROI records
type ROISummary struct {
	TotalEarned       decimal.Decimal
	Records           int
	ReferralBonusDays int
}

// SummarizeROI totals a set of records
func SummarizeROI(records []ROIRecord) ROISummary {
	summary := ROISummary{TotalEarned: decimal.Zero}
	for _, r := range records {
		summary.TotalEarned = summary.TotalEarned.Add(r.ROIAmount)
		summary.Records++
		if r.IsReferralBonusApplied {
			summary.ReferralBonusDays++
		}
	}
	return summary
}

// ROIFilter narrows ROI records server-side
type ROIFilter struct {
	PlanID    string
	StartDate string
	EndDate   string
}

// Notification is an inbox entry
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      string
	Read      bool
	CreatedAt time.Time
}

// RecordID implements Identifiable
func (n Notification) RecordID() string { return n.ID }

// CountUnread returns how many notifications are unread
func CountUnread(items []Notification) int {
	n := 0
	for _, item := range items {
		if !item.Read {
			n++
		}
	}
	return n
}

// SortTransfersNewestFirst orders transfers by creation time, newest first
func SortTransfersNewestFirst(transfers []Transfer) {
	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].CreatedAt.After(transfers[j].CreatedAt)
	})
}

// MergeTransfers combines sent and received transfers, newest first.
// A self-transfer present in both lists appears once.
func MergeTransfers(sent, received []Transfer) []Transfer {
	seen := make(map[string]struct{}, len(sent)+len(received))
	merged := make([]Transfer, 0, len(sent)+len(received))
	for _, list := range [][]Transfer{sent, received} {
		for _, t := range list {
			if _, ok := seen[t.ID]; ok && t.ID != "" {
				continue
			}
			seen[t.ID] = struct{}{}
			merged = append(merged, t)
		}
	}
	SortTransfersNewestFirst(merged)
	return merged
}
