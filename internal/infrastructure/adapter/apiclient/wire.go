package apiclient

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Amount decodes the numeric shapes the platform emits: JSON numbers, numeric strings,
// null, and serialized decimal objects of the form {"s":1,"e":2,"d":[123,4500000]}.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(b []byte) error {
	r := gjson.ParseBytes(b)
	switch r.Type {
	case gjson.Null:
		*a = Amount{}
		return nil
	case gjson.Number:
		d, err := decimal.NewFromString(r.Raw)
		if err != nil {
			return fmt.Errorf("amount %s: %w", r.Raw, err)
		}
		*a = Amount{Value: d, Valid: true}
		return nil
	case gjson.String:
		if r.Str == "" {
			*a = Amount{}
			return nil
		}
		d, err := decimal.NewFromString(r.Str)
		if err != nil {
			return fmt.Errorf("amount %q: %w", r.Str, err)
		}
		*a = Amount{Value: d, Valid: true}
		return nil
	case gjson.JSON:
		if !r.IsObject() || !r.Get("d").IsArray() {
			return fmt.Errorf("amount: unsupported object %s", r.Raw)
		}
		sign := r.Get("s").Int()
		if sign == 0 {
			sign = 1
		}
		high := decimal.NewFromInt(r.Get("d.0").Int())
		low := decimal.NewFromInt(r.Get("d.1").Int()).Div(decimal.NewFromInt(10_000_000))
		*a = Amount{Value: high.Add(low).Mul(decimal.NewFromInt(sign)), Valid: true}
		return nil
	default:
		return fmt.Errorf("amount: unsupported value %s", r.Raw)
	}
}

// Dec returns the value, zero when absent
func (a Amount) Dec() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value
}

// Null returns the value as a NullDecimal
func (a Amount) Null() decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: a.Value, Valid: a.Valid}
}

// Float returns the value as a float for chart data
func (a Amount) Float() float64 {
	return a.Dec().InexactFloat64()
}

// Text decodes strings, numbers and booleans into their string form
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(b []byte) error {
	r := gjson.ParseBytes(b)
	if r.Type == gjson.JSON {
		return fmt.Errorf("text: unexpected object %s", r.Raw)
	}
	*t = Text(r.String())
	return nil
}

func (t Text) String() string { return string(t) }

type envelope[T any] struct {
	Data       T              `json:"data" validate:"required"`
	Message    string         `json:"message"`
	Success    *bool          `json:"success"`
	Token      string         `json:"token"`
	Pagination *paginationDTO `json:"pagination" validate:"omitempty"`
}

type listEnvelope[T any] struct {
	Data       []T            `json:"data" validate:"required,dive"`
	Message    string         `json:"message"`
	Pagination *paginationDTO `json:"pagination" validate:"omitempty"`
}

type paginationDTO struct {
	CurrentPage  int `json:"currentPage" validate:"gte=0"`
	TotalPages   int `json:"totalPages" validate:"gte=0"`
	TotalItems   int `json:"totalItems" validate:"gte=0"`
	ItemsPerPage int `json:"itemsPerPage" validate:"gte=0"`
}

func (p *paginationDTO) toEntity() entity.Pagination {
	if p == nil {
		return entity.Pagination{}
	}
	return entity.Pagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
	}
}

type partyDTO struct {
	ID    Text   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (p *partyDTO) toEntity() entity.PartyRef {
	if p == nil {
		return entity.PartyRef{}
	}
	return entity.PartyRef{ID: p.ID.String(), Name: p.Name, Email: p.Email}
}

// Auth

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	WalletAddress  string `json:"walletAddress,omitempty"`
	ReferredByCode string `json:"referredByCode"`
}

type authUserDTO struct {
	ID Text `json:"id" validate:"required"`
}

// User

type userWalletDTO struct {
	WalletAddress string `json:"walletAddress"`
	Currency      string `json:"currency"`
	Balance       Amount `json:"balance"`
}

type userDTO struct {
	ID             Text           `json:"id" validate:"required"`
	Name           *string        `json:"name"`
	Email          string         `json:"email" validate:"required"`
	WalletAddress  *string        `json:"walletAddress"`
	ReferralCode   string         `json:"referralCode"`
	USDTBalance    Amount         `json:"usdtBalance"`
	TotalReferrals int            `json:"totalReferrals"`
	TotalEarnings  Amount         `json:"totalEarnings"`
	CurrentLevel   int            `json:"currentLevel"`
	Wallet         *userWalletDTO `json:"wallet" validate:"omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (u userDTO) toEntity() *entity.User {
	user := &entity.User{
		ID:             u.ID.String(),
		Name:           deref(u.Name),
		Email:          u.Email,
		WalletAddress:  deref(u.WalletAddress),
		ReferralCode:   u.ReferralCode,
		USDTBalance:    u.USDTBalance.Dec(),
		TotalReferrals: u.TotalReferrals,
		TotalEarnings:  u.TotalEarnings.Dec(),
		CurrentLevel:   u.CurrentLevel,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
	if u.Wallet != nil {
		user.Wallet = &entity.Wallet{
			UserID:        user.ID,
			WalletAddress: u.Wallet.WalletAddress,
			Currency:      u.Wallet.Currency,
			Balance:       u.Wallet.Balance.Dec(),
		}
	}
	return user
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Dashboard

type dashboardDTO struct {
	UserName     string `json:"userName"`
	ReferralLink string `json:"referralLink"`
	KPIs         struct {
		TotalInvested    Amount `json:"totalInvested"`
		CurrentBalance   Amount `json:"currentBalance"`
		DailyROI         Amount `json:"dailyROI"`
		MonthlyROI       Amount `json:"monthlyROI"`
		ReferralEarnings Amount `json:"referralEarnings"`
	} `json:"kpis"`
	Summary struct {
		TotalInvested Amount `json:"totalInvested"`
		ProfitEarned  Amount `json:"profitEarned"`
		ROIPercentage Text   `json:"roiPercentage"`
	} `json:"summary"`
	Charts struct {
		BalanceData []struct {
			Month   string `json:"month"`
			Balance Amount `json:"balance"`
		} `json:"balanceData"`
		ReferralData []struct {
			Month    string `json:"month"`
			Earnings Amount `json:"earnings"`
		} `json:"referralData"`
	} `json:"charts"`
	ActiveSubscriptions struct {
		Count int `json:"count" validate:"gte=0"`
		Plans []struct {
			PlanName       string `json:"planName"`
			Duration       Text   `json:"duration"`
			AmountInvested Amount `json:"amountInvested"`
			ROIMonthly     Text   `json:"roiMonthly"`
			Remaining      Text   `json:"remaining"`
		} `json:"plans"`
	} `json:"activeSubscriptions"`
}

func (d dashboardDTO) toEntity() *entity.Dashboard {
	out := &entity.Dashboard{
		UserName:     d.UserName,
		ReferralLink: d.ReferralLink,
		KPIs: entity.DashboardKPIs{
			TotalInvested:    d.KPIs.TotalInvested.Float(),
			CurrentBalance:   d.KPIs.CurrentBalance.Float(),
			DailyROI:         d.KPIs.DailyROI.Float(),
			MonthlyROI:       d.KPIs.MonthlyROI.Float(),
			ReferralEarnings: d.KPIs.ReferralEarnings.Float(),
		},
		Summary: entity.DashboardSummary{
			TotalInvested: d.Summary.TotalInvested.Float(),
			ProfitEarned:  d.Summary.ProfitEarned.Float(),
			ROIPercentage: d.Summary.ROIPercentage.String(),
		},
		ActiveSubscriptions: entity.ActiveSubscriptions{Count: d.ActiveSubscriptions.Count},
	}
	for _, p := range d.Charts.BalanceData {
		out.BalanceSeries = append(out.BalanceSeries, entity.BalancePoint{Month: p.Month, Balance: p.Balance.Float()})
	}
	for _, p := range d.Charts.ReferralData {
		out.ReferralSeries = append(out.ReferralSeries, entity.ReferralPoint{Month: p.Month, Earnings: p.Earnings.Float()})
	}
	for _, p := range d.ActiveSubscriptions.Plans {
		out.ActiveSubscriptions.Plans = append(out.ActiveSubscriptions.Plans, entity.SubscriptionSummary{
			PlanName:       p.PlanName,
			Duration:       p.Duration.String(),
			AmountInvested: p.AmountInvested.Float(),
			ROIMonthly:     p.ROIMonthly.String(),
			Remaining:      p.Remaining.String(),
		})
	}
	return out
}

// Setting

type settingDTO struct {
	ID             Text      `json:"id"`
	PhoneNumber    string    `json:"phoneNumber"`
	Email          string    `json:"email"`
	ActiveUser     Text      `json:"activeUser"`
	TotalUser      Text      `json:"totalUser"`
	MinWithdrawal  Amount    `json:"minWithdrawal"`
	MinTransfer    Amount    `json:"minTransfer"`
	WithdrawalFee  Amount    `json:"withdrawalFee"`
	ROIPayoutCycle string    `json:"roiPayoutCycle"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (s settingDTO) toEntity() *entity.Setting {
	return &entity.Setting{
		ID:             s.ID.String(),
		PhoneNumber:    s.PhoneNumber,
		Email:          s.Email,
		ActiveUser:     s.ActiveUser.String(),
		TotalUser:      s.TotalUser.String(),
		MinWithdrawal:  s.MinWithdrawal.Null(),
		MinTransfer:    s.MinTransfer.Null(),
		WithdrawalFee:  s.WithdrawalFee.Null(),
		ROIPayoutCycle: s.ROIPayoutCycle,
		UpdatedAt:      s.UpdatedAt,
	}
}

// Referrals

type referralDTO struct {
	ID              Text      `json:"id" validate:"required"`
	ReferrerID      Text      `json:"referrerId"`
	ReferredUserID  Text      `json:"referredUserId"`
	Level           int       `json:"level"`
	BonusPercentage Amount    `json:"bonusPercentage"`
	BonusStartDate  time.Time `json:"bonusStartDate"`
	BonusEndDate    time.Time `json:"bonusEndDate"`
	Status          string    `json:"status"`
	Referrer        *partyDTO `json:"referrer" validate:"omitempty"`
	ReferredUser    *partyDTO `json:"referredUser" validate:"omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (r referralDTO) toEntity() entity.Referral {
	return entity.Referral{
		ID:              r.ID.String(),
		ReferrerID:      r.ReferrerID.String(),
		ReferredUserID:  r.ReferredUserID.String(),
		Level:           r.Level,
		BonusPercentage: r.BonusPercentage.Dec(),
		BonusStartDate:  r.BonusStartDate,
		BonusEndDate:    r.BonusEndDate,
		Status:          r.Status,
		Referrer:        r.Referrer.toEntity(),
		ReferredUser:    r.ReferredUser.toEntity(),
		CreatedAt:       r.CreatedAt,
	}
}

type referralSummaryDTO struct {
	TotalReferrals int `json:"totalReferrals" validate:"gte=0"`
	Referrals      []struct {
		ID           Text      `json:"id" validate:"required"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		ReferralCode string    `json:"referralCode"`
		CreatedAt    time.Time `json:"createdAt"`
	} `json:"referrals" validate:"dive"`
}

func (r referralSummaryDTO) toEntity() *entity.ReferralSummary {
	out := &entity.ReferralSummary{TotalReferrals: r.TotalReferrals}
	for _, u := range r.Referrals {
		out.Referrals = append(out.Referrals, entity.ReferredUser{
			ID:           u.ID.String(),
			Name:         u.Name,
			Email:        u.Email,
			ReferralCode: u.ReferralCode,
			CreatedAt:    u.CreatedAt,
		})
	}
	return out
}

// Wallet

type walletDTO struct {
	ID            Text      `json:"id"`
	UserID        Text      `json:"userId"`
	WalletAddress string    `json:"walletAddress" validate:"required"`
	Currency      string    `json:"currency"`
	Balance       Amount    `json:"balance"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (w walletDTO) toEntity() *entity.Wallet {
	currency := w.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	return &entity.Wallet{
		ID:            w.ID.String(),
		UserID:        w.UserID.String(),
		WalletAddress: w.WalletAddress,
		Currency:      currency,
		Balance:       w.Balance.Dec(),
		CreatedAt:     w.CreatedAt,
	}
}

type createWalletRequest struct {
	UserID        string `json:"userId"`
	WalletAddress string `json:"walletAddress"`
	Currency      string `json:"currency,omitempty"`
}

type qrCodeDTO struct {
	ID        Text `json:"id"`
	QRCodeURL *struct {
		PublicID  string `json:"public_id"`
		SecureURL string `json:"secure_url"`
	} `json:"qrCodeUrl" validate:"omitempty"`
	// Field name as spelled by the platform
	WalletAddress string    `json:"wallentaddress"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (q qrCodeDTO) toEntity() *entity.DepositAddress {
	out := &entity.DepositAddress{
		ID:            q.ID.String(),
		WalletAddress: q.WalletAddress,
		UpdatedAt:     q.UpdatedAt,
	}
	if q.QRCodeURL != nil {
		out.QRCodeURL = q.QRCodeURL.SecureURL
	}
	return out
}

// Plans and investments

type planDTO struct {
	ID                Text    `json:"id" validate:"required"`
	Name              string  `json:"name" validate:"required"`
	MinimumInvestment Amount  `json:"minimumInvestment"`
	MaximumInvestment Amount  `json:"maximumInvestment"`
	ROIPerMonth       Amount  `json:"roiPerMonth"`
	ROIPerDay         Amount  `json:"roiPerDay"`
	DurationInMonths  int     `json:"durationInMonths" validate:"gte=0"`
	Description       *string `json:"description"`
	IsActive          bool    `json:"isActive"`
}

func (p planDTO) toEntity() entity.Plan {
	return entity.Plan{
		ID:                p.ID.String(),
		Name:              p.Name,
		MinimumInvestment: p.MinimumInvestment.Dec(),
		MaximumInvestment: p.MaximumInvestment.Dec(),
		ROIPerMonth:       p.ROIPerMonth.Null(),
		ROIPerDay:         p.ROIPerDay.Null(),
		DurationInMonths:  p.DurationInMonths,
		Description:       deref(p.Description),
		IsActive:          p.IsActive,
	}
}

type createInvestmentRequest struct {
	UserID         string      `json:"userId"`
	PlanID         string      `json:"planId"`
	AmountInvested json.Number `json:"amountInvested"`
	ROIPercentage  json.Number `json:"roiPercentage"`
	StartDate      string      `json:"startDate"`
	EndDate        string      `json:"endDate"`
	TransactionID  string      `json:"transactionId"`
}

type investmentDTO struct {
	ID             Text      `json:"id" validate:"required"`
	UserID         Text      `json:"userId"`
	PlanID         Text      `json:"planId"`
	AmountInvested Amount    `json:"amountInvested"`
	ROIPercentage  Amount    `json:"roiPercentage"`
	Status         string    `json:"status"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	TransactionID  *string   `json:"transactionId"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (i investmentDTO) toEntity() *entity.Investment {
	return &entity.Investment{
		ID:             i.ID.String(),
		UserID:         i.UserID.String(),
		PlanID:         i.PlanID.String(),
		AmountInvested: i.AmountInvested.Dec(),
		ROIPercentage:  i.ROIPercentage.Dec(),
		Status:         entity.InvestmentStatus(i.Status),
		StartDate:      i.StartDate,
		EndDate:        i.EndDate,
		TransactionID:  deref(i.TransactionID),
		CreatedAt:      i.CreatedAt,
	}
}

// Ledger

type transactionDTO struct {
	ID           Text      `json:"id" validate:"required"`
	UserID       Text      `json:"userId"`
	Type         string    `json:"type"`
	Amount       Amount    `json:"amount"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	Description  *string   `json:"description"`
	InvestmentID *Text     `json:"investmentId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (t transactionDTO) toEntity() entity.Transaction {
	out := entity.Transaction{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Type:        t.Type,
		Amount:      t.Amount.Dec(),
		Currency:    t.Currency,
		Status:      t.Status,
		Description: deref(t.Description),
		CreatedAt:   t.CreatedAt,
	}
	if t.InvestmentID != nil {
		out.InvestmentID = t.InvestmentID.String()
	}
	return out
}

type transferDTO struct {
	ID         Text      `json:"id" validate:"required"`
	SenderID   Text      `json:"senderId"`
	ReceiverID Text      `json:"receiverId"`
	Amount     Amount    `json:"amount"`
	Status     string    `json:"status"`
	Note       *string   `json:"note"`
	Sender     *partyDTO `json:"sender" validate:"omitempty"`
	Receiver   *partyDTO `json:"receiver" validate:"omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (t transferDTO) toEntity() entity.Transfer {
	return entity.Transfer{
		ID:         t.ID.String(),
		SenderID:   t.SenderID.String(),
		ReceiverID: t.ReceiverID.String(),
		Amount:     t.Amount.Dec(),
		Status:     t.Status,
		Note:       deref(t.Note),
		Sender:     t.Sender.toEntity(),
		Receiver:   t.Receiver.toEntity(),
		CreatedAt:  t.CreatedAt,
	}
}

type createTransferRequest struct {
	SenderID   string      `json:"senderId"`
	ReceiverID string      `json:"receiverId"`
	Amount     json.Number `json:"amount"`
	Note       string      `json:"note,omitempty"`
}

type withdrawalDTO struct {
	ID                 Text       `json:"id" validate:"required"`
	UserID             Text       `json:"userId"`
	Amount             Amount     `json:"amount"`
	DestinationAddress string     `json:"destinationAddress"`
	Status             string     `json:"status"`
	ProcessedAt        *time.Time `json:"processedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func (w withdrawalDTO) toEntity() entity.Withdrawal {
	return entity.Withdrawal{
		ID:                 w.ID.String(),
		UserID:             w.UserID.String(),
		Amount:             w.Amount.Dec(),
		DestinationAddress: w.DestinationAddress,
		Status:             w.Status,
		ProcessedAt:        w.ProcessedAt,
		CreatedAt:          w.CreatedAt,
	}
}

type createWithdrawalRequest struct {
	UserID             string      `json:"userId"`
	Amount             json.Number `json:"amount"`
	DestinationAddress string      `json:"destinationAddress"`
}

type roiRecordDTO struct {
	ID                     Text   `json:"id" validate:"required"`
	UserID                 Text   `json:"userId"`
	InvestmentID           *Text  `json:"investmentId"`
	WeekNumber             int    `json:"weekNumber"`
	ROIAmount              Amount `json:"roiAmount"`
	IsReferralBonusApplied bool   `json:"isReferralBonusApplied"`
	Investment             *struct {
		AmountInvested Amount `json:"amountInvested"`
		Plan           *struct {
			Name string `json:"name"`
		} `json:"plan" validate:"omitempty"`
	} `json:"investment" validate:"omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r roiRecordDTO) toEntity() entity.ROIRecord {
	out := entity.ROIRecord{
		ID:                     r.ID.String(),
		UserID:                 r.UserID.String(),
		WeekNumber:             r.WeekNumber,
		ROIAmount:              r.ROIAmount.Dec(),
		IsReferralBonusApplied: r.IsReferralBonusApplied,
		CreatedAt:              r.CreatedAt,
	}
	if r.InvestmentID != nil {
		out.InvestmentID = r.InvestmentID.String()
	}
	if r.Investment != nil {
		out.InvestmentAmount = r.Investment.AmountInvested.Null()
		if r.Investment.Plan != nil {
			out.PlanName = r.Investment.Plan.Name
		}
	}
	return out
}

type notificationDTO struct {
	ID        Text      `json:"id" validate:"required"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	Timestamp time.Time `json:"timestamp"`
}

func (n notificationDTO) toEntity() entity.Notification {
	created := n.CreatedAt
	if created.IsZero() {
		created = n.Timestamp
	}
	return entity.Notification{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read || n.IsRead,
		CreatedAt: created,
	}
}
