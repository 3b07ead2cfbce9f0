package entity

// Dashboard is the aggregated overview returned by the platform.
// Values are display-ready strings or numbers computed server-side.
type Dashboard struct {
	UserName            string
	ReferralLink        string
	KPIs                DashboardKPIs
	Summary             DashboardSummary
	BalanceSeries       []BalancePoint
	ReferralSeries      []ReferralPoint
	ActiveSubscriptions ActiveSubscriptions
}

// DashboardKPIs are the headline figures
type DashboardKPIs struct {
	TotalInvested    float64
	CurrentBalance   float64
	DailyROI         float64
	MonthlyROI       float64
	ReferralEarnings float64
}

// DashboardSummary is the portfolio summary card
type DashboardSummary struct {
	TotalInvested float64
	ProfitEarned  float64
	ROIPercentage string
}

// BalancePoint is one month of the balance chart
type BalancePoint struct {
	Month   string
	Balance float64
}

// ReferralPoint is one month of the referral earnings chart
type ReferralPoint struct {
	Month    string
	Earnings float64
}

// ActiveSubscriptions lists the running plans
type ActiveSubscriptions struct {
	Count int
	Plans []SubscriptionSummary
}

// SubscriptionSummary describes one running plan
type SubscriptionSummary struct {
	PlanName       string
	Duration       string
	AmountInvested float64
	ROIMonthly     string
	Remaining      string
}
