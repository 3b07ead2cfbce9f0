package query

import "github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"

// Cache keys shared by the use cases. Invalidation after a mutation relies on these prefixes.

func UserKey(userID string) Key {
	return Key{"user", userID}
}

func DashboardKey(userID string) Key {
	return Key{"dashboard", userID}
}

func SettingKey() Key {
	return Key{"setting"}
}

func ReferralsMadeKey(userID string) Key {
	return Key{"referrals", "made", userID}
}

func ReferralSummaryKey(userID string) Key {
	return Key{"referral", userID}
}

func WalletKey(userID string) Key {
	return Key{"wallet", userID}
}

func QRCodeKey() Key {
	return Key{"qrCode"}
}

func PlansKey() Key {
	return Key{"subscriptions"}
}

func TransactionsKey(userID string) Key {
	return Key{"transactions", userID}
}

// TransfersPrefix covers both transfer directions
func TransfersPrefix() Key {
	return Key{"transfers"}
}

func SentTransfersKey(userID string) Key {
	return Key{"transfers", "sent", userID}
}

func ReceivedTransfersKey(userID string) Key {
	return Key{"transfers", "received", userID}
}

func WithdrawalsKey(userID string) Key {
	return Key{"withdrawals", userID}
}

// ROIRecordsPrefix covers every filter combination of one user
func ROIRecordsPrefix(userID string) Key {
	return Key{"roiRecords", userID}
}

func ROIRecordsKey(userID string, f entity.ROIFilter) Key {
	return Key{"roiRecords", userID, f.PlanID, f.StartDate, f.EndDate}
}

func NotificationsKey(userID string) Key {
	return Key{"notifications", userID}
}
